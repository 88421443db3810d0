// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"net/http"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/yongfa365/perflog/timing/timingcodec"
)

const (
	// TimingKey is the Viper subkey under which timing configuration is stored.
	// FromViper *does not* assume this key.
	TimingKey = "timing"

	DefaultHeader         = "X-Perf-Log"
	DefaultTrigger        = "perflog"
	DefaultMaxHeaderBytes = 8192
)

// Options holds the configurable parts of the HTTP hookup
type Options struct {
	// Header is the response header that carries the encoded tree.  Defaults to DefaultHeader.
	Header string `json:"header"`

	// Trigger is the name of the request header or query parameter through which a caller
	// asks for the timing header.  Defaults to DefaultTrigger.
	Trigger string `json:"trigger"`

	// Always emits the timing header on every response, regardless of Trigger
	Always bool `json:"always"`

	// Pretty indents the trees written by a LogSink.  Header values are always compact.
	Pretty bool `json:"pretty"`

	// Format is the encoding of the header value, either "json" or "msgpack".  Msgpack
	// values are base64 encoded.
	Format string `json:"format"`

	// MaxHeaderBytes caps the size of the encoded header value.  Larger trees are left out of
	// the response.  Defaults to DefaultMaxHeaderBytes.
	MaxHeaderBytes int `json:"maxHeaderBytes"`

	// Timeout, if positive, bounds the context handed to the decorated handler
	Timeout time.Duration `json:"timeout"`
}

func (o Options) header() string {
	if len(o.Header) > 0 {
		return o.Header
	}

	return DefaultHeader
}

func (o Options) trigger() string {
	if len(o.Trigger) > 0 {
		return o.Trigger
	}

	return DefaultTrigger
}

func (o Options) maxHeaderBytes() int {
	if o.MaxHeaderBytes > 0 {
		return o.MaxHeaderBytes
	}

	return DefaultMaxHeaderBytes
}

func (o Options) format() (timingcodec.Format, error) {
	return timingcodec.ParseFormat(o.Format)
}

// Requested tests whether the given request asked for the timing header, either through a
// request header or a query parameter named by Trigger.  A bare query parameter, with no value,
// counts as a request.  Other values are parsed as booleans.
func (o Options) Requested(request *http.Request) bool {
	if o.Always {
		return true
	}

	trigger := o.trigger()
	if v := request.Header.Get(trigger); len(v) > 0 {
		return parseTrigger(v)
	}

	if request.URL != nil {
		if values, ok := request.URL.Query()[trigger]; ok {
			return len(values) == 0 || len(values[0]) == 0 || parseTrigger(values[0])
		}
	}

	return false
}

func parseTrigger(v string) bool {
	enabled, err := cast.ToBoolE(v)
	return err == nil && enabled
}

// Sub returns the standard child Viper, using TimingKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(TimingKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.  The Format is
// validated here so that a bad configuration fails at startup.
func FromViper(v *viper.Viper) (o Options, err error) {
	if v != nil {
		err = v.Unmarshal(&o)
	}

	if err == nil {
		_, err = o.format()
	}

	return
}
