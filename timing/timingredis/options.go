// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timingredis

import (
	"time"

	"github.com/spf13/viper"
	"github.com/yongfa365/perflog/timing/timingcodec"
)

const (
	// RedisKey is the Viper subkey, beneath the timing configuration, under which this package's
	// options are stored.
	RedisKey = "redis"

	DefaultKey = "perflog"
)

// Options configures a Sink and, optionally, the client it writes through
type Options struct {
	// Address is the host:port of the redis server.  When empty, Provide contributes no sink.
	Address string `json:"address"`

	Password string `json:"password"`
	DB       int    `json:"db"`

	// Key is the redis list that trees are pushed onto.  Defaults to DefaultKey.
	Key string `json:"key"`

	// MaxLen, if positive, trims the list to its most recent MaxLen entries after each push
	MaxLen int64 `json:"maxLen"`

	// TTL, if positive, is applied to the list after each push
	TTL time.Duration `json:"ttl"`

	// Format is the encoding of each entry, "json" or "msgpack"
	Format string `json:"format"`
}

func (o Options) key() string {
	if len(o.Key) > 0 {
		return o.Key
	}

	return DefaultKey
}

func (o Options) codec() (*timingcodec.Codec, error) {
	f, err := timingcodec.ParseFormat(o.Format)
	if err != nil {
		return nil, err
	}

	co := timingcodec.DefaultOptions()
	co.Format = f
	return timingcodec.New(co)
}

// Sub returns the standard child Viper, using RedisKey.  Callers normally pass the timing
// subtree, i.e. Sub(timinghttp.Sub(v)).  If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(RedisKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance
func FromViper(v *viper.Viper) (o Options, err error) {
	if v != nil {
		err = v.Unmarshal(&o)
	}

	return
}
