// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timingcodec

import (
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/ugorji/go/codec"
)

// Options configures a Codec.  The zero value encodes compact JSON, keeps null children,
// and fails on cyclic node trees.
type Options struct {
	// Format selects the wire format
	Format Format

	// Pretty indents JSON output.  It has no effect on Msgpack.
	Pretty bool

	// CyclicTolerant drops any node that would repeat one of its own ancestors instead of
	// failing the encode with ErrCyclicReference.
	CyclicTolerant bool

	// OmitNull leaves out absent children rather than encoding them as null
	OmitNull bool

	// TimeLayout, if set, is the time.Format layout used for time.Time values in JSON.
	// Timing nodes carry no times themselves, but values encoded alongside them may.
	TimeLayout string
}

// DefaultOptions returns the options used by Marshal and Unmarshal:  compact JSON, with
// cycles tolerated and null children omitted.
func DefaultOptions() Options {
	return Options{
		Format:         JSON,
		CyclicTolerant: true,
		OmitNull:       true,
	}
}

// Codec encodes and decodes values, notably timing node trees, in one configured format.
// A Codec is safe for concurrent use.
type Codec struct {
	options Options
	handle  codec.Handle
}

// New builds a Codec from options
func New(o Options) (*Codec, error) {
	tag := "codec"
	if o.OmitNull {
		// the json tags on timing.Node carry omitempty
		tag = "json"
	}

	var h codec.Handle
	switch o.Format {
	case JSON:
		jh := new(codec.JsonHandle)
		configure(&jh.BasicHandle, tag)
		if o.Pretty {
			jh.Indent = 2
		}

		if len(o.TimeLayout) > 0 {
			jh.TimeNotBuiltin = true
			if err := jh.SetInterfaceExt(reflect.TypeOf(time.Time{}), 1, timeExt{layout: o.TimeLayout}); err != nil {
				return nil, fmt.Errorf("unable to register time layout: %w", err)
			}
		}

		h = jh

	case Msgpack:
		mh := new(codec.MsgpackHandle)
		configure(&mh.BasicHandle, tag)
		h = mh

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, o.Format)
	}

	return &Codec{
		options: o,
		handle:  h,
	}, nil
}

// configure applies the settings shared by every format.  Node trees are pruned before
// encoding, so the circular reference check only ever trips on other cyclic values.
func configure(bh *codec.BasicHandle, tag string) {
	bh.TypeInfos = codec.NewTypeInfos([]string{tag})
	bh.CheckCircularRef = true
}

// MustNew is like New, but panics on error
func MustNew(o Options) *Codec {
	c, err := New(o)
	if err != nil {
		panic(err)
	}

	return c
}

// Options returns the options this Codec was built with
func (c *Codec) Options() Options {
	return c.options
}

// Encode writes v to output
func (c *Codec) Encode(output io.Writer, v interface{}) error {
	prepared, err := prepare(v, c.options.CyclicTolerant)
	if err != nil {
		return err
	}

	return codec.NewEncoder(output, c.handle).Encode(prepared)
}

// Marshal encodes v into a new byte slice
func (c *Codec) Marshal(v interface{}) ([]byte, error) {
	prepared, err := prepare(v, c.options.CyclicTolerant)
	if err != nil {
		return nil, err
	}

	var output []byte
	if err := codec.NewEncoderBytes(&output, c.handle).Encode(prepared); err != nil {
		return nil, err
	}

	return output, nil
}

// Decode reads a value from input into v, which must be a pointer
func (c *Codec) Decode(input io.Reader, v interface{}) error {
	return codec.NewDecoder(input, c.handle).Decode(v)
}

// Unmarshal decodes data into v, which must be a pointer
func (c *Codec) Unmarshal(data []byte, v interface{}) error {
	return codec.NewDecoderBytes(data, c.handle).Decode(v)
}

var defaultCodec = MustNew(DefaultOptions())

// Marshal encodes v using DefaultOptions
func Marshal(v interface{}) ([]byte, error) {
	return defaultCodec.Marshal(v)
}

// Unmarshal decodes data using DefaultOptions
func Unmarshal(data []byte, v interface{}) error {
	return defaultCodec.Unmarshal(data, v)
}
