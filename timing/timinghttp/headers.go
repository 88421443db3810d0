// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	gokithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/yongfa365/perflog/logging"
	"github.com/yongfa365/perflog/timing"
	"github.com/yongfa365/perflog/timing/timingcodec"
)

// ErrHeaderTooLarge is returned when an encoded tree does not fit in the configured header size
var ErrHeaderTooLarge = errors.New("timing header too large")

// HeaderEncoder turns a sequence of nodes into a single header value
type HeaderEncoder struct {
	codec    *timingcodec.Codec
	base64   bool
	maxBytes int
}

// NewHeaderEncoder creates a HeaderEncoder for the format and size limit in o.  JSON values are
// compact, with null children omitted.
func NewHeaderEncoder(o Options) (*HeaderEncoder, error) {
	format, err := o.format()
	if err != nil {
		return nil, err
	}

	co := timingcodec.DefaultOptions()
	co.Format = format
	c, err := timingcodec.New(co)
	if err != nil {
		return nil, err
	}

	return &HeaderEncoder{
		codec:    c,
		base64:   format != timingcodec.JSON,
		maxBytes: o.maxHeaderBytes(),
	}, nil
}

// Encode produces the header value for nodes
func (he *HeaderEncoder) Encode(nodes []*timing.Node) (string, error) {
	if nodes == nil {
		nodes = []*timing.Node{}
	}

	data, err := he.codec.Marshal(nodes)
	if err != nil {
		return "", err
	}

	value := string(data)
	if he.base64 {
		value = base64.StdEncoding.EncodeToString(data)
	}

	if len(value) > he.maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrHeaderTooLarge, len(value), he.maxBytes)
	}

	return value, nil
}

// HeadersForNodes sets the named header to the encoded form of nodes
func (he *HeaderEncoder) HeadersForNodes(name string, h http.Header, nodes []*timing.Node) error {
	value, err := he.Encode(nodes)
	if err != nil {
		return err
	}

	h.Set(name, value)
	return nil
}

func (he *HeaderEncoder) writeHeader(ctx context.Context, name string, h http.Header, logger log.Logger) {
	if !Requested(ctx) {
		return
	}

	if err := he.HeadersForNodes(name, h, timing.FromContext(ctx).Nodes()); err != nil {
		logging.Warn(logger).Log(logging.MessageKey(), "unable to emit timing header", logging.ErrorKey(), err)
	}
}

// WriteHeader produces a go-kit ServerResponseFunc that emits the timing header for requests
// that asked for it.  It relies on SetScope having run as a ServerBefore.
func WriteHeader(o Options) (gokithttp.ServerResponseFunc, error) {
	he, err := NewHeaderEncoder(o)
	if err != nil {
		return nil, err
	}

	name := o.header()
	return func(ctx context.Context, response http.ResponseWriter) context.Context {
		he.writeHeader(ctx, name, response.Header(), logging.GetLogger(ctx))
		return ctx
	}, nil
}
