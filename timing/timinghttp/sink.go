// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"context"

	"github.com/yongfa365/perflog/logging"
	"github.com/yongfa365/perflog/timing"
	"github.com/yongfa365/perflog/timing/timingcodec"
)

// Sink receives the tree of each completed scope
type Sink interface {
	Send(ctx context.Context, nodes []*timing.Node) error
}

// SinkFunc is a function type that implements Sink
type SinkFunc func(context.Context, []*timing.Node) error

func (sf SinkFunc) Send(ctx context.Context, nodes []*timing.Node) error {
	return sf(ctx, nodes)
}

// LogSink writes each tree as JSON to the logger found in the context
type LogSink struct {
	codec *timingcodec.Codec
}

// NewLogSink creates a LogSink.  Pretty selects indented output.
func NewLogSink(o Options) *LogSink {
	co := timingcodec.DefaultOptions()
	co.Pretty = o.Pretty
	return &LogSink{codec: timingcodec.MustNew(co)}
}

func (ls *LogSink) Send(ctx context.Context, nodes []*timing.Node) error {
	data, err := ls.codec.Marshal(nodes)
	if err != nil {
		return err
	}

	return logging.Info(logging.GetLogger(ctx)).Log(
		logging.MessageKey(), "timings",
		"total", timing.Total(nodes),
		"nodes", string(data),
	)
}
