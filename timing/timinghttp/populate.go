// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"context"
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/justinas/alice"
	"github.com/segmentio/ksuid"
	"github.com/yongfa365/perflog/clock"
	"github.com/yongfa365/perflog/logging"
	"github.com/yongfa365/perflog/timing"
)

const (
	RequestIDKey = "requestID"
	StatusKey    = "code"
	TotalKey     = "total"
	DurationKey  = "duration"
	OpenKey      = "open"
	HijackedKey  = "hijacked"
)

// Option configures the constructor returned by Populate
type Option func(*populator)

// WithLogger sets the base logger.  Each request's logger, available via logging.GetLogger,
// is derived from it.  A nil logger leaves the default in place.
func WithLogger(l log.Logger) Option {
	return func(p *populator) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMeasures sets the metrics updated as each scope completes
func WithMeasures(m *Measures) Option {
	return func(p *populator) {
		if m != nil {
			p.measures = m
		}
	}
}

// WithSinks appends sinks that receive each completed tree
func WithSinks(s ...Sink) Option {
	return func(p *populator) {
		p.sinks = append(p.sinks, s...)
	}
}

// WithClock sets the clock used both by request scopes and for the request duration
func WithClock(c clock.Interface) Option {
	return func(p *populator) {
		if c != nil {
			p.clock = c
		}
	}
}

type populator struct {
	options  Options
	header   string
	encoder  *HeaderEncoder
	logger   log.Logger
	measures *Measures
	sinks    []Sink
	clock    clock.Interface
}

// Populate returns an Alice-style constructor that gives each request its own timing scope.
// The decorated handler sees a context carrying the scope, a request-scoped logger, and
// the configured timeout.  If the request asked for timings, the tree recorded up to the first
// write of the response is emitted in the configured header.  Once the handler returns, the
// scope's total is measured and logged, open groups are reported, and the final tree is
// handed to each sink.
func Populate(o Options, opts ...Option) (alice.Constructor, error) {
	encoder, err := NewHeaderEncoder(o)
	if err != nil {
		return nil, err
	}

	p := &populator{
		options:  o,
		header:   o.header(),
		encoder:  encoder,
		logger:   logging.DefaultLogger(),
		measures: discardMeasures(),
		clock:    clock.System(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p.decorate, nil
}

func (p *populator) decorate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		start := p.clock.Now()
		logger := log.With(
			p.logger,
			append([]interface{}{RequestIDKey, ksuid.New().String()}, RouteKeyValues(request)...)...,
		)

		ctx := logging.WithLogger(request.Context(), logger)
		ctx = withRequested(timing.Init(ctx, timing.Clock(p.clock)), p.options.Requested(request))
		if p.options.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.options.Timeout)
			defer cancel()
		}

		writer := &timingResponseWriter{
			ResponseWriter: response,
			beforeWrite: func(h http.Header) {
				p.encoder.writeHeader(ctx, p.header, h, logger)
			},
		}

		next.ServeHTTP(writer, request.WithContext(ctx))
		if !writer.Hijacked() {
			writer.commit(http.StatusOK)
		}

		p.complete(ctx, logger, writer, p.clock.Since(start))
	})
}

func (p *populator) complete(ctx context.Context, logger log.Logger, writer *timingResponseWriter, duration time.Duration) {
	scope := timing.FromContext(ctx)
	nodes := scope.Nodes()
	total := timing.Total(nodes)

	p.measures.Scopes.Add(1)
	p.measures.Milliseconds.Observe(float64(total))

	if open := scope.OpenGroups(); open > 0 {
		p.measures.OpenGroups.Add(float64(open))
		logging.Warn(logger).Log(
			logging.MessageKey(), "timing groups left open; their nodes are not in the tree",
			OpenKey, open,
		)
	}

	logging.Debug(logger).Log(
		logging.MessageKey(), "request complete",
		StatusKey, writer.StatusCode(),
		HijackedKey, writer.Hijacked(),
		TotalKey, total,
		DurationKey, duration,
	)

	for _, s := range p.sinks {
		if err := s.Send(ctx, nodes); err != nil {
			logging.Error(logger).Log(logging.MessageKey(), "timing sink failed", logging.ErrorKey(), err)
		}
	}
}
