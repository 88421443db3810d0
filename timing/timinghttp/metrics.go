// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Names for our metrics
const (
	ScopeCount        = "timing_scopes"
	ScopeMilliseconds = "timing_scope_milliseconds"
	OpenGroupCount    = "timing_open_groups"
)

const (
	scopeCountHelp        = "The number of timing scopes completed"
	scopeMillisecondsHelp = "The sum of the top-level node values of each completed timing scope"
	openGroupCountHelp    = "The number of timing groups still open when their scope completed"
)

// Measures holds the metrics updated as each request's scope completes
type Measures struct {
	Scopes       metrics.Counter
	Milliseconds metrics.Histogram
	OpenGroups   metrics.Counter
}

// NewMeasures realizes Measures through a go-kit provider.  A nil provider produces discarded metrics.
func NewMeasures(p provider.Provider) *Measures {
	if p == nil {
		p = provider.NewDiscardProvider()
	}

	return &Measures{
		Scopes:       p.NewCounter(ScopeCount),
		Milliseconds: p.NewHistogram(ScopeMilliseconds, 10),
		OpenGroups:   p.NewCounter(OpenGroupCount),
	}
}

func discardMeasures() *Measures {
	return &Measures{
		Scopes:       discard.NewCounter(),
		Milliseconds: discard.NewHistogram(),
		OpenGroups:   discard.NewCounter(),
	}
}

// MeasuresIn is the set of dependencies for ProvideMetrics.  If no Registerer is
// present, the prometheus default is used.
type MeasuresIn struct {
	fx.In

	Registerer prometheus.Registerer `optional:"true"`
}

// NewPrometheusMeasures creates and registers the prometheus collectors behind a Measures
func NewPrometheusMeasures(r prometheus.Registerer) (*Measures, error) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}

	scopes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: ScopeCount,
		Help: scopeCountHelp,
	}, nil)

	milliseconds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    ScopeMilliseconds,
		Help:    scopeMillisecondsHelp,
		Buckets: []float64{1, 5, 10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, nil)

	openGroups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: OpenGroupCount,
		Help: openGroupCountHelp,
	}, nil)

	for _, c := range []prometheus.Collector{scopes, milliseconds, openGroups} {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}

	return &Measures{
		Scopes:       gokitprometheus.NewCounter(scopes),
		Milliseconds: gokitprometheus.NewHistogram(milliseconds),
		OpenGroups:   gokitprometheus.NewCounter(openGroups),
	}, nil
}

// ProvideMetrics provides the Measures for this package as uber/fx options
func ProvideMetrics() fx.Option {
	return fx.Provide(
		func(in MeasuresIn) (*Measures, error) {
			return NewPrometheusMeasures(in.Registerer)
		},
	)
}
