// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yongfa365/perflog/logging"
	"github.com/yongfa365/perflog/timing"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func serveProvided(t *testing.T, options ...fx.Option) {
	var constructor alice.Constructor
	app := fx.New(
		append(
			[]fx.Option{
				fx.NopLogger,
				Provide(),
				fx.Populate(
					fx.Annotate(&constructor, fx.ParamTags(`name:"timing_constructor"`)),
				),
			},
			options...,
		)...,
	)

	require.NoError(t, app.Err())
	require.NotNil(t, constructor)

	handler := alice.New(constructor).ThenFunc(func(response http.ResponseWriter, request *http.Request) {
		timing.Attach(request.Context(), "india", 5*time.Millisecond)
	})

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
}

func TestProvide(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		var (
			assert   = assert.New(t)
			require  = require.New(t)
			registry = prometheus.NewRegistry()
			v        = viper.New()
			received []*timing.Node

			options     Options
			constructor alice.Constructor
		)

		v.SetConfigType("yaml")
		require.NoError(v.ReadConfig(strings.NewReader(`
timing:
  header: X-Timings
  always: true
`)))

		app := fx.New(
			fx.NopLogger,
			fx.Supply(v),
			fx.Provide(
				func() prometheus.Registerer { return registry },
				func() log.Logger { return logging.NewTestLogger(nil, t) },
				fx.Annotated{
					Group: SinkGroup,
					Target: func() Sink {
						return SinkFunc(func(_ context.Context, nodes []*timing.Node) error {
							received = nodes
							return nil
						})
					},
				},
			),
			ProvideMetrics(),
			Provide(),
			fx.Populate(
				&options,
				fx.Annotate(&constructor, fx.ParamTags(`name:"timing_constructor"`)),
			),
		)

		require.NoError(app.Err())
		assert.Equal("X-Timings", options.Header)
		require.NotNil(constructor)

		handler := alice.New(constructor).ThenFunc(func(response http.ResponseWriter, request *http.Request) {
			timing.Attach(request.Context(), "hotel", time.Second)
		})

		response := httptest.NewRecorder()
		handler.ServeHTTP(response, httptest.NewRequest("GET", "/", nil))

		assert.Equal(`[{"N":"hotel","V":1000}]`, response.Header().Get("X-Timings"))
		assert.Len(received, 1)

		count, err := testutil.GatherAndCount(registry, ScopeCount)
		require.NoError(err)
		assert.Equal(1, count)
	})

	t.Run("Bare", func(t *testing.T) {
		var constructor alice.Constructor
		app := fx.New(
			fx.NopLogger,
			Provide(),
			fx.Populate(
				fx.Annotate(&constructor, fx.ParamTags(`name:"timing_constructor"`)),
			),
		)

		assert.NoError(t, app.Err())
		assert.NotNil(t, constructor)
	})

	t.Run("Zap", func(t *testing.T) {
		core, observed := observer.New(zapcore.DebugLevel)
		serveProvided(t, fx.Supply(zap.New(core)))

		entries := observed.FilterMessage("request complete").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.EqualValues(t, 5, entries[0].ContextMap()[TotalKey])
	})

	t.Run("LogFile", func(t *testing.T) {
		var (
			file = filepath.Join(t.TempDir(), "timing.log")
			v    = viper.New()
		)

		v.Set("log.file", file)
		v.Set("log.level", "debug")
		serveProvided(t, fx.Supply(v))

		contents, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(contents), `msg="request complete"`)
		assert.Contains(t, string(contents), "timings")
	})

	t.Run("BadLogConfig", func(t *testing.T) {
		v := viper.New()
		v.Set("log.maxage", "forever")

		var options Options
		app := fx.New(
			fx.NopLogger,
			fx.Supply(v),
			Provide(),
			fx.Populate(&options),
		)

		assert.Error(t, app.Err())
	})

	t.Run("BadConfig", func(t *testing.T) {
		v := viper.New()
		v.Set("timing.format", "xml")

		var options Options
		app := fx.New(
			fx.NopLogger,
			fx.Supply(v),
			Provide(),
			fx.Populate(&options),
		)

		assert.Error(t, app.Err())
	})
}
