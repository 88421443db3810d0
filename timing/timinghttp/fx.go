// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"github.com/go-kit/log"
	"github.com/justinas/alice"
	"github.com/spf13/viper"
	"github.com/yongfa365/perflog/adapter"
	"github.com/yongfa365/perflog/logging"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ConstructorName is the fx name of the alice.Constructor produced by Provide
const ConstructorName = "timing_constructor"

// SinkGroup is the fx value group from which Provide collects sinks
const SinkGroup = "timing_sinks"

// ProvideIn holds the dependencies for Provide.  Everything is optional:  without a Viper
// the zero Options are used, and without Measures no metrics are recorded.  The logger is
// the injected go-kit Logger if there is one, else the injected zap.Logger, else one built
// from the "log" subtree of the Viper instance.
type ProvideIn struct {
	fx.In

	Viper    *viper.Viper `optional:"true"`
	Logger   log.Logger   `optional:"true"`
	Zap      *zap.Logger  `optional:"true"`
	Measures *Measures    `optional:"true"`
	Sinks    []Sink       `group:"timing_sinks"`
}

func (in ProvideIn) logger() (log.Logger, error) {
	switch {
	case in.Logger != nil:
		return in.Logger, nil

	case in.Zap != nil:
		return adapter.Logger{Logger: in.Zap}, nil

	default:
		return logging.NewFromViper(in.Viper)
	}
}

// ProvideOut holds the components emitted by Provide
type ProvideOut struct {
	fx.Out

	Options     Options
	Constructor alice.Constructor `name:"timing_constructor"`
}

// Provide builds the Populate constructor as an uber/fx component, configured from the
// "timing" subkey of the Viper instance when there is one.  A LogSink is always included.
func Provide() fx.Option {
	return fx.Provide(
		func(in ProvideIn) (ProvideOut, error) {
			o, err := FromViper(Sub(in.Viper))
			if err != nil {
				return ProvideOut{}, err
			}

			logger, err := in.logger()
			if err != nil {
				return ProvideOut{}, err
			}

			c, err := Populate(
				o,
				WithLogger(logger),
				WithMeasures(in.Measures),
				WithSinks(NewLogSink(o)),
				WithSinks(in.Sinks...),
			)

			if err != nil {
				return ProvideOut{}, err
			}

			return ProvideOut{
				Options:     o,
				Constructor: c,
			}, nil
		},
	)
}
