// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timingredis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/yongfa365/perflog/timing/timinghttp"
	"go.uber.org/fx"
)

// ProvideIn holds the dependencies for Provide
type ProvideIn struct {
	fx.In

	Viper     *viper.Viper `optional:"true"`
	Lifecycle fx.Lifecycle
}

// ProvideOut contributes zero or one sinks to the timinghttp sink group
type ProvideOut struct {
	fx.Out

	Sinks []timinghttp.Sink `group:"timing_sinks,flatten"`
}

// Provide configures a redis Sink from the "timing.redis" Viper subtree.  Nothing is contributed
// unless an address is configured.  The client is closed when the application stops.
func Provide() fx.Option {
	return fx.Provide(
		func(in ProvideIn) (ProvideOut, error) {
			o, err := FromViper(Sub(timinghttp.Sub(in.Viper)))
			if err != nil || len(o.Address) == 0 {
				return ProvideOut{}, err
			}

			client := redis.NewClient(&redis.Options{
				Addr:     o.Address,
				Password: o.Password,
				DB:       o.DB,
			})

			s, err := NewSink(client, o)
			if err != nil {
				client.Close()
				return ProvideOut{}, err
			}

			in.Lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return client.Close()
				},
			})

			return ProvideOut{Sinks: []timinghttp.Sink{s}}, nil
		},
	)
}
