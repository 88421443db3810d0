// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timingredis

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yongfa365/perflog/timing/timinghttp"
)

func TestFromViper(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert := assert.New(t)
		assert.Nil(Sub(nil))

		o, err := FromViper(nil)
		assert.NoError(err)
		assert.Equal(Options{}, o)
		assert.Equal(DefaultKey, o.key())
	})

	t.Run("Configured", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			v       = viper.New()
		)

		v.SetConfigType("yaml")
		require.NoError(v.ReadConfig(strings.NewReader(`
timing:
  redis:
    address: localhost:6379
    db: 2
    key: timings
    maxLen: 500
    ttl: 24h
    format: msgpack
`)))

		o, err := FromViper(Sub(timinghttp.Sub(v)))
		require.NoError(err)
		assert.Equal(
			Options{
				Address: "localhost:6379",
				DB:      2,
				Key:     "timings",
				MaxLen:  500,
				TTL:     24 * time.Hour,
				Format:  "msgpack",
			},
			o,
		)
	})
}
