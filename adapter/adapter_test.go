// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yongfa365/perflog/logging"
)

func newTestLogger(min zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(min)
	return Logger{Logger: zap.New(core)}, logs
}

func TestLogger(t *testing.T) {
	t.Run("Levels", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			l, logs = newTestLogger(zapcore.DebugLevel)
		)

		require.NoError(logging.Error(l).Log(logging.MessageKey(), "e"))
		require.NoError(logging.Warn(l).Log(logging.MessageKey(), "w"))
		require.NoError(logging.Info(l).Log(logging.MessageKey(), "i"))
		require.NoError(logging.Debug(l).Log(logging.MessageKey(), "d"))
		require.NoError(l.Log(logging.MessageKey(), "none"))

		entries := logs.AllUntimed()
		require.Len(entries, 5)
		assert.Equal(zapcore.ErrorLevel, entries[0].Level)
		assert.Equal("e", entries[0].Message)
		assert.Equal(zapcore.WarnLevel, entries[1].Level)
		assert.Equal(zapcore.InfoLevel, entries[2].Level)
		assert.Equal(zapcore.DebugLevel, entries[3].Level)
		assert.Equal(zapcore.InfoLevel, entries[4].Level)
	})

	t.Run("Fields", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			l, logs = newTestLogger(zapcore.DebugLevel)
		)

		assert.NoError(l.Log("total", int64(42), "route", "/hotels", "dangling"))
		entries := logs.AllUntimed()
		if assert.Len(entries, 1) {
			fields := entries[0].ContextMap()
			assert.Equal(int64(42), fields["total"])
			assert.Equal("/hotels", fields["route"])
			assert.Contains(fields, "dangling")
			assert.Empty(entries[0].Message)
		}
	})

	t.Run("Filtered", func(t *testing.T) {
		l, logs := newTestLogger(zapcore.WarnLevel)
		assert.NoError(t, logging.Info(l).Log(logging.MessageKey(), "quiet"))
		assert.Zero(t, logs.Len())
	})
}
