// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestOptions(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert := assert.New(t)
		var o *Options
		assert.NotNil(o.output())
		assert.NotNil(o.loggerFactory())
		assert.Empty(o.level())
	})

	t.Run("Stdout", func(t *testing.T) {
		assert := assert.New(t)
		o := &Options{File: StdoutFile}
		_, isLumberjack := o.output().(*lumberjack.Logger)
		assert.False(isLumberjack)
	})

	t.Run("File", func(t *testing.T) {
		assert := assert.New(t)
		o := &Options{
			File:       filepath.Join(t.TempDir(), "perflog.log"),
			MaxSize:    10,
			MaxAge:     3,
			MaxBackups: 2,
			Level:      "info",
		}

		lj, ok := o.output().(*lumberjack.Logger)
		if assert.True(ok) {
			assert.Equal(o.File, lj.Filename)
			assert.Equal(10, lj.MaxSize)
			assert.Equal(3, lj.MaxAge)
			assert.Equal(2, lj.MaxBackups)
		}

		assert.Equal("info", o.level())
	})

	t.Run("JSON", func(t *testing.T) {
		assert := assert.New(t)
		file := filepath.Join(t.TempDir(), "perflog.json")
		logger := New(&Options{File: file, JSON: true, Level: "info"})
		assert.NoError(Info(logger).Log(MessageKey(), "written"))

		data, err := os.ReadFile(file)
		assert.NoError(err)
		assert.Contains(string(data), `"msg":"written"`)
	})
}
