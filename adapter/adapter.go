// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package adapter lets a zap.Logger stand in wherever this module expects a go-kit log.Logger.
package adapter

import (
	"fmt"

	"github.com/go-kit/log/level"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yongfa365/perflog/logging"
)

// Logger adapts a zap.Logger to the go-kit log.Logger interface.  The go-kit level and message
// keys are lifted out of the key/value pairs and mapped onto zap's own level and message.
type Logger struct {
	*zap.Logger
}

// Log makes Logger implement log.Logger
func (l Logger) Log(keyvals ...interface{}) error {
	var (
		lv     = zapcore.InfoLevel
		msg    string
		fields = make([]zap.Field, 0, len(keyvals)/2+1)
	)

	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if i+1 >= len(keyvals) {
			fields = append(fields, zap.Any(key, nil))
			break
		}

		value := keyvals[i+1]
		switch {
		case keyvals[i] == level.Key():
			lv = zapLevel(value)

		case keyvals[i] == logging.MessageKey():
			msg = fmt.Sprint(value)

		default:
			fields = append(fields, zap.Any(key, value))
		}
	}

	if ce := l.Logger.Check(lv, msg); ce != nil {
		ce.Write(fields...)
	}

	return nil
}

func zapLevel(v interface{}) zapcore.Level {
	switch fmt.Sprint(v) {
	case level.DebugValue().String():
		return zapcore.DebugLevel
	case level.WarnValue().String():
		return zapcore.WarnLevel
	case level.ErrorValue().String():
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
