// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"strings"

	"github.com/go-kit/log"
)

// TestSink is the part of testing.T and testing.B that a test logger writes to
type TestSink interface {
	Log(...interface{})
}

// NewTestLogger produces a go-kit Logger that sends each entry to t.Log as a single line, so
// that output is attributed to the test that produced it.  The entry is formatted as JSON or
// logfmt per o, and filtered by o's level.  A nil Options logs everything as logfmt.
func NewTestLogger(o *Options, t TestSink) log.Logger {
	if o == nil {
		o = &Options{Level: "DEBUG"}
	}

	newLogger := o.loggerFactory()
	return NewFilter(
		log.LoggerFunc(func(keyvals ...interface{}) error {
			var output bytes.Buffer
			if err := newLogger(&output).Log(keyvals...); err != nil {
				return err
			}

			t.Log(strings.TrimSuffix(output.String(), "\n"))
			return nil
		}),
		o,
	)
}
