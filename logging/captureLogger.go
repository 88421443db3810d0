// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"sync"

	"github.com/go-kit/log"
)

// Event is one captured log entry, keyed the way it was logged
type Event map[interface{}]interface{}

// Message returns the entry's MessageKey value, or nil if it has none
func (e Event) Message() interface{} {
	return e[MessageKey()]
}

// CaptureLogger is a go-kit Logger that records every entry in memory so tests can assert on
// what a component logged.  It is safe for concurrent use.
type CaptureLogger struct {
	lock   sync.Mutex
	events []Event
}

var _ log.Logger = (*CaptureLogger)(nil)

// NewCaptureLogger returns an empty CaptureLogger
func NewCaptureLogger() *CaptureLogger {
	return new(CaptureLogger)
}

// Log records keyvals as an Event.  A dangling key is recorded with log.ErrMissingValue,
// matching the go-kit encoders.
func (cl *CaptureLogger) Log(keyvals ...interface{}) error {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals[:len(keyvals):len(keyvals)], log.ErrMissingValue)
	}

	e := make(Event, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		e[keyvals[i]] = keyvals[i+1]
	}

	cl.lock.Lock()
	cl.events = append(cl.events, e)
	cl.lock.Unlock()
	return nil
}

// Events returns the entries recorded so far, oldest first
func (cl *CaptureLogger) Events() []Event {
	cl.lock.Lock()
	defer cl.lock.Unlock()
	return append([]Event(nil), cl.events...)
}

// Find returns the first recorded entry with the given message, or nil
func (cl *CaptureLogger) Find(msg interface{}) Event {
	for _, e := range cl.Events() {
		if e.Message() == msg {
			return e
		}
	}

	return nil
}

// Messages returns the message of each recorded entry, in order
func (cl *CaptureLogger) Messages() (messages []interface{}) {
	for _, e := range cl.Events() {
		messages = append(messages, e.Message())
	}

	return
}
