// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"sync"
)

// timingResponseWriter runs a callback just before the response header is committed,
// which is the last moment the timing header can still be added.
type timingResponseWriter struct {
	http.ResponseWriter
	beforeWrite func(http.Header)
	once        sync.Once
	code        int
	hijacked    bool
}

var _ http.Hijacker = &timingResponseWriter{}
var _ http.Flusher = &timingResponseWriter{}
var _ http.Pusher = &timingResponseWriter{}

func (trw *timingResponseWriter) commit(code int) {
	trw.once.Do(func() {
		trw.code = code
		trw.beforeWrite(trw.ResponseWriter.Header())
	})
}

func (trw *timingResponseWriter) WriteHeader(code int) {
	trw.commit(code)
	trw.ResponseWriter.WriteHeader(code)
}

func (trw *timingResponseWriter) Write(data []byte) (int, error) {
	trw.commit(http.StatusOK)
	return trw.ResponseWriter.Write(data)
}

// StatusCode returns the committed status code, or zero if nothing was written yet
func (trw *timingResponseWriter) StatusCode() int {
	return trw.code
}

// Hijacked tests whether the decorated handler took over the connection
func (trw *timingResponseWriter) Hijacked() bool {
	return trw.hijacked
}

func (trw *timingResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := trw.ResponseWriter.(http.Hijacker); ok {
		conn, rw, err := h.Hijack()
		if err == nil {
			// the connection no longer carries an HTTP response
			trw.once.Do(func() {})
			trw.hijacked = true
		}

		return conn, rw, err
	}

	return nil, nil, errors.New("hijacker not supported")
}

func (trw *timingResponseWriter) Flush() {
	trw.commit(http.StatusOK)
	if f, ok := trw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (trw *timingResponseWriter) Push(target string, opts *http.PushOptions) error {
	if p, ok := trw.ResponseWriter.(http.Pusher); ok {
		return p.Push(target, opts)
	}

	return errors.New("pusher not supported")
}
