// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"sync"
	"time"

	"github.com/yongfa365/perflog/clock"
)

// Manual is a clock.Interface whose time only moves when Add or Set is called.
// It is safe for concurrent use.
type Manual struct {
	lock sync.RWMutex
	now  time.Time
}

var _ clock.Interface = (*Manual)(nil)

// NewManual returns a Manual clock positioned at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.now
}

func (m *Manual) Since(t time.Time) time.Duration {
	return m.Now().Sub(t)
}

// Add moves the clock forward by d and returns the new time
func (m *Manual) Add(d time.Duration) time.Time {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Set positions the clock at an absolute time
func (m *Manual) Set(t time.Time) {
	m.lock.Lock()
	m.now = t
	m.lock.Unlock()
}
