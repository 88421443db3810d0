// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Interface is the subset of the time package that timing code needs.  Tests substitute
// a clocktest implementation to make elapsed-time values deterministic.
type Interface interface {
	Now() time.Time
	Since(time.Time) time.Duration
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}
