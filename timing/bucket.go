// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timing

import (
	"math"
	"sync"
	"time"
)

// bucket is an ordered sequence of nodes together with the time of its latest checkpoint
type bucket struct {
	lock  sync.Mutex
	nodes []*Node
	last  time.Time
}

func (b *bucket) attach(name string, value int64) *Node {
	n := &Node{Name: name, Value: value}
	b.lock.Lock()
	b.nodes = append(b.nodes, n)
	b.lock.Unlock()
	return n
}

func (b *bucket) append(nodes []*Node) {
	b.lock.Lock()
	b.nodes = append(b.nodes, nodes...)
	b.lock.Unlock()
}

// checkpoint returns the time elapsed since the previous checkpoint and moves the
// marker to now.  A zero marker is treated as now, yielding a zero duration.
func (b *bucket) checkpoint(now time.Time) time.Duration {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.last.IsZero() {
		b.last = now
	}

	d := now.Sub(b.last)
	b.last = now
	return d
}

func (b *bucket) mark(t time.Time) {
	b.lock.Lock()
	b.last = t
	b.lock.Unlock()
}

func (b *bucket) snapshot() []*Node {
	b.lock.Lock()
	defer b.lock.Unlock()

	if len(b.nodes) == 0 {
		return nil
	}

	copyOf := make([]*Node, len(b.nodes))
	copy(copyOf, b.nodes)
	return copyOf
}

// drain removes and returns every node, leaving the marker untouched
func (b *bucket) drain() []*Node {
	b.lock.Lock()
	nodes := b.nodes
	b.nodes = nil
	b.lock.Unlock()
	return nodes
}

func (b *bucket) len() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.nodes)
}

// millis truncates a float millisecond value toward zero.  NaN becomes zero and anything
// beyond the int64 range, infinities included, is clamped.
func millis(ms float64) int64 {
	switch {
	case math.IsNaN(ms):
		return 0
	case ms >= math.MaxInt64:
		return math.MaxInt64
	case ms <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(ms)
	}
}
