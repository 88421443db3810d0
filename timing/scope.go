// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timing

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yongfa365/perflog/clock"
)

// Scope holds the timings recorded for one unit of work.  Instances should be created with
// NewScope or Init, although the zero value is usable and reads the system clock.
//
// All methods are safe for concurrent use.  Concurrent sub-flows should record into their own
// Group so that their nodes stay contiguous once the group is closed.
type Scope struct {
	clock  clock.Interface
	main   bucket
	groups sync.Map // uuid.UUID -> *Group
}

// Option configures a Scope
type Option func(*Scope)

// Clock sets the clock a Scope samples time from.  If c is nil, this option does nothing.
func Clock(c clock.Interface) Option {
	return func(s *Scope) {
		if c != nil {
			s.clock = c
		}
	}
}

// NewScope creates a Scope whose implicit checkpoint chain starts now
func NewScope(o ...Option) *Scope {
	s := new(Scope)
	for _, option := range o {
		option(s)
	}

	s.main.mark(s.Now())
	return s
}

// Now returns the current time according to the scope's clock.  Callers timing work
// for AttachSince should take their start time here.
func (s *Scope) Now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}

	return time.Now()
}

// Since returns the time elapsed since t according to the scope's clock.  Together with Now,
// this makes a Scope usable as the clock of another Scope.
func (s *Scope) Since(t time.Time) time.Duration {
	return s.Now().Sub(t)
}

// Append adds nodes built elsewhere, such as a subtree, to the end of the scope's sequence.
// Nil nodes are skipped.
func (s *Scope) Append(nodes ...*Node) {
	kept := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			kept = append(kept, n)
		}
	}

	s.main.append(kept)
}

// Attach records an explicit duration, truncated to whole milliseconds, in the scope's sequence.
func (s *Scope) Attach(name string, d time.Duration) *Node {
	return s.main.attach(name, d.Milliseconds())
}

// AttachMillis records a duration already expressed in milliseconds, such as one taken from an
// external measurement.  Any fractional part is discarded.  NaN records zero, and values outside
// the range of an int64 are clamped to it.
func (s *Scope) AttachMillis(name string, ms float64) *Node {
	return s.main.attach(name, millis(ms))
}

// AttachSince records the time elapsed between begin and now
func (s *Scope) AttachSince(name string, begin time.Time) *Node {
	return s.Attach(name, s.Now().Sub(begin))
}

// Checkpoint records the time elapsed since the previous Checkpoint on this scope, or since
// the scope was created if there was none.
func (s *Scope) Checkpoint(name string) *Node {
	return s.Attach(name, s.main.checkpoint(s.Now()))
}

// Nodes returns the nodes recorded so far, in order.  The returned slice is a copy, but the
// nodes themselves are shared with the scope.
func (s *Scope) Nodes() []*Node {
	return s.main.snapshot()
}

// Clear discards every node in the scope's sequence.  Groups and checkpoint markers are left as is.
func (s *Scope) Clear() {
	s.main.drain()
}

// Group returns the group for the given id, creating it if necessary.  Concurrent callers
// that present the same new id always receive the same Group.
func (s *Scope) Group(id uuid.UUID) *Group {
	if g, ok := s.lookup(id); ok {
		return g
	}

	candidate := &Group{id: id, scope: s}
	candidate.b.mark(s.Now())
	actual, _ := s.groups.LoadOrStore(id, candidate)
	return actual.(*Group)
}

func (s *Scope) lookup(id uuid.UUID) (*Group, bool) {
	if v, ok := s.groups.Load(id); ok {
		return v.(*Group), true
	}

	return nil, false
}

// CloseGroup moves the nodes of the given group, in order, to the end of this scope's sequence.
// Closing a group that does not exist or that holds no nodes does nothing.
func (s *Scope) CloseGroup(id uuid.UUID) {
	if g, ok := s.lookup(id); ok {
		g.Close()
	}
}

// ClearGroup discards the nodes of the given group without touching its checkpoint marker
func (s *Scope) ClearGroup(id uuid.UUID) {
	if g, ok := s.lookup(id); ok {
		g.Clear()
	}
}

// OpenGroups returns the number of groups that still hold nodes which were never closed
// into the scope.
func (s *Scope) OpenGroups() (count int) {
	s.groups.Range(func(_, v interface{}) bool {
		if v.(*Group).Len() > 0 {
			count++
		}

		return true
	})

	return
}

// Len returns the number of entries held by this scope: nodes in its own sequence, plus
// each group and the nodes that group holds.
func (s *Scope) Len() int {
	n := s.main.len()
	s.groups.Range(func(_, v interface{}) bool {
		n += 1 + v.(*Group).Len()
		return true
	})

	return n
}

// reset returns the scope to its freshly created state
func (s *Scope) reset() {
	s.groups.Range(func(k, _ interface{}) bool {
		s.groups.Delete(k)
		return true
	})

	s.main.drain()
	s.main.mark(s.Now())
}
