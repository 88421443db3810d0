// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timing

import (
	"time"

	"github.com/google/uuid"
)

// Group collects the nodes of one concurrent sub-flow of a Scope.  Nodes recorded in a group
// are invisible to the scope until Close is called, at which point they are appended to the
// scope's sequence as a contiguous run.
//
// The group's checkpoint marker survives Close, so reusing an id continues the chain of
// Checkpoint measurements instead of restarting it.
type Group struct {
	id    uuid.UUID
	scope *Scope
	b     bucket
}

// ID returns the correlation token of this group
func (g *Group) ID() uuid.UUID {
	return g.id
}

// Attach records an explicit duration, truncated to whole milliseconds
func (g *Group) Attach(name string, d time.Duration) *Node {
	return g.b.attach(name, d.Milliseconds())
}

// AttachMillis records a millisecond value, discarding any fractional part
func (g *Group) AttachMillis(name string, ms float64) *Node {
	return g.b.attach(name, millis(ms))
}

// AttachSince records the time elapsed between begin and now
func (g *Group) AttachSince(name string, begin time.Time) *Node {
	return g.Attach(name, g.scope.Now().Sub(begin))
}

// Checkpoint records the time elapsed since the previous Checkpoint in this group, or since
// the group was created.
func (g *Group) Checkpoint(name string) *Node {
	return g.Attach(name, g.b.checkpoint(g.scope.Now()))
}

// Nodes returns a copy of the nodes this group currently holds
func (g *Group) Nodes() []*Node {
	return g.b.snapshot()
}

// Len returns the number of nodes this group currently holds
func (g *Group) Len() int {
	return g.b.len()
}

// Clear discards this group's nodes
func (g *Group) Clear() {
	g.b.drain()
}

// Close appends this group's nodes to the end of its scope's sequence and empties the group
func (g *Group) Close() {
	if nodes := g.b.drain(); len(nodes) > 0 {
		g.scope.main.append(nodes)
	}
}
