// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FallbackLimit is the number of entries the fallback scope may accumulate before the
// next Init discards them.
const FallbackLimit = 1000

var fallback = NewScope()

// Fallback returns the process-wide scope used whenever a context carries no Scope.  It is
// shared by every such caller, so its contents are only meaningful in single-flow code such
// as tests.
func Fallback() *Scope {
	return fallback
}

// PurgeFallback empties the fallback scope if it holds more than FallbackLimit entries,
// returning true if it did so.  Recorded data is lost.
func PurgeFallback() bool {
	if fallback.Len() > FallbackLimit {
		fallback.reset()
		return true
	}

	return false
}

type scopeKey struct{}

// WithScope returns a context carrying the given Scope.  If s is nil, parent is returned as is.
func WithScope(parent context.Context, s *Scope) context.Context {
	if s == nil {
		return parent
	}

	if parent == nil {
		parent = context.Background()
	}

	return context.WithValue(parent, scopeKey{}, s)
}

// FromContext returns the Scope carried by ctx, or Fallback() if there is none
func FromContext(ctx context.Context) *Scope {
	if ctx != nil {
		if s, ok := ctx.Value(scopeKey{}).(*Scope); ok {
			return s
		}
	}

	return Fallback()
}

// Init starts a unit of work: it creates a new Scope and returns a context carrying it.
// It should be called once per unit of work, before anything is attached.
func Init(parent context.Context, o ...Option) context.Context {
	PurgeFallback()
	return WithScope(parent, NewScope(o...))
}

// Attach records an explicit duration in the context's scope
func Attach(ctx context.Context, name string, d time.Duration) *Node {
	return FromContext(ctx).Attach(name, d)
}

// AttachMillis records a millisecond value in the context's scope
func AttachMillis(ctx context.Context, name string, ms float64) *Node {
	return FromContext(ctx).AttachMillis(name, ms)
}

// AttachSince records the time elapsed since begin in the context's scope
func AttachSince(ctx context.Context, name string, begin time.Time) *Node {
	return FromContext(ctx).AttachSince(name, begin)
}

// Checkpoint records the time since the previous checkpoint in the context's scope
func Checkpoint(ctx context.Context, name string) *Node {
	return FromContext(ctx).Checkpoint(name)
}

// GroupOf returns the group with the given id in the context's scope, creating it if necessary
func GroupOf(ctx context.Context, id uuid.UUID) *Group {
	return FromContext(ctx).Group(id)
}

// CloseGroup merges the given group into the context's scope
func CloseGroup(ctx context.Context, id uuid.UUID) {
	FromContext(ctx).CloseGroup(id)
}

// Clear empties the sequence of the context's scope
func Clear(ctx context.Context) {
	FromContext(ctx).Clear()
}

// Nodes returns the nodes recorded in the context's scope
func Nodes(ctx context.Context) []*Node {
	return FromContext(ctx).Nodes()
}
