// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package timingendpoint records timings around go-kit endpoints.  Each middleware writes to the
// scope carried by the endpoint's context, so a transport must establish one first, e.g. with
// timinghttp.SetScope as a ServerBefore.
package timingendpoint

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/yongfa365/perflog/timing"
)

// Since records how long the decorated endpoint took, under the given name.  The node is
// recorded whether or not the endpoint returns an error.
func Since(name string) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			s := timing.FromContext(ctx)
			start := s.Now()
			defer s.AttachSince(name, start)

			return next(ctx, request)
		}
	}
}

// Checkpoint records a checkpoint with the given name once the decorated endpoint returns
func Checkpoint(name string) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			defer timing.Checkpoint(ctx, name)
			return next(ctx, request)
		}
	}
}

// Nested gives the decorated endpoint a scope of its own.  When the endpoint returns, a single
// node with the given name and the endpoint's duration is recorded in the outer scope, with
// everything the endpoint recorded as its children.
func Nested(name string) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			var (
				outer = timing.FromContext(ctx)
				start = outer.Now()
				inner = timing.NewScope(timing.Clock(outer))
			)

			defer func() {
				n := &timing.Node{Name: name, Value: outer.Now().Sub(start).Milliseconds()}
				outer.Append(n.Add(inner.Nodes()...))
			}()

			return next(timing.WithScope(ctx, inner), request)
		}
	}
}
