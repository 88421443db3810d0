// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"context"
	"net/http"

	gokithttp "github.com/go-kit/kit/transport/http"
	"github.com/yongfa365/perflog/timing"
)

type requestedKey struct{}

func withRequested(parent context.Context, requested bool) context.Context {
	return context.WithValue(parent, requestedKey{}, requested)
}

// Requested reports whether the request that produced ctx asked for the timing header
func Requested(ctx context.Context) bool {
	requested, _ := ctx.Value(requestedKey{}).(bool)
	return requested
}

// SetScope produces a go-kit RequestFunc that starts a new timing scope for each request
// and remembers whether the request asked for the timing header.  This is the transport
// equivalent of Populate for go-kit servers.
func SetScope(o Options, so ...timing.Option) gokithttp.RequestFunc {
	return func(ctx context.Context, request *http.Request) context.Context {
		return withRequested(
			timing.Init(ctx, so...),
			o.Requested(request),
		)
	}
}
