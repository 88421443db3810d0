// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"net/http"

	"github.com/gorilla/mux"
)

const RouteKey = "route"

// RouteKeyValues returns the logging key/value pair describing the matched gorilla/mux route.
// Requests that did not pass through a mux.Router are described by their URL path.
func RouteKeyValues(request *http.Request) []interface{} {
	if route := mux.CurrentRoute(request); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return []interface{}{RouteKey, template}
		}
	}

	if request.URL != nil {
		return []interface{}{RouteKey, request.URL.Path}
	}

	return nil
}
