// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timinghttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRouteKeyValues(t *testing.T) {
	t.Run("Mux", func(t *testing.T) {
		var (
			assert = assert.New(t)
			router = mux.NewRouter()
			actual []interface{}
		)

		router.HandleFunc("/hotels/{id}", func(response http.ResponseWriter, request *http.Request) {
			actual = RouteKeyValues(request)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/hotels/123", nil))
		assert.Equal([]interface{}{RouteKey, "/hotels/{id}"}, actual)
	})

	t.Run("NoMux", func(t *testing.T) {
		assert.Equal(t,
			[]interface{}{RouteKey, "/hotels/123"},
			RouteKeyValues(httptest.NewRequest("GET", "/hotels/123?x=1", nil)),
		)
	})

	t.Run("NoURL", func(t *testing.T) {
		assert.Nil(t, RouteKeyValues(new(http.Request)))
	})
}
