// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/gamey-gateway/internal/utils"
	"github.com/MKhiriev/gamey-gateway/models"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path that exists under another method answers the same JSON 404 as an
// unknown path instead of chi's 405. Requests whose method is in fact
// registered for the exact path are passed back to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var handlers map[string]http.Handler
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				handlers = route.Handlers
				break
			}
		}

		if _, ok := handlers[r.Method]; !ok {
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: msgNotFound}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
