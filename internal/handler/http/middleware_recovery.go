// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/gamey-gateway/internal/logger"
)

// withRecovery turns a panic in a handler into a JSON 500 response. The
// stack goes to the log only. http.ErrAbortHandler is re-raised so that
// net/http can abort the connection as it expects.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			h.writeErrorMessage(w, r, http.StatusInternalServerError, msgInternal)
		}()

		next.ServeHTTP(w, r)
	})
}
