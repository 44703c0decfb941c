// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler. A
// path served by the API under another method answers 404 with the usual
// ApiError body instead of chi's 405, so clients see one "not found" shape
// for every unsupported route. Requests the router can match after all are
// passed back to it.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("method not served")

		utils.WriteError(w, http.StatusNotFound, app.CodeNotFound, http.StatusText(http.StatusNotFound))
	}
}
