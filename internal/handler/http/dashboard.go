// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/parse-guard/models"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.services.DashboardService.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, stats, http.StatusOK)
}

// dashboardActivity serves the newest activity entries. The limit query
// parameter is optional and clamped by the service.
func (h *Handler) dashboardActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.DashboardService.Activity(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.ActivityItem{}
	}

	writeJSON(w, r, items, http.StatusOK)
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	return limit, nil
}
