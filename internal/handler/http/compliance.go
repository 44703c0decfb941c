// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCompliance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := models.ComplianceFilter{
		Status:   models.ComplianceStatus(query.Get("status")),
		Priority: models.Priority(query.Get("priority")),
	}

	items, err := h.services.ComplianceService.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.ComplianceItem{}
	}

	writeJSON(w, r, items, http.StatusOK)
}

func (h *Handler) getCompliance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	item, err := h.services.ComplianceService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) createCompliance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var dto models.CreateComplianceDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	item, err := h.services.ComplianceService.Create(r.Context(), userID, dto)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, item, http.StatusCreated)
}

func (h *Handler) updateCompliance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var dto models.UpdateComplianceDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	item, err := h.services.ComplianceService.Update(r.Context(), userID, chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) deleteCompliance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.ComplianceService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
