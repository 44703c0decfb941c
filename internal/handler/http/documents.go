// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createDocumentFromText(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var doc models.CreateDocumentFromText
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	created, err := h.services.DocumentService.CreateFromText(r.Context(), userID, doc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	docs, err := h.services.DocumentService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}

	writeJSON(w, r, docs, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	doc, err := h.services.DocumentService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, doc, http.StatusOK)
}

// documentContent streams the stored body with the document's MIME type.
func (h *Handler) documentContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	doc, body, err := h.services.DocumentService.Content(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer body.Close()

	mimeType := doc.MimeType
	if mimeType == "" {
		mimeType = models.MimeTypeText
	}
	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		logger.FromRequest(r).Err(err).Str("document_id", doc.ID).Msg("error streaming document content")
	}
}
