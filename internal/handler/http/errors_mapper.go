// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/MKhiriev/parse-guard/internal/validators"
)

// errorResponse describes the ApiError written for a known error. An empty
// message means the error text itself is shown, which is used for
// validation errors only.
type errorResponse struct {
	status  int
	code    string
	message string
}

var errorStatusMap = map[error]errorResponse{
	ErrInvalidJSON:  {http.StatusBadRequest, app.CodeValidation, app.MsgInvalidDataProvided},
	ErrInvalidLimit: {http.StatusBadRequest, app.CodeValidation, ""},

	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.CodeValidation, ""},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.CodeUnauthorized, app.MsgInvalidEmailPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.CodeUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrAnalysisFailed:          {http.StatusBadGateway, app.CodeBadGateway, app.MsgAnalysisFailed},

	validators.ErrEmptyTitle:       {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrTitleTooLong:     {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrInvalidStatus:    {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrInvalidPriority:  {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrInvalidRiskLevel: {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrSetAndClear:      {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrNoFieldsToUpdate: {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrInvalidEmail:     {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrInvalidPassword:  {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrNameTooLong:      {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrEmptyContent:     {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrContentTooLarge:  {http.StatusBadRequest, app.CodeValidation, ""},
	validators.ErrEmptyText:        {http.StatusBadRequest, app.CodeValidation, ""},

	store.ErrEmailAlreadyExists:     {http.StatusConflict, app.CodeConflict, app.MsgEmailAlreadyExists},
	store.ErrNoUserWasFound:         {http.StatusNotFound, app.CodeNotFound, app.MsgUserNotFound},
	store.ErrComplianceItemNotFound: {http.StatusNotFound, app.CodeNotFound, app.MsgComplianceItemNotFound},
	store.ErrDocumentNotFound:       {http.StatusNotFound, app.CodeNotFound, app.MsgDocumentNotFound},
	store.ErrContentNotFound:        {http.StatusNotFound, app.CodeNotFound, app.MsgDocumentNotFound},
	store.ErrNothingToUpdate:        {http.StatusBadRequest, app.CodeValidation, ""},
}

var internalError = errorResponse{http.StatusInternalServerError, app.CodeInternal, app.MsgInternalServerError}

// responseFromError finds the ApiError for err. Unknown errors, including
// every low-level store error, become 500 without details.
func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.message == "" {
				resp.message = err.Error()
			}
			return resp
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the matching ApiError.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteError(w, resp.status, resp.code, resp.message)
}
