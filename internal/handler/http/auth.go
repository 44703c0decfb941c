// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/MKhiriev/parse-guard/models"
)

const (
	accessTokenCookie   = "access_token"
	accessTokenLifetime = 7 * 24 * time.Hour

	// returnTokenParam asks register and login to put the token in the body
	// instead of a cookie.
	returnTokenParam = "return_token"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var data models.RegisterData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")
	h.writeAuthResponse(w, r, registeredUser, http.StatusCreated, wantsTokenInBody(r))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.LoginCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")
	h.writeAuthResponse(w, r, foundUser, http.StatusOK, wantsTokenInBody(r))
}

// refresh issues a fresh token for the authenticated user. The token is
// always returned in the body.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	h.writeAuthResponse(w, r, user, http.StatusOK, true)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return models.User{}, false
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return models.User{}, false
	}

	return user, true
}

// writeAuthResponse signs a token for user and delivers it. The
// Authorization response header is always set. inBody selects between the
// access_token body field and an HttpOnly cookie.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int, inBody bool) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.AuthResponse{
		TokenType: models.TokenTypeBearer,
		User:      user,
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if inBody {
		resp.Token = token.SignedString
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:     accessTokenCookie,
			Value:    token.SignedString,
			Path:     "/",
			MaxAge:   int(accessTokenLifetime.Seconds()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}

	writeJSON(w, r, resp, status)
}

func wantsTokenInBody(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(returnTokenParam))
	return err == nil && v
}

// requireUserID reads the user id stored by the auth middleware. A missing
// id means the route was mounted without auth.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingUserID)
		return "", false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
