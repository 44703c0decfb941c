// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginCredentials is the body of POST /api/auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the body of POST /api/auth/register.
type RegisterData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AuthResponse is returned by the login, register and refresh endpoints.
//
// Older backends send the token under "token" instead of "access_token";
// [AuthResponse.AccessToken] resolves both.
type AuthResponse struct {
	Token       string `json:"access_token,omitempty"`
	LegacyToken string `json:"token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}

// AccessToken returns the token carried by the response, if any.
func (r AuthResponse) AccessToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.LegacyToken
}

// TokenTypeBearer is the only token type issued by the server.
const TokenTypeBearer = "bearer"
