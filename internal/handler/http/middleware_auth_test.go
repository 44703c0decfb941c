package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "scheme is case-insensitive", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces trimmed", header: "Bearer   abc  ", want: "abc"},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer    ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		cookie      string
		wantStatus  int
		wantMessage string
		wantUserID  string
	}{
		{name: "valid header", header: "Bearer " + testToken, wantStatus: http.StatusOK, wantUserID: testUserID},
		{name: "valid cookie", cookie: testToken, wantStatus: http.StatusOK, wantUserID: testUserID},
		{name: "header wins over cookie", header: "Bearer " + testToken, cookie: "stale", wantStatus: http.StatusOK, wantUserID: testUserID},
		{name: "no credentials", wantStatus: http.StatusUnauthorized, wantMessage: app.MsgNotAuthenticated},
		{name: "malformed header", header: "Token abc", wantStatus: http.StatusUnauthorized, wantMessage: app.MsgNotAuthenticated},
		{name: "rejected token", header: "Bearer forged", wantStatus: http.StatusUnauthorized, wantMessage: app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, service.Services{})

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
			if tt.wantStatus == http.StatusUnauthorized {
				apiErr := decodeAPIError(t, rr)
				assert.Equal(t, tt.wantMessage, apiErr.Message)
				assert.Equal(t, app.CodeUnauthorized, apiErr.Code)
			}
		})
	}
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler(t, service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)

	h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	_, ok := utils.GetUserIDFromContext(req.Context())
	assert.False(t, ok)
}
