package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegisteredRoutes(t *testing.T) {
	router := newTestHandler(t, service.Services{}).Init()

	want := map[string][]string{
		"/metrics":                    {http.MethodGet},
		"/api/version":                {http.MethodGet},
		"/api/auth/register":          {http.MethodPost},
		"/api/auth/login":             {http.MethodPost},
		"/api/auth/refresh":           {http.MethodPost},
		"/api/auth/me":                {http.MethodGet},
		"/api/dashboard/stats":        {http.MethodGet},
		"/api/dashboard/activity":     {http.MethodGet},
		"/api/compliance":             {http.MethodGet, http.MethodPost},
		"/api/compliance/{id}":        {http.MethodGet, http.MethodPut, http.MethodDelete},
		"/api/documents":              {http.MethodGet},
		"/api/documents/text":         {http.MethodPost},
		"/api/documents/{id}":         {http.MethodGet},
		"/api/documents/{id}/content": {http.MethodGet},
		"/api/ai/analyze":             {http.MethodPost},
		"/api/ai/assess-risk":         {http.MethodPost},
	}

	got := make(map[string][]string)
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[route] = append(got[route], method)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for route, methods := range want {
		assert.ElementsMatch(t, methods, got[route], route)
	}
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t, service.Services{})

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/auth/refresh"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/dashboard/stats"},
		{http.MethodGet, "/api/dashboard/activity"},
		{http.MethodGet, "/api/compliance"},
		{http.MethodPost, "/api/compliance"},
		{http.MethodGet, "/api/compliance/c-1"},
		{http.MethodPut, "/api/compliance/c-1"},
		{http.MethodDelete, "/api/compliance/c-1"},
		{http.MethodPost, "/api/documents/text"},
		{http.MethodGet, "/api/documents"},
		{http.MethodGet, "/api/documents/d-1"},
		{http.MethodGet, "/api/documents/d-1/content"},
		{http.MethodPost, "/api/ai/analyze"},
		{http.MethodPost, "/api/ai/assess-risk"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(rt.method, rt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_PublicRoutes(t *testing.T) {
	auth := acceptingAuth()
	auth.loginFn = func(context.Context, models.LoginCredentials) (models.User, error) {
		return models.User{}, nil
	}
	auth.createTokenFn = func(context.Context, models.User) (models.Token, error) {
		return models.Token{SignedString: "t"}, nil
	}
	router := newTestRouter(t, service.Services{AuthService: auth})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/auth/login", models.LoginCredentials{Email: "a@b.co", Password: "x"}))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	dashboard := &mockDashboardService{} // nil statsFn panics
	router := newTestRouter(t, service.Services{DashboardService: dashboard})

	rr := doRequest(t, router, http.MethodGet, "/api/dashboard/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
