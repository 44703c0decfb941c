package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/telemetry"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock method delegates to its function field. A nil field panics,
// which fails the test that unexpectedly reached it.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, data models.RegisterData) (models.User, error)
	loginFn        func(ctx context.Context, creds models.LoginCredentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	getUserFn      func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, data models.RegisterData) (models.User, error) {
	return m.registerUserFn(ctx, data)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.LoginCredentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

type mockComplianceService struct {
	listFn   func(ctx context.Context, userID string, filter models.ComplianceFilter) ([]models.ComplianceItem, error)
	getFn    func(ctx context.Context, userID, id string) (models.ComplianceItem, error)
	createFn func(ctx context.Context, userID string, dto models.CreateComplianceDto) (models.ComplianceItem, error)
	updateFn func(ctx context.Context, userID, id string, dto models.UpdateComplianceDto) (models.ComplianceItem, error)
	deleteFn func(ctx context.Context, userID, id string) error
}

func (m *mockComplianceService) List(ctx context.Context, userID string, filter models.ComplianceFilter) ([]models.ComplianceItem, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockComplianceService) Get(ctx context.Context, userID, id string) (models.ComplianceItem, error) {
	return m.getFn(ctx, userID, id)
}

func (m *mockComplianceService) Create(ctx context.Context, userID string, dto models.CreateComplianceDto) (models.ComplianceItem, error) {
	return m.createFn(ctx, userID, dto)
}

func (m *mockComplianceService) Update(ctx context.Context, userID, id string, dto models.UpdateComplianceDto) (models.ComplianceItem, error) {
	return m.updateFn(ctx, userID, id, dto)
}

func (m *mockComplianceService) Delete(ctx context.Context, userID, id string) error {
	return m.deleteFn(ctx, userID, id)
}

type mockDashboardService struct {
	statsFn    func(ctx context.Context, userID string) (models.DashboardStats, error)
	activityFn func(ctx context.Context, userID string, limit int) ([]models.ActivityItem, error)
}

func (m *mockDashboardService) Stats(ctx context.Context, userID string) (models.DashboardStats, error) {
	return m.statsFn(ctx, userID)
}

func (m *mockDashboardService) Activity(ctx context.Context, userID string, limit int) ([]models.ActivityItem, error) {
	return m.activityFn(ctx, userID, limit)
}

type mockDocumentService struct {
	createFromTextFn func(ctx context.Context, userID string, doc models.CreateDocumentFromText) (models.Document, error)
	listFn           func(ctx context.Context, userID string) ([]models.Document, error)
	getFn            func(ctx context.Context, userID, id string) (models.Document, error)
	contentFn        func(ctx context.Context, userID, id string) (models.Document, io.ReadCloser, error)
}

func (m *mockDocumentService) CreateFromText(ctx context.Context, userID string, doc models.CreateDocumentFromText) (models.Document, error) {
	return m.createFromTextFn(ctx, userID, doc)
}

func (m *mockDocumentService) List(ctx context.Context, userID string) ([]models.Document, error) {
	return m.listFn(ctx, userID)
}

func (m *mockDocumentService) Get(ctx context.Context, userID, id string) (models.Document, error) {
	return m.getFn(ctx, userID, id)
}

func (m *mockDocumentService) Content(ctx context.Context, userID, id string) (models.Document, io.ReadCloser, error) {
	return m.contentFn(ctx, userID, id)
}

type mockAIService struct {
	analyzeFn    func(ctx context.Context, userID string, req models.AnalyzeRequest) (models.DocumentAnalysis, error)
	assessRiskFn func(ctx context.Context, userID string, req models.RiskAssessmentRequest) (models.RiskAssessment, error)
}

func (m *mockAIService) Analyze(ctx context.Context, userID string, req models.AnalyzeRequest) (models.DocumentAnalysis, error) {
	return m.analyzeFn(ctx, userID, req)
}

func (m *mockAIService) AssessRisk(ctx context.Context, userID string, req models.RiskAssessmentRequest) (models.RiskAssessment, error) {
	return m.assessRiskFn(ctx, userID, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID = "u-1"
	testToken  = "valid-token"
)

// acceptingAuth accepts testToken for testUserID and rejects anything else.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID}, nil
		},
	}
}

// newTestServices fills every service not given in svcs with an empty mock.
func newTestServices(svcs service.Services) *service.Services {
	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth()
	}
	if svcs.ComplianceService == nil {
		svcs.ComplianceService = &mockComplianceService{}
	}
	if svcs.DashboardService == nil {
		svcs.DashboardService = &mockDashboardService{}
	}
	if svcs.DocumentService == nil {
		svcs.DocumentService = &mockDocumentService{}
	}
	if svcs.AIService == nil {
		svcs.AIService = &mockAIService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return &svcs
}

func newTestHandler(t *testing.T, svcs service.Services) *Handler {
	t.Helper()
	return NewHandler(newTestServices(svcs), telemetry.NewMetrics(), config.Server{}, logger.Nop())
}

func newTestRouter(t *testing.T, svcs service.Services) http.Handler {
	t.Helper()
	return newTestHandler(t, svcs).Init()
}

// doRequest sends body (marshalled to JSON unless it is a string) to router
// with the test bearer token.
func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(t, method, target, body)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) models.ApiError {
	t.Helper()
	return decodeBody[models.ApiError](t, rr)
}

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
