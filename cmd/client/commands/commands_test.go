package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/parse-guard/internal/client"
	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/mock"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testCLI struct {
	adapter  *mock.MockServerAdapter
	sessions *mock.MockSessionRepository
	opened   int
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	ctrl := gomock.NewController(t)

	tc := &testCLI{
		adapter:  mock.NewMockServerAdapter(ctrl),
		sessions: mock.NewMockSessionRepository(ctrl),
	}
	tc.adapter.EXPECT().OnUnauthorized(gomock.Any()).AnyTimes()

	return tc
}

func (tc *testCLI) open(context.Context, *config.StructuredConfig, string) (*Env, error) {
	tc.opened++
	return &Env{
		Client: client.New(tc.adapter, tc.sessions, logger.Nop()),
		Config: &config.ClientConfig{},
		Logger: logger.Nop(),
	}, nil
}

// run executes the root command with args and stdin, returning stdout.
func (tc *testCLI) run(stdin string, args ...string) (string, error) {
	buildInfo := models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")
	root := NewRootCmd(buildInfo, tc.open)

	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// signedIn makes the stored session valid.
func (tc *testCLI) signedIn() {
	session := models.Session{
		Token:     "token",
		User:      models.User{ID: "u1", Email: "ann@example.com", Name: "Ann"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	tc.sessions.EXPECT().Load(gomock.Any()).Return(session, nil)
	tc.adapter.EXPECT().SetToken("token")
}

func TestVersion_DoesNotOpenClient(t *testing.T) {
	tc := newTestCLI(t)

	out, err := tc.run("", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: 1.2.3")
	assert.Contains(t, out, "Build commit: abc123")
	assert.Zero(t, tc.opened)
}

func TestVersion_Server(t *testing.T) {
	tc := newTestCLI(t)
	tc.adapter.EXPECT().Version(gomock.Any()).Return("0.9.0", nil)

	out, err := tc.run("", "version", "--server")
	require.NoError(t, err)
	assert.Contains(t, out, "Server version: 0.9.0")
}

func TestRoot_UnknownOutputFormat(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("", "version", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "yaml"`)
}

func TestLogin_PromptsForMissingValues(t *testing.T) {
	tc := newTestCLI(t)

	creds := models.LoginCredentials{Email: "ann@example.com", Password: "Secret123!"}
	tc.adapter.EXPECT().Login(gomock.Any(), creds).
		Return(models.AuthResponse{LegacyToken: "opaque", User: models.User{Email: "ann@example.com", Name: "Ann"}}, nil)
	tc.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	tc.adapter.EXPECT().SetToken("opaque")

	out, err := tc.run("ann@example.com\nSecret123!\n", "login")
	require.NoError(t, err)
	assert.Equal(t, "Signed in as Ann\n", out)
}

func TestLogin_InvalidEmail(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("", "login", "--email", "nope", "--password", "x")
	require.Error(t, err)
	assert.Zero(t, tc.opened)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("Secret123!\nSecret124!\n", "register", "--name", "Ann", "--email", "ann@example.com")
	require.Error(t, err)
	assert.Zero(t, tc.opened)
}

func TestWhoami_NotSignedIn(t *testing.T) {
	tc := newTestCLI(t)
	tc.sessions.EXPECT().Load(gomock.Any()).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := tc.run("", "whoami")
	assert.ErrorIs(t, err, errNotSignedIn)
}

func TestWhoami_JSON(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()

	out, err := tc.run("", "whoami", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"email": "ann@example.com"`)
}

func TestStats(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()
	tc.adapter.EXPECT().DashboardStats(gomock.Any()).
		Return(models.DashboardStats{TotalCompliance: 7, TotalDocuments: 2, PendingItems: 3, HighRiskItems: 1}, nil)

	out, err := tc.run("", "stats")
	require.NoError(t, err)
	assert.Regexp(t, `Compliance items:\s+7\n`, out)
	assert.Regexp(t, `High risk items:\s+1\n`, out)
}

func TestActivity_LimitOutOfRange(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("", "activity", "-n", "500")
	require.Error(t, err)
}

func TestComplianceCreate(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()

	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	want := models.CreateComplianceDto{
		Title:    "Annual audit",
		Priority: models.PriorityHigh,
		DueDate:  &due,
	}
	tc.adapter.EXPECT().CreateCompliance(gomock.Any(), want).
		Return(models.ComplianceItem{ID: "c1", Title: "Annual audit", Status: models.StatusPending, Priority: models.PriorityHigh, DueDate: &due}, nil)

	out, err := tc.run("", "compliance", "create", "--title", " Annual audit ", "--priority", "high", "--due", "2026-12-01")
	require.NoError(t, err)
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "2026-12-01")
}

func TestComplianceCreate_BadDueDate(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("", "c", "create", "--title", "Audit", "--due", "01/12/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "due date must look like 2006-01-02")
}

func TestComplianceUpdate_OnlyChangedFields(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()

	completed := models.StatusCompleted
	tc.adapter.EXPECT().UpdateCompliance(gomock.Any(), "c1", models.UpdateComplianceDto{Status: &completed}).
		Return(models.ComplianceItem{ID: "c1", Title: "Audit", Status: completed}, nil)

	out, err := tc.run("", "compliance", "update", "c1", "--status", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "completed")
}

func TestComplianceUpdate_ClearOptionalFields(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()

	want := models.UpdateComplianceDto{ClearRiskLevel: true, ClearDueDate: true}
	tc.adapter.EXPECT().UpdateCompliance(gomock.Any(), "c1", want).
		Return(models.ComplianceItem{ID: "c1", Title: "Audit", Status: models.StatusPending}, nil)

	_, err := tc.run("", "compliance", "update", "c1", "--clear-risk", "--clear-due")
	require.NoError(t, err)
}

func TestComplianceUpdate_SetAndClearConflict(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("", "compliance", "update", "c1", "--due", "2026-12-01", "--clear-due")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear-due")
	assert.Zero(t, tc.opened)
}

func TestComplianceUpdate_NothingToUpdate(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("", "compliance", "update", "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
	assert.Zero(t, tc.opened)
}

func TestComplianceDelete_Cancelled(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()

	out, err := tc.run("n\n", "compliance", "rm", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Cancelled\n", out)
}

func TestComplianceDelete_Confirmed(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()
	tc.adapter.EXPECT().DeleteCompliance(gomock.Any(), "c1").Return(nil)

	out, err := tc.run("yes\n", "compliance", "delete", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Deleted c1\n", out)
}

func TestAnalyze_StdinMarkdown(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()

	analysis := models.DocumentAnalysis{
		Summary:          "Vendor contract with data sharing.",
		ComplianceTopics: []string{"GDPR"},
		Confidence:       0.9,
	}
	tc.adapter.EXPECT().Analyze(gomock.Any(), "contract text").Return(analysis, nil)

	out, err := tc.run("  contract text\n", "analyze", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "Vendor contract with data sharing.")
	assert.Contains(t, out, "GDPR")
}

func TestAnalyze_SaveDocument(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()

	tc.adapter.EXPECT().Analyze(gomock.Any(), "contract text").Return(models.DocumentAnalysis{Summary: "ok"}, nil)
	tc.adapter.EXPECT().CreateDocumentFromText(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, doc models.CreateDocumentFromText) (models.Document, error) {
			assert.True(t, strings.HasPrefix(doc.Title, "AI Analysis - "))
			assert.Contains(t, doc.Content, "contract text")
			return models.Document{ID: "d1", Title: doc.Title}, nil
		},
	)

	_, err := tc.run("contract text", "analyze", "-", "--markdown", "--save")
	require.NoError(t, err)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("   \n", "analyze")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to analyze")
	assert.Zero(t, tc.opened)
}

func TestAssessRisk_ByID(t *testing.T) {
	tc := newTestCLI(t)
	tc.signedIn()

	tc.adapter.EXPECT().GetCompliance(gomock.Any(), "c1").
		Return(models.ComplianceItem{ID: "c1", Title: "Data retention", Description: "Keep logs 7 years"}, nil)
	tc.adapter.EXPECT().AssessRisk(gomock.Any(), models.RiskAssessmentRequest{Title: "Data retention", Description: "Keep logs 7 years"}).
		Return(models.RiskAssessment{
			RiskLevel:       models.RiskHigh,
			RiskScore:       0.82,
			Factors:         []string{"personal data"},
			Recommendations: []string{"appoint an owner"},
		}, nil)

	out, err := tc.run("", "assess-risk", "c1")
	require.NoError(t, err)
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "82.0%")
	assert.Contains(t, out, "personal data")
	assert.Contains(t, out, "appoint an owner")
}

func TestAssessRisk_NeedsTitleOrID(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run("", "assess-risk")
	require.Error(t, err)
	assert.Zero(t, tc.opened)
}
