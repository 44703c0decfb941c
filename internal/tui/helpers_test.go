package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/mock"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type testDeps struct {
	adapter  *mock.MockServerAdapter
	sessions *mock.MockSessionRepository
	env      *env
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	services := service.NewClientServices(adapter, sessions, logger.Nop())
	t.Cleanup(services.SessionJob.Stop)

	return testDeps{
		adapter:  adapter,
		sessions: sessions,
		env: &env{
			ctx:      ctx,
			services: services,
			now:      func() time.Time { return testNow },
		},
	}
}

func (d testDeps) root() RootModel {
	r := NewRootModel(d.env.ctx, d.env.services, Options{})
	r.env.now = d.env.now
	return r
}

func testSession() models.Session {
	return models.Session{
		Token:     "token",
		User:      models.User{ID: "u-1", Email: "jane@example.com", Name: "Jane"},
		ExpiresAt: testNow.Add(time.Hour),
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

// update feeds msg to the root and returns the updated root.
func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	if !ok {
		t.Fatalf("unexpected model %T", next)
	}
	return root, cmd
}
