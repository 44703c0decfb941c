// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the client on top
// of Bubble Tea.
//
// [RootModel] routes between pages. Pages other than the menu, login and
// register screens require a signed-in session; the router sends the user
// back to the login screen when the server rejects the session.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

// Options configure a [TUI].
type Options struct {
	// SessionExpired fires when the server rejects the current token.
	SessionExpired <-chan struct{}

	// RefreshInterval is passed to the session refresh job.
	RefreshInterval time.Duration

	BuildInfo models.AppBuildInfo
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) *TUI {
	return &TUI{services: services, opts: opts, logger: logger}
}

// Run blocks until the user quits. A persisted session skips the login
// screen.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.opts)

	if session, err := t.services.AuthService.Restore(ctx); err == nil {
		t.logger.Info().Str("user_id", session.User.ID).Msg("session restored")
		root = root.signedIn(session)
	}
	defer t.services.SessionJob.Stop()

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
