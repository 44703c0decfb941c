// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the sign-in screen. The form is validated before it is
// submitted; a successful [authResultMsg] is picked up by [RootModel].
type LoginModel struct {
	env *env

	form       form
	submitting bool
	status     string
	errMsg     string
}

func newLoginModel(e *env) *LoginModel {
	return &LoginModel{
		env: e,
		form: form{fields: []formField{
			newTextField(validators.FormFieldEmail, "Email", "you@example.com", 254),
			newPasswordField(validators.FormFieldPassword, "Password"),
		}},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return m.form.init()
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.status = msg.text
		return m, nil
	case authResultMsg:
		m.submitting = false
		m.errMsg = humanizeError(msg.err)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.tab):
			return m, m.form.move(1)
		case key.Matches(msg, keys.backtab):
			return m, m.form.move(-1)
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.form.value(validators.FormFieldEmail))
	password := m.form.value(validators.FormFieldPassword)

	m.form.errs = validators.ValidateLoginForm(email, password)
	if m.form.errs.HasErrors() {
		return nil
	}

	m.errMsg = ""
	m.status = ""
	m.submitting = true

	ctx, auth := m.env.ctx, m.env.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, models.LoginCredentials{Email: email, Password: password})
		return authResultMsg{session: session, err: err}
	}
}

func (m *LoginModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
