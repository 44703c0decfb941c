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

// RegisterModel is the account creation screen. A weak password is
// accepted with a warning.
type RegisterModel struct {
	env *env

	form       form
	submitting bool
	errMsg     string
}

func newRegisterModel(e *env) *RegisterModel {
	return &RegisterModel{
		env: e,
		form: form{fields: []formField{
			newTextField(validators.FormFieldName, "Name", "Jane Doe", 100),
			newTextField(validators.FormFieldEmail, "Email", "you@example.com", 254),
			newPasswordField(validators.FormFieldPassword, "Password"),
			newPasswordField(validators.FormFieldConfirmPassword, "Confirm"),
		}},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return m.form.init()
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
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

func (m *RegisterModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	name := strings.TrimSpace(m.form.value(validators.FormFieldName))
	email := strings.TrimSpace(m.form.value(validators.FormFieldEmail))
	password := m.form.value(validators.FormFieldPassword)
	confirm := m.form.value(validators.FormFieldConfirmPassword)

	m.form.errs = validators.ValidateRegisterForm(name, email, password, confirm)
	if m.form.errs.HasErrors() {
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, auth := m.env.ctx, m.env.services.AuthService
	return func() tea.Msg {
		session, err := auth.Register(ctx, models.RegisterData{Name: name, Email: email, Password: password})
		return authResultMsg{session: session, err: err}
	}
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if password := m.form.value(validators.FormFieldPassword); password != "" {
		res := validators.ValidatePassword(password)
		b.WriteString("\nStrength: ")
		b.WriteString(colored(passwordStrengthLevel(res.Strength), strings.ToUpper(string(res.Strength))))
		if res.Valid && res.Message != "" {
			b.WriteString("\n")
			b.WriteString(warnStyle.Render(res.Message))
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

// passwordStrengthLevel maps a strength onto the badge colors.
func passwordStrengthLevel(s validators.PasswordStrength) string {
	switch s {
	case validators.StrengthStrong:
		return "low"
	case validators.StrengthMedium:
		return "medium"
	default:
		return "high"
	}
}
