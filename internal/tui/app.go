// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names.
const (
	pageMenu             = "menu"
	pageLogin            = "login"
	pageRegister         = "register"
	pageHome             = "home"
	pageDashboard        = "dashboard"
	pageCompliance       = "compliance"
	pageComplianceDetail = "compliance-detail"
	pageComplianceForm   = "compliance-form"
	pageAnalyzer         = "analyzer"
)

var publicPages = map[string]bool{
	pageMenu:     true,
	pageLogin:    true,
	pageRegister: true,
}

// env is shared by the router and every page it creates.
type env struct {
	ctx      context.Context
	services *service.ClientServices
	session  *models.Session
	now      func() time.Time
}

// RootModel is a TUI router:
// 1) builds a fresh page on every NavigateTo
// 2) keeps protected pages behind a signed-in session
// 3) handles global Ctrl+C quit and the build info window
// 4) delegates all other messages to the active page
type RootModel struct {
	env   *env
	pages map[string]func() tea.Model

	currentName string
	current     tea.Model

	expired         <-chan struct{}
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo

	// size is replayed to every new page.
	size *tea.WindowSizeMsg

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel opens the menu page.
func NewRootModel(ctx context.Context, services *service.ClientServices, opts Options) RootModel {
	e := &env{ctx: ctx, services: services, now: time.Now}

	r := RootModel{
		env:             e,
		expired:         opts.SessionExpired,
		refreshInterval: opts.RefreshInterval,
		buildInfo:       opts.BuildInfo,
		pages: map[string]func() tea.Model{
			pageMenu:             func() tea.Model { return newMenuModel() },
			pageLogin:            func() tea.Model { return newLoginModel(e) },
			pageRegister:         func() tea.Model { return newRegisterModel(e) },
			pageHome:             func() tea.Model { return newHomeModel(e) },
			pageDashboard:        func() tea.Model { return newDashboardModel(e) },
			pageCompliance:       func() tea.Model { return newComplianceListModel(e) },
			pageComplianceDetail: func() tea.Model { return newComplianceDetailModel(e) },
			pageComplianceForm:   func() tea.Model { return newComplianceFormModel(e) },
			pageAnalyzer:         func() tea.Model { return newAnalyzerModel(e) },
		},
	}
	r.currentName = pageMenu
	r.current = r.pages[pageMenu]()

	return r
}

// signedIn starts on the home page with session and keeps it fresh.
func (r RootModel) signedIn(session models.Session) RootModel {
	r.env.session = &session
	r.env.services.SessionJob.Start(r.env.ctx, r.refreshInterval)
	r.currentName = pageHome
	r.current = r.pages[pageHome]()
	return r
}

func (r RootModel) signedOut() {
	r.env.session = nil
	r.env.services.SessionJob.Stop()
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.current.Init(), r.waitForExpiry())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.currentName == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.size = &msg

	case NavigateTo:
		return r.navigate(msg)

	case authResultMsg:
		if msg.err == nil {
			r = r.signedIn(msg.session)
			return r.navigate(NavigateTo{Page: pageHome, Payload: noticeMsg{text: "Signed in as " + msg.session.User.DisplayName()}})
		}

	case sessionExpiredMsg:
		if r.env.session != nil {
			r.signedOut()
			next, cmd := r.navigate(NavigateTo{Page: pageLogin, Payload: noticeMsg{text: app.MsgSessionExpired}})
			return next, tea.Batch(cmd, r.waitForExpiry())
		}
		return r, r.waitForExpiry()

	case logoutMsg:
		r.env.services.AuthService.Logout(r.env.ctx)
		r.signedOut()
		return r.navigate(NavigateTo{Page: pageMenu, Payload: noticeMsg{text: "Signed out"}})
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.current.View()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	build, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	if !publicPages[nav.Page] && r.env.session == nil {
		nav = NavigateTo{Page: pageLogin, Payload: noticeMsg{text: "Please sign in first."}}
		build = r.pages[pageLogin]
	}

	r.showBuildInfo = false
	r.currentName = nav.Page
	r.current = build()

	cmds := []tea.Cmd{r.current.Init()}
	var cmd tea.Cmd
	if r.size != nil {
		r.current, cmd = r.current.Update(*r.size)
		cmds = append(cmds, cmd)
	}
	if nav.Payload != nil {
		r.current, cmd = r.current.Update(nav.Payload)
		cmds = append(cmds, cmd)
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) waitForExpiry() tea.Cmd {
	if r.expired == nil {
		return nil
	}
	ctx, expired := r.env.ctx, r.expired
	return func() tea.Msg {
		select {
		case <-expired:
			return sessionExpiredMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
