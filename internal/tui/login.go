// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-news-kiosk/internal/app"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the log-in screen. On success the session is open and the
// feed is shown.
type LoginModel struct {
	ctx      context.Context
	commerce service.CommerceService

	form       form
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, commerce service.CommerceService) *LoginModel {
	return &LoginModel{
		ctx:      ctx,
		commerce: commerce,
		form: newForm(
			textField("Email", "email", 254),
			secretField("Password", "password"),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles [LoginResult], esc (back to the menu), tab/shift+tab and
// enter (submit). Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, navigate(pageFeed, StatusNotice{Text: app.MsgLoginSuccessful})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.form.handleKey(keyMsg) {
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu, nil)
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(m.form.value(loginEmail), m.form.value(loginPassword))
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	m.form.render(&b)

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	renderMessages(&b, "", m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	commerce := m.commerce

	return func() tea.Msg {
		account, err := commerce.Login(ctx, email, pass)
		return LoginResult{Account: account, Err: err}
	}
}
