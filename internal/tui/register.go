package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
)

// RegisterModel is the sign-up screen. Registration does not log the user
// in; the menu is shown with a [RegisterSuccessNotice] instead.
type RegisterModel struct {
	ctx      context.Context
	commerce service.CommerceService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, commerce service.CommerceService) *RegisterModel {
	return &RegisterModel{
		ctx:      ctx,
		commerce: commerce,
		form: newForm(
			textField("Username", "username", 64),
			textField("Email", "email", 254),
			secretField("Password", "password (min 6)"),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, navigate(pageMenu, RegisterSuccessNotice{Username: result.Username})
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
			return m, m.cmdRegister(models.RegisterRequest{
				Username: m.form.value(registerUsername),
				Email:    m.form.value(registerEmail),
				Password: m.form.value(registerPassword),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.render(&b)

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	renderMessages(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	commerce := m.commerce

	return func() tea.Msg {
		account, err := commerce.Register(ctx, req)
		return RegisterResult{Username: account.Username, Err: err}
	}
}
