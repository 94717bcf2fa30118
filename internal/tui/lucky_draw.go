package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var luckySpinner = spinner.Spinner{
	Frames: []string{"🎉", "🎊", "🎁", "🎲", "🎯", "🎈"},
	FPS:    time.Second / 20,
}

// LuckyDrawModel spends lucky-draw tickets. The first press starts the
// wheel, the second one stops it and redeems a ticket.
type LuckyDrawModel struct {
	ctx      context.Context
	commerce service.CommerceService
	reward   service.RewardService

	spinner  spinner.Model
	rolling  bool
	account  models.Account
	loggedIn bool

	submitting bool
	won        string
	errMsg     string
}

func NewLuckyDrawModel(ctx context.Context, commerce service.CommerceService, reward service.RewardService) *LuckyDrawModel {
	s := spinner.New()
	s.Spinner = luckySpinner

	return &LuckyDrawModel{
		ctx:      ctx,
		commerce: commerce,
		reward:   reward,
		spinner:  s,
	}
}

func (m *LuckyDrawModel) Init() tea.Cmd {
	m.rolling = false
	m.won = ""
	m.errMsg = ""
	return m.cmdLoadAccount()
}

func (m *LuckyDrawModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountLoadedMsg:
		m.loggedIn = msg.err == nil
		m.account = msg.account
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case redeemResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.account = msg.account
		m.won = msg.label
		m.errMsg = ""
		return m, nil
	case spinner.TickMsg:
		if !m.rolling {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.roll):
		if m.submitting {
			return m, nil
		}
		if !m.loggedIn {
			m.errMsg = humanizeError(service.ErrNotLoggedIn)
			return m, nil
		}
		if !m.rolling {
			m.rolling = true
			m.won = ""
			m.errMsg = ""
			return m, m.spinner.Tick
		}
		m.rolling = false
		m.submitting = true
		return m, m.cmdRedeem()
	case key.Matches(keyMsg, keys.esc):
		m.rolling = false
		return m, navigate(pageFeed, nil)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *LuckyDrawModel) View() string {
	var b strings.Builder

	if m.loggedIn {
		b.WriteString("You have ")
		b.WriteString(itoa(m.account.LuckyDrawValue()))
		b.WriteString(" chances left.\n\n")
	}

	wheel := "?"
	if m.rolling {
		wheel = m.spinner.View()
	}
	b.WriteString(overlayBoxStyle.Render(wheel))
	b.WriteString("\n")

	if m.won != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("You won: " + m.won))
		b.WriteString("\n")
	}
	renderMessages(&b, "", m.errMsg)

	action := "enter/space: start"
	if m.rolling {
		action = "enter/space: stop"
	}
	return renderPage("LUCKY DRAW", strings.TrimRight(b.String(), "\n"), action+" │ esc: back")
}

func (m *LuckyDrawModel) cmdLoadAccount() tea.Cmd {
	ctx := m.ctx
	commerce := m.commerce

	return func() tea.Msg {
		account, err := commerce.CurrentAccount(ctx)
		return accountLoadedMsg{account: account, err: err}
	}
}

func (m *LuckyDrawModel) cmdRedeem() tea.Cmd {
	ctx := m.ctx
	reward := m.reward

	return func() tea.Msg {
		account, label, err := reward.RedeemTicket(ctx)
		return redeemResultMsg{account: account, label: label, err: err}
	}
}
