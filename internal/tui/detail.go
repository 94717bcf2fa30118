package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-news-kiosk/internal/app"
	"github.com/MKhiriev/go-news-kiosk/internal/catalog"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailModel shows the selected article with its price and lets a logged-in
// user buy it.
type DetailModel struct {
	ctx      context.Context
	commerce service.CommerceService
	catalog  service.CatalogService
	now      func() time.Time
	copy     func(string) error

	article  models.Article
	account  models.Account
	loggedIn bool
	loaded   bool

	submitting bool
	status     string
	errMsg     string
}

func NewDetailModel(
	ctx context.Context,
	commerce service.CommerceService,
	catalogSvc service.CatalogService,
	now func() time.Time,
	copyFn func(string) error,
) *DetailModel {
	return &DetailModel{
		ctx:      ctx,
		commerce: commerce,
		catalog:  catalogSvc,
		now:      now,
		copy:     copyFn,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	m.loaded = false
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.article = msg.article
		m.account = msg.account
		m.loggedIn = msg.accountErr == nil
		if msg.accountErr != nil && !errors.Is(msg.accountErr, service.ErrNotLoggedIn) {
			m.errMsg = humanizeError(msg.accountErr)
		}
		return m, nil
	case purchaseResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = ""
			m.errMsg = "Purchase failed. " + humanizeError(msg.err)
			return m, nil
		}
		m.account = msg.account
		m.errMsg = ""
		m.status = app.MsgPurchaseSuccessful
		if msg.granted {
			m.status += " " + app.MsgTicketsGranted
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.buy):
		if !m.loaded || m.submitting {
			return m, nil
		}
		if !m.loggedIn {
			m.errMsg = app.MsgNotLoggedIn
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdBuy()
	case key.Matches(keyMsg, keys.copy):
		if !m.loggedIn || !m.account.Owns(m.article.ID) {
			return m, nil
		}
		if err := m.copy(m.article.URL); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		m.status = app.MsgCopied
		return m, cmdClearStatus()
	case key.Matches(keyMsg, keys.collection):
		return m, navigate(pageCollection, nil)
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageFeed, nil)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *DetailModel) View() string {
	if !m.loaded {
		return renderPage("ARTICLE", "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.article.ID == 0 && m.errMsg != "" {
		renderMessages(&b, "", m.errMsg)
		return renderPage("ARTICLE", strings.TrimSpace(b.String()), "esc: back")
	}

	owned := m.loggedIn && m.account.Owns(m.article.ID)

	b.WriteString(walletLine(m.account, m.loggedIn))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(m.article.Title))
	b.WriteString("\n")
	b.WriteString(valueOrDash(m.article.Byline))
	b.WriteString("\n\n")
	b.WriteString("Section    │ " + valueOrDash(m.article.Section) + "\n")
	b.WriteString("Published  │ " + valueOrDash(m.article.PublishedDate) + "\n")
	b.WriteString("Image      │ " + catalog.ImageURL(m.article) + "\n")
	if owned {
		b.WriteString("Price      │ " + ownedStyle.Render("Owned") + "\n")
		b.WriteString("Link       │ " + m.article.URL + "\n")
	} else {
		b.WriteString("Price      │ " + catalog.FormatPrice(catalog.PriceFor(m.article, m.account, m.now())) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.article.Abstract)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Buying...]\n")
	}

	renderMessages(&b, m.status, m.errMsg)

	hotKeys := "b: buy │ o: collection │ esc: back"
	if owned {
		hotKeys = "c: copy link │ o: collection │ esc: back"
	}
	return renderPage("ARTICLE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DetailModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	commerce := m.commerce
	svc := m.catalog

	return func() tea.Msg {
		article, err := svc.SelectedArticle(ctx)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		account, accountErr := commerce.CurrentAccount(ctx)
		return detailLoadedMsg{article: article, account: account, accountErr: accountErr}
	}
}

func (m *DetailModel) cmdBuy() tea.Cmd {
	ctx := m.ctx
	commerce := m.commerce
	article := m.article
	now := m.now()

	return func() tea.Msg {
		account, granted, err := commerce.PurchaseWithReward(ctx, article, now)
		return purchaseResultMsg{account: account, granted: granted, err: err}
	}
}
