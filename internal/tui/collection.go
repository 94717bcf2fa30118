package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-news-kiosk/internal/app"
	"github.com/MKhiriev/go-news-kiosk/internal/catalog"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CollectionModel lists the articles owned by the session account.
type CollectionModel struct {
	ctx      context.Context
	commerce service.CommerceService
	catalog  service.CatalogService
	copy     func(string) error

	items      []models.Article
	idx        int
	loading    bool
	submitting bool
	status     string
	errMsg     string
}

func NewCollectionModel(ctx context.Context, commerce service.CommerceService, catalogSvc service.CatalogService, copyFn func(string) error) *CollectionModel {
	return &CollectionModel{
		ctx:      ctx,
		commerce: commerce,
		catalog:  catalogSvc,
		copy:     copyFn,
	}
}

func (m *CollectionModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *CollectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ownedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.items = nil
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case articleSelectedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageDetail, nil)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		article, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := m.copy(article.URL); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgCopied
		return m, cmdClearStatus()
	case key.Matches(keyMsg, keys.enter):
		article, ok := m.current()
		if !ok || m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cmdSelect(article)
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageFeed, nil)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *CollectionModel) current() (models.Article, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Article{}, false
	}
	return m.items[m.idx], true
}

func (m *CollectionModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading collection...\n")
	case len(m.items) == 0 && m.errMsg == "":
		b.WriteString("You have not bought any articles yet\n")
	case len(m.items) > 0:
		b.WriteString("ID  │ Title                                          │ Section\n")
		b.WriteString("────┼────────────────────────────────────────────────┼────────────\n")
		for i, article := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s%-3d│ %-46s │ %s\n", cursor, i+1, fitText(article.Title, 46), valueOrDash(article.Section)))
		}

		if article, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(catalog.Truncate(article.Abstract, catalog.AbstractPreviewLength))
			b.WriteString("\n")
			b.WriteString(article.URL)
			b.WriteString("\n")
		}
	}

	renderMessages(&b, m.status, m.errMsg)

	return renderPage("MY COLLECTION", strings.TrimRight(b.String(), "\n"), "enter: open │ c: copy link │ ↑/↓: navigate │ esc: back")
}

func (m *CollectionModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	commerce := m.commerce

	return func() tea.Msg {
		items, err := commerce.OwnedArticles(ctx)
		return ownedLoadedMsg{items: items, err: err}
	}
}

func (m *CollectionModel) cmdSelect(article models.Article) tea.Cmd {
	ctx := m.ctx
	svc := m.catalog

	return func() tea.Msg {
		return articleSelectedMsg{err: svc.SelectArticle(ctx, article)}
	}
}
