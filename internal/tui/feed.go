package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-news-kiosk/internal/catalog"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FeedModel lists the most-popular articles of one category, one page at a
// time, filtered by a title search.
type FeedModel struct {
	ctx      context.Context
	commerce service.CommerceService
	catalog  service.CatalogService
	now      func() time.Time

	search    textinput.Model
	searching bool
	spinner   spinner.Model

	query    models.BrowseQuery
	page     models.Page[models.Article]
	idx      int
	account  models.Account
	loggedIn bool

	loading    bool
	submitting bool
	status     string
	errMsg     string
}

func NewFeedModel(ctx context.Context, commerce service.CommerceService, catalogSvc service.CatalogService, now func() time.Time) *FeedModel {
	search := textinput.New()
	search.Placeholder = "search titles"
	search.CharLimit = 100
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &FeedModel{
		ctx:      ctx,
		commerce: commerce,
		catalog:  catalogSvc,
		now:      now,
		search:   search,
		spinner:  s,
		query:    models.BrowseQuery{Category: models.CategoryEmailed, Page: 1},
	}
}

func (m *FeedModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoadAccount(), m.cmdBrowse())
}

func (m *FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusNotice:
		m.status = msg.Text
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case accountLoadedMsg:
		m.loggedIn = msg.err == nil
		m.account = msg.account
		if msg.err != nil && !errors.Is(msg.err, service.ErrNotLoggedIn) {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case feedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.page = models.Page[models.Article]{}
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		m.query.Page = msg.page.Number
		if m.idx >= len(m.page.Items) {
			m.idx = len(m.page.Items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case feedRefreshedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.loading = false
			return m, nil
		}
		return m, m.cmdBrowse()
	case articleSelectedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageDetail, nil)
	case logoutResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.loggedIn = false
		m.account = models.Account{}
		return m, navigate(pageMenu, StatusNotice{Text: "Logged out."})
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.page.Items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.nextPage):
		if m.page.HasNext() {
			m.query.Page++
			m.idx = 0
			return m, m.reload()
		}
	case key.Matches(keyMsg, keys.prevPage):
		if m.page.HasPrev() {
			m.query.Page--
			m.idx = 0
			return m, m.reload()
		}
	case key.Matches(keyMsg, keys.tab):
		m.query.Category = m.query.Category.Next()
		m.query.Page = 1
		m.idx = 0
		return m, m.reload()
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.refresh):
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.enter):
		article, ok := m.current()
		if !ok || m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cmdSelect(article)
	case key.Matches(keyMsg, keys.collection):
		return m, navigate(pageCollection, nil)
	case key.Matches(keyMsg, keys.luckyDraw):
		return m, navigate(pageLuckyDraw, nil)
	case key.Matches(keyMsg, keys.logout):
		if !m.loggedIn || m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageMenu, nil)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *FeedModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		m.searching = false
		m.search.Blur()
		m.query.Search = strings.TrimSpace(m.search.Value())
		m.query.Page = 1
		m.idx = 0
		return m, m.reload()
	case key.Matches(keyMsg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.query.Search)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	return m, cmd
}

func (m *FeedModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdBrowse())
}

func (m *FeedModel) current() (models.Article, bool) {
	if len(m.page.Items) == 0 || m.idx < 0 || m.idx >= len(m.page.Items) {
		return models.Article{}, false
	}
	return m.page.Items[m.idx], true
}

func (m *FeedModel) View() string {
	var b strings.Builder

	b.WriteString(walletLine(m.account, m.loggedIn))
	b.WriteString("\n\n")
	b.WriteString(categoryTabs(m.query.Category))
	b.WriteString("\n")
	b.WriteString("Search: ")
	if m.searching {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(valueOrDash(m.query.Search))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading articles...\n")
	case len(m.page.Items) == 0:
		b.WriteString("No articles found\n")
	default:
		now := m.now()
		b.WriteString("ID  │ Title                                          │ Price\n")
		b.WriteString("────┼────────────────────────────────────────────────┼─────────\n")
		first := (m.page.Number - 1) * m.page.Size
		for i, article := range m.page.Items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			price := catalog.FormatPrice(catalog.PriceFor(article, m.account, now))
			if m.loggedIn && m.account.Owns(article.ID) {
				price = ownedStyle.Render("Owned")
			}
			b.WriteString(fmt.Sprintf("%s%-3d│ %-46s │ %s\n", cursor, first+i+1, fitText(article.Title, 46), price))
		}

		if article, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(catalog.Truncate(article.Abstract, catalog.AbstractPreviewLength))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("\nPage %d/%d (%d articles)\n", m.page.Number, m.page.TotalPages, m.page.TotalItems))
	}

	renderMessages(&b, m.status, m.errMsg)

	hotKeys := "enter: open │ /: search │ tab: category │ ←/→: page │ r: refresh │ o: collection │ d: lucky draw │ esc: menu"
	if m.loggedIn {
		hotKeys += " │ x: log out"
	}
	return renderPage("MOST POPULAR", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func categoryTabs(active models.Category) string {
	tabs := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		label := strings.ToUpper(string(c))
		if c == active {
			label = titleStyle.Render("[" + label + "]")
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, "  ")
}

func (m *FeedModel) cmdBrowse() tea.Cmd {
	ctx := m.ctx
	svc := m.catalog
	query := m.query

	return func() tea.Msg {
		page, err := svc.Browse(ctx, query)
		return feedLoadedMsg{page: page, err: err}
	}
}

func (m *FeedModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.catalog
	category := m.query.Category

	return func() tea.Msg {
		return feedRefreshedMsg{err: svc.Refresh(ctx, category)}
	}
}

func (m *FeedModel) cmdLoadAccount() tea.Cmd {
	ctx := m.ctx
	commerce := m.commerce

	return func() tea.Msg {
		account, err := commerce.CurrentAccount(ctx)
		return accountLoadedMsg{account: account, err: err}
	}
}

func (m *FeedModel) cmdSelect(article models.Article) tea.Cmd {
	ctx := m.ctx
	svc := m.catalog

	return func() tea.Msg {
		return articleSelectedMsg{err: svc.SelectArticle(ctx, article)}
	}
}

func (m *FeedModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	commerce := m.commerce

	return func() tea.Msg {
		return logoutResultMsg{err: commerce.Logout(ctx)}
	}
}
