package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-news-kiosk/internal/app"
	"github.com/MKhiriev/go-news-kiosk/internal/mock"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/models"
	tea "github.com/charmbracelet/bubbletea"
)

var fixedNow = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }

func articlePage(number, totalPages int, articles ...models.Article) models.Page[models.Article] {
	return models.Page[models.Article]{
		Items:      articles,
		Number:     number,
		Size:       10,
		TotalItems: len(articles),
		TotalPages: totalPages,
	}
}

func newTestFeed(t *testing.T) (*FeedModel, *mock.MockCommerceService, *mock.MockCatalogService) {
	ctrl := gomock.NewController(t)
	commerce := mock.NewMockCommerceService(ctrl)
	catalogSvc := mock.NewMockCatalogService(ctrl)
	return NewFeedModel(context.Background(), commerce, catalogSvc, fixedNow), commerce, catalogSvc
}

func TestFeedModel_LoadedPageIsRendered(t *testing.T) {
	m, _, _ := newTestFeed(t)
	m.loading = true

	m.Update(feedLoadedMsg{page: articlePage(1, 1,
		models.Article{ID: 1, Title: "First story", PublishedDate: "2024-05-10"},
		models.Article{ID: 2, Title: "Second story", PublishedDate: "2024-05-01"},
	)})

	assert.False(t, m.loading)
	view := m.View()
	assert.Contains(t, view, "First story")
	assert.Contains(t, view, "Second story")
	assert.Contains(t, view, "Page 1/1")
}

func TestFeedModel_EmptyAndErrorPages(t *testing.T) {
	m, _, _ := newTestFeed(t)

	m.Update(feedLoadedMsg{page: articlePage(1, 0)})
	assert.Contains(t, m.View(), "No articles found")

	m.Update(feedLoadedMsg{err: errors.Join(service.ErrFeedUnavailable, errors.New("timeout"))})
	assert.Equal(t, app.MsgFeedUnavailable, m.errMsg)
}

func TestFeedModel_OwnedArticleShowsOwned(t *testing.T) {
	m, _, _ := newTestFeed(t)
	owned := models.Article{ID: 7, Title: "Mine", PublishedDate: "2024-05-10"}

	m.Update(accountLoadedMsg{account: models.Account{Username: "alice", Owned: []models.Article{owned}}})
	m.Update(feedLoadedMsg{page: articlePage(1, 1, owned)})

	assert.True(t, m.loggedIn)
	assert.Contains(t, m.View(), "Owned")
}

func TestFeedModel_GuestAccountIsNotAnError(t *testing.T) {
	m, _, _ := newTestFeed(t)

	m.Update(accountLoadedMsg{err: service.ErrNotLoggedIn})
	assert.False(t, m.loggedIn)
	assert.Empty(t, m.errMsg)
}

func TestFeedModel_NextPageRequestsBrowse(t *testing.T) {
	m, _, catalogSvc := newTestFeed(t)
	m.Update(feedLoadedMsg{page: articlePage(1, 2, models.Article{ID: 1, Title: "a"})})

	catalogSvc.EXPECT().
		Browse(gomock.Any(), models.BrowseQuery{Category: models.CategoryEmailed, Page: 2}).
		Return(articlePage(2, 2, models.Article{ID: 2, Title: "b"}), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.query.Page)

	msg := m.cmdBrowse()()
	m.Update(msg)
	assert.Equal(t, int64(2), m.page.Items[0].ID)
}

func TestFeedModel_PrevPageOnFirstPageIsNoop(t *testing.T) {
	m, _, _ := newTestFeed(t)
	m.Update(feedLoadedMsg{page: articlePage(1, 2, models.Article{ID: 1})})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.query.Page)
}

func TestFeedModel_TabSwitchesCategory(t *testing.T) {
	m, _, _ := newTestFeed(t)
	m.query.Page = 3

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.CategoryEmailed.Next(), m.query.Category)
	assert.Equal(t, 1, m.query.Page)
}

func TestFeedModel_Search(t *testing.T) {
	m, _, _ := newTestFeed(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, m.searching)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" trump ")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.False(t, m.searching)
	assert.Equal(t, "trump", m.query.Search)
	assert.Equal(t, 1, m.query.Page)
}

func TestFeedModel_EnterSelectsAndOpensDetail(t *testing.T) {
	m, _, catalogSvc := newTestFeed(t)
	article := models.Article{ID: 1, Title: "a"}
	m.Update(feedLoadedMsg{page: articlePage(1, 1, article)})

	catalogSvc.EXPECT().SelectArticle(gomock.Any(), article).Return(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageDetail, nav.Page)
}

func TestFeedModel_RefreshErrorIsShown(t *testing.T) {
	m, _, catalogSvc := newTestFeed(t)

	catalogSvc.EXPECT().Refresh(gomock.Any(), models.CategoryEmailed).Return(service.ErrFeedUnavailable)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.True(t, m.submitting)

	m.Update(m.cmdRefresh()())
	assert.False(t, m.submitting)
	assert.Equal(t, app.MsgFeedUnavailable, m.errMsg)
}

func TestFeedModel_LogoutOnlyWhenLoggedIn(t *testing.T) {
	m, commerce, _ := newTestFeed(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)

	m.Update(accountLoadedMsg{account: models.Account{Username: "alice"}})
	commerce.EXPECT().Logout(gomock.Any()).Return(nil)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.NotNil(t, cmd)

	_, cmd = m.Update(cmd())
	assert.False(t, m.loggedIn)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
}
