package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-news-kiosk/internal/app"
	"github.com/MKhiriev/go-news-kiosk/internal/mock"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/models"
	tea "github.com/charmbracelet/bubbletea"
)

func TestCollectionModel(t *testing.T) {
	owned := []models.Article{
		{ID: 1, Title: "One", URL: "https://example.com/1"},
		{ID: 2, Title: "Two", URL: "https://example.com/2"},
	}

	t.Run("lists owned and copies the selected link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		commerce := mock.NewMockCommerceService(ctrl)
		spy := &copySpy{}
		m := NewCollectionModel(context.Background(), commerce, mock.NewMockCatalogService(ctrl), spy.write)

		commerce.EXPECT().OwnedArticles(gomock.Any()).Return(owned, nil)
		m.Update(m.Init()())

		assert.False(t, m.loading)
		assert.Contains(t, m.View(), "Two")

		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
		assert.Equal(t, []string{"https://example.com/2"}, spy.copied)
		assert.Equal(t, app.MsgCopied, m.status)
	})

	t.Run("guest sees the not logged in message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		commerce := mock.NewMockCommerceService(ctrl)
		m := NewCollectionModel(context.Background(), commerce, mock.NewMockCatalogService(ctrl), (&copySpy{}).write)

		commerce.EXPECT().OwnedArticles(gomock.Any()).Return(nil, service.ErrNotLoggedIn)
		m.Update(m.Init()())

		assert.Equal(t, app.MsgNotLoggedIn, m.errMsg)
	})

	t.Run("empty collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewCollectionModel(context.Background(), mock.NewMockCommerceService(ctrl), mock.NewMockCatalogService(ctrl), (&copySpy{}).write)

		m.Update(ownedLoadedMsg{items: []models.Article{}})
		assert.Contains(t, m.View(), "You have not bought any articles yet")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
	})

	t.Run("enter opens the article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalogSvc := mock.NewMockCatalogService(ctrl)
		m := NewCollectionModel(context.Background(), mock.NewMockCommerceService(ctrl), catalogSvc, (&copySpy{}).write)
		m.Update(ownedLoadedMsg{items: owned})

		catalogSvc.EXPECT().SelectArticle(gomock.Any(), owned[0]).Return(nil)

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		_, cmd = m.Update(cmd())
		nav, ok := cmd().(NavigateTo)
		require.True(t, ok)
		assert.Equal(t, pageDetail, nav.Page)
	})
}
