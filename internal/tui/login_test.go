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

func typeInto(m tea.Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestLoginModel_SubmitSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	commerce := mock.NewMockCommerceService(ctrl)
	m := NewLoginModel(context.Background(), commerce)

	typeInto(m, "a@x.com")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(m, "secret1")

	account := models.Account{Username: "alice", Email: "a@x.com"}
	commerce.EXPECT().Login(gomock.Any(), "a@x.com", "secret1").Return(account, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	// a second enter while the first is in flight is ignored
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	require.NoError(t, result.Err)

	_, cmd = m.Update(result)
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageFeed, nav.Page)
	assert.Equal(t, StatusNotice{Text: app.MsgLoginSuccessful}, nav.Payload)
	assert.False(t, m.submitting)
	assert.Empty(t, m.form.value(loginEmail))
}

func TestLoginModel_SubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	commerce := mock.NewMockCommerceService(ctrl)
	m := NewLoginModel(context.Background(), commerce)

	m.Update(LoginResult{Err: service.ErrInvalidCredentials})
	assert.Equal(t, app.MsgIncorrectPassword, m.errMsg)
	assert.Contains(t, m.View(), app.MsgIncorrectPassword)
}

func TestRegisterModel_SubmitSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	commerce := mock.NewMockCommerceService(ctrl)
	m := NewRegisterModel(context.Background(), commerce)

	typeInto(m, "alice")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(m, "a@x.com")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(m, "secret1")

	req := models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"}
	commerce.EXPECT().Register(gomock.Any(), req).Return(models.Account{Username: "alice"}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
	assert.Equal(t, RegisterSuccessNotice{Username: "alice"}, nav.Payload)
}

func TestRegisterModel_DuplicateShowsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewRegisterModel(context.Background(), mock.NewMockCommerceService(ctrl))

	m.Update(RegisterResult{Err: service.ErrDuplicateEmail})
	assert.Equal(t, app.MsgDuplicateEmail, m.errMsg)
}
