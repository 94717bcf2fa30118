package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	tea "github.com/charmbracelet/bubbletea"
)

func TestForm_FocusWrapsAround(t *testing.T) {
	f := newForm(textField("A", "a", 10), textField("B", "b", 10), secretField("C", "c"))

	f.move(-1)
	assert.Equal(t, 2, f.focus)
	assert.True(t, f.fields[2].input.Focused())
	assert.False(t, f.fields[0].input.Focused())

	f.move(1)
	assert.Equal(t, 0, f.focus)
}

func TestForm_ValueTrimsTextButNotSecrets(t *testing.T) {
	f := newForm(textField("Email", "email", 64), secretField("Password", "password"))

	f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" a@x.com ")})
	f.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" pass ")})

	assert.Equal(t, "a@x.com", f.value(0))
	assert.Equal(t, " pass ", f.value(1))

	f.reset()
	assert.Empty(t, f.value(0))
	assert.Empty(t, f.value(1))
	assert.Equal(t, 0, f.focus)
}

func TestForm_RenderHidesSecrets(t *testing.T) {
	f := newForm(textField("Email", "email", 64), secretField("Password", "password"))
	f.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hunter2")})

	var b strings.Builder
	f.render(&b)

	assert.Contains(t, b.String(), "Password")
	assert.NotContains(t, b.String(), "hunter2")
}
