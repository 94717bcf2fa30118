package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const formInputWidth = 40

type formField struct {
	label string
	input textinput.Model
}

func textField(label, placeholder string, limit int) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = formInputWidth
	return formField{label: label, input: in}
}

func secretField(label, placeholder string) formField {
	f := textField(label, placeholder, 256)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

// form is a vertical list of inputs with one focused at a time.
type form struct {
	fields []formField
	focus  int
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	f.fields[0].input.Focus()
	return f
}

// value returns the i-th input. Text is trimmed except for secrets.
func (f *form) value(i int) string {
	in := f.fields[i].input
	if in.EchoMode == textinput.EchoPassword {
		return in.Value()
	}
	return strings.TrimSpace(in.Value())
}

func (f *form) move(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
}

// handleKey moves the focus on tab and shift+tab and reports whether it did.
func (f *form) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab":
		f.move(1)
	case "shift+tab":
		f.move(-1)
	default:
		return false
	}
	return true
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) render(b *strings.Builder) {
	width := len("Field")
	for _, field := range f.fields {
		width = max(width, len(field.label))
	}

	fmt.Fprintf(b, "%-*s │ Value\n", width, "Field")
	b.WriteString(strings.Repeat("─", width+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", formInputWidth+4))
	b.WriteString("\n")
	for _, field := range f.fields {
		fmt.Fprintf(b, "%-*s │ [%s]\n", width, field.label, field.input.View())
	}
}
