package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling.
type TextInput struct {
	Model     textinput.Model
	Label     string
	submitted bool
	valid     bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{
		Model: ti,
		Label: label,
	}
}

// NewPasswordInput creates a text input that masks what is typed.
func NewPasswordInput(label string) TextInput {
	t := NewTextInput(label, "", 64)
	t.Model.EchoMode = textinput.EchoPassword
	t.Model.EchoCharacter = '*'
	return t
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the labeled input.
func (t TextInput) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label)
	view := label + "\n" + t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
