package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/ui/theme"
)

// MultiSelect lets the learner toggle any subset of the options.
type MultiSelect struct {
	Options []string
	Cursor  int
	checked map[int]bool
}

// NewMultiSelect creates the selector, restoring prior choices by text.
func NewMultiSelect(options []string, chosen []string) MultiSelect {
	m := MultiSelect{Options: options, checked: make(map[int]bool)}
	for _, c := range chosen {
		for i, opt := range options {
			if opt == c {
				m.checked[i] = true
			}
		}
	}
	return m
}

// Update handles navigation and toggling.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", " ":
		m.checked[m.Cursor] = !m.checked[m.Cursor]
	}
	return m, nil
}

// Values returns the checked option texts in option order.
func (m MultiSelect) Values() []string {
	var out []string
	for i, opt := range m.Options {
		if m.checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	var s string
	for i, opt := range m.Options {
		marker := "[ ]"
		if m.checked[i] {
			marker = "[x]"
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, optionLabel(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if m.checked[i] {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		if i == m.Cursor {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
