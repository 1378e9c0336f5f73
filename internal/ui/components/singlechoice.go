package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

func optionLabel(i int) string {
	if i < len(optionLabels) {
		return optionLabels[i]
	}
	return fmt.Sprintf("%d", i+1)
}

// SingleChoice lets the learner pick exactly one option. The chosen
// option persists so the learner can revisit and change it.
type SingleChoice struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing picked yet
}

// NewSingleChoice creates the selector, optionally restoring a prior
// choice by option text.
func NewSingleChoice(options []string, chosen string) SingleChoice {
	c := SingleChoice{Options: options, Chosen: -1}
	for i, opt := range options {
		if opt == chosen && chosen != "" {
			c.Chosen = i
			c.Cursor = i
			break
		}
	}
	return c
}

// Update handles navigation and picking.
func (c SingleChoice) Update(msg tea.Msg) (SingleChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Chosen = c.Cursor
	}
	return c, nil
}

// Value returns the chosen option text, or "" when nothing is picked.
func (c SingleChoice) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the option list.
func (c SingleChoice) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(●)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, optionLabel(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Chosen {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		if i == c.Cursor {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
