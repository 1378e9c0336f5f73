package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/ui/theme"
)

// Classify assigns each item to one of a fixed set of categories.
// Left/right cycles the category of the item under the cursor.
type Classify struct {
	Items      []string
	Categories []string
	Cursor     int
	assigned   map[string]string // item → category
}

// NewClassify creates the classifier, restoring prior assignments.
func NewClassify(items, categories []string, assigned map[string]string) Classify {
	c := Classify{
		Items:      items,
		Categories: categories,
		assigned:   make(map[string]string),
	}
	for item, cat := range assigned {
		c.assigned[item] = cat
	}
	return c
}

// Update handles navigation and category cycling.
func (c Classify) Update(msg tea.Msg) (Classify, tea.Cmd) {
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
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "right", "l", "enter", " ":
		c.cycle(1)
	case "left", "h":
		c.cycle(-1)
	}
	return c, nil
}

func (c *Classify) cycle(dir int) {
	if len(c.Categories) == 0 || c.Cursor >= len(c.Items) {
		return
	}
	item := c.Items[c.Cursor]
	current, ok := c.assigned[item]
	if !ok {
		if dir > 0 {
			c.assigned[item] = c.Categories[0]
		} else {
			c.assigned[item] = c.Categories[len(c.Categories)-1]
		}
		return
	}
	idx := 0
	for i, cat := range c.Categories {
		if cat == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(c.Categories)) % len(c.Categories)
	c.assigned[item] = c.Categories[idx]
}

// Values returns the item→category assignments made so far.
func (c Classify) Values() map[string]string {
	out := make(map[string]string, len(c.assigned))
	for item, cat := range c.assigned {
		out[item] = cat
	}
	return out
}

// Complete reports whether every item has a category.
func (c Classify) Complete() bool {
	for _, item := range c.Items {
		if _, ok := c.assigned[item]; !ok {
			return false
		}
	}
	return true
}

// View renders the item rows with their current assignment.
func (c Classify) View() string {
	var s string
	for i, item := range c.Items {
		cat, ok := c.assigned[item]
		catText := "—"
		if ok {
			catText = "◂ " + cat + " ▸"
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%-30s %s", prefix, item, catText)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if ok {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if i == c.Cursor {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}

	s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("  ←/→ pilih kategori")
	return s
}
