// Package topicselect lets the learner compose the exam: which topics
// from each section go into the question set.
package topicselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/screen"
	"github.com/edugen/tka/internal/topics"
	"github.com/edugen/tka/internal/ui/layout"
	"github.com/edugen/tka/internal/ui/theme"
)

// ExamRequestedMsg asks the app to start an exam over the selection.
type ExamRequestedMsg struct {
	Selection topics.Selection
}

// row is one cursor position: a topic under a category.
type row struct {
	cat   topics.Category
	topic string
}

// Screen is the topic selection screen.
type Screen struct {
	selection topics.Selection
	undo      *topics.UndoStack
	rows      []row
	cursor    int
	notice    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen seeded with the given selection.
func New(sel topics.Selection) *Screen {
	s := &Screen{
		selection: sel,
		undo:      topics.NewUndoStack(sel),
	}
	for _, t := range topics.NumeracyCatalog {
		s.rows = append(s.rows, row{cat: topics.CategoryMath, topic: t})
	}
	for _, t := range topics.LiteracyCatalog {
		s.rows = append(s.rows, row{cat: topics.CategoryIndonesian, topic: t})
	}
	return s
}

// Selection returns the current selection.
func (s *Screen) Selection() topics.Selection {
	return s.selection
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Pilih Topik"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "u/y", Description: "Undo/Redo"},
		{Key: "s", Description: "Mulai ujian"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	s.notice = ""
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case " ", "enter":
		r := s.rows[s.cursor]
		next := topics.Toggle(s.selection, r.cat, r.topic)
		if s.selection.Contains(r.cat, r.topic) && next.Contains(r.cat, r.topic) {
			s.notice = "Minimal satu topik per kategori."
			return s, nil
		}
		s.selection = next
		s.undo.Record(next)
	case "u", "ctrl+z":
		if prev, ok := s.undo.Undo(); ok {
			s.selection = prev
		} else {
			s.notice = "Tidak ada yang bisa di-undo."
		}
	case "y", "ctrl+y":
		if next, ok := s.undo.Redo(); ok {
			s.selection = next
		} else {
			s.notice = "Tidak ada yang bisa di-redo."
		}
	case "s":
		sel := s.selection
		return s, func() tea.Msg { return ExamRequestedMsg{Selection: sel} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	header := func(label string, count int) string {
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("%s (%d dipilih)", label, count))
	}

	var lines []string
	lines = append(lines, header("Numerasi — Matematika", len(s.selection.Math)))
	for i, r := range s.rows {
		if r.cat != topics.CategoryMath {
			continue
		}
		lines = append(lines, s.renderRow(i, r))
	}
	lines = append(lines, "")
	lines = append(lines, header("Literasi — Bahasa Indonesia", len(s.selection.Indonesian)))
	for i, r := range s.rows {
		if r.cat != topics.CategoryIndonesian {
			continue
		}
		lines = append(lines, s.renderRow(i, r))
	}

	body := strings.Join(lines, "\n")
	if s.notice != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Warning).Render(s.notice)
	}
	body += "\n\n" + theme.Hint.Render("Tekan s untuk mulai ujian.")

	card := theme.Card.Width(56).Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	return b.String()
}

func (s *Screen) renderRow(i int, r row) string {
	marker := "[ ]"
	if s.selection.Contains(r.cat, r.topic) {
		marker = "[x]"
	}
	prefix := "  "
	if i == s.cursor {
		prefix = "▸ "
	}

	line := fmt.Sprintf("%s%s %s", prefix, marker, r.topic)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if s.selection.Contains(r.cat, r.topic) {
		style = lipgloss.NewStyle().Foreground(theme.Secondary)
	}
	if i == s.cursor {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(line)
}
