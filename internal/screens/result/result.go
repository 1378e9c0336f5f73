// Package result shows the scored exam with a per-question review.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/exam"
	"github.com/edugen/tka/internal/screen"
	"github.com/edugen/tka/internal/ui/layout"
	"github.com/edugen/tka/internal/ui/theme"
)

// DoneMsg is emitted when the learner dismisses the results.
type DoneMsg struct{}

// Screen displays one scored result.
type Screen struct {
	result   *exam.Result
	selected int
	expanded map[int]bool
	offset   int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the result screen.
func New(result *exam.Result) *Screen {
	return &Screen{
		result:   result,
		expanded: make(map[int]bool),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Hasil Ujian"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Pembahasan"},
		{Key: "q", Description: "Selesai"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.result.Review)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	case "q", "esc":
		return s, func() tea.Msg { return DoneMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	scoreStyle := theme.Correct
	verdict := "Hebat!"
	switch {
	case s.result.Score < 50:
		scoreStyle = theme.Incorrect
		verdict = "Terus berlatih ya."
	case s.result.Score < 75:
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
		verdict = "Sudah bagus, tingkatkan lagi!"
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		scoreStyle.Render(fmt.Sprintf("Nilai: %d", s.result.Score))))
	b.WriteString("\n")

	summary := fmt.Sprintf("%d benar dari %d soal  ·  %s",
		s.result.CorrectCount, s.result.Total, verdict)
	if s.result.TimedOut {
		summary += "  ·  waktu habis"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(summary)))
	b.WriteString("\n\n")

	visible := height - 6
	if visible < 3 {
		visible = 3
	}
	s.scrollTo(visible)

	for i := s.offset; i < len(s.result.Review) && i < s.offset+visible; i++ {
		item := s.result.Review[i]

		mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if item.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		text := item.Question.Text
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		line := fmt.Sprintf("%s%s %2d. %s", prefix, mark, i+1, text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    Jawabanmu: %s\n    Kunci: %s",
				orDash(item.Given.String()), item.Question.CorrectAnswer.String())
			if item.Question.Explanation != "" {
				detail += "\n    " + item.Question.Explanation
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Width(64).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// scrollTo keeps the selected row inside the visible window.
func (s *Screen) scrollTo(visible int) {
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}
