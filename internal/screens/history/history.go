// Package history lists past exam results with delete and clear.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/history"
	"github.com/edugen/tka/internal/router"
	"github.com/edugen/tka/internal/screen"
	"github.com/edugen/tka/internal/store"
	"github.com/edugen/tka/internal/ui/layout"
	"github.com/edugen/tka/internal/ui/theme"
)

type loadedMsg struct {
	records []store.ResultRecord
	err     error
}

type mutatedMsg struct {
	err error
}

// Screen displays the learner's past results, newest first.
type Screen struct {
	svc      *history.Service
	username string

	records     []store.ResultRecord
	selected    int
	loaded      bool
	errMsg      string
	confirmWipe bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the history screen.
func New(svc *history.Service, username string) *Screen {
	return &Screen{svc: svc, username: username}
}

func (s *Screen) Init() tea.Cmd {
	return s.reload()
}

func (s *Screen) reload() tea.Cmd {
	return func() tea.Msg {
		records, err := s.svc.List(context.Background(), s.username)
		return loadedMsg{records: records, err: err}
	}
}

func (s *Screen) Title() string {
	return "Riwayat Nilai"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmWipe {
		return []layout.KeyHint{
			{Key: "y", Description: "Hapus semua"},
			{Key: "n", Description: "Batal"},
		}
	}
	return []layout.KeyHint{
		{Key: "d", Description: "Hapus"},
		{Key: "c", Description: "Hapus semua"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.records = msg.records
			if s.selected >= len(s.records) {
				s.selected = len(s.records) - 1
			}
			if s.selected < 0 {
				s.selected = 0
			}
		}
		s.loaded = true
		return s, nil

	case mutatedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, s.reload()

	case tea.KeyMsg:
		if s.confirmWipe {
			switch msg.String() {
			case "y":
				s.confirmWipe = false
				return s, func() tea.Msg {
					return mutatedMsg{err: s.svc.Clear(context.Background(), s.username)}
				}
			case "n", "esc":
				s.confirmWipe = false
			}
			return s, nil
		}

		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "d":
			if len(s.records) > 0 {
				id := s.records[s.selected].ResultID
				return s, func() tea.Msg {
					return mutatedMsg{err: s.svc.Delete(context.Background(), id)}
				}
			}
		case "c":
			if len(s.records) > 0 {
				s.confirmWipe = true
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Memuat riwayat...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Belum ada riwayat. Ayo mulai ujian!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.confirmWipe {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
				Render("Hapus seluruh riwayat? [y/n]")))
		b.WriteString("\n\n")
	}

	for i, r := range s.records {
		dateStr := r.TakenAt.Format("02 Jan 2006 15:04")

		scoreStyle := lipgloss.NewStyle().Foreground(theme.Success)
		if r.Score < 50 {
			scoreStyle = lipgloss.NewStyle().Foreground(theme.Error)
		} else if r.Score < 75 {
			scoreStyle = lipgloss.NewStyle().Foreground(theme.Warning)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d/%d benar  %d topik",
			prefix, dateStr,
			scoreStyle.Render(fmt.Sprintf("nilai %3d", r.Score)),
			r.CorrectCount, r.TotalQuestions, len(r.Topics))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
