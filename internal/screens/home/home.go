// Package home is the dashboard after login.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/history"
	"github.com/edugen/tka/internal/screen"
	"github.com/edugen/tka/internal/ui/components"
	"github.com/edugen/tka/internal/ui/layout"
	"github.com/edugen/tka/internal/ui/theme"
)

// StartRequestedMsg asks the app to open the topic selection screen.
type StartRequestedMsg struct{}

// ResumeRequestedMsg asks the app to reopen the in-progress exam.
type ResumeRequestedMsg struct{}

// HistoryRequestedMsg asks the app to open the history screen.
type HistoryRequestedMsg struct{}

// LogoutRequestedMsg asks the app to log out and return to login.
type LogoutRequestedMsg struct{}

type summaryLoadedMsg struct {
	summary history.Summary
	err     error
}

// Screen is the dashboard.
type Screen struct {
	username  string
	histSvc   *history.Service
	canResume bool

	menu    components.Menu
	summary history.Summary
	loaded  bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the home screen. canResume shows the resume entry when a
// saved exam is waiting.
func New(username string, histSvc *history.Service, canResume bool) *Screen {
	s := &Screen{username: username, histSvc: histSvc, canResume: canResume}

	items := []components.MenuItem{}
	if canResume {
		items = append(items, components.MenuItem{
			Label:  "Lanjutkan Ujian",
			Action: func() tea.Cmd { return func() tea.Msg { return ResumeRequestedMsg{} } },
		})
	}
	items = append(items,
		components.MenuItem{
			Label:  "Mulai Ujian Baru",
			Action: func() tea.Cmd { return func() tea.Msg { return StartRequestedMsg{} } },
		},
		components.MenuItem{
			Label:  "Riwayat Nilai",
			Action: func() tea.Cmd { return func() tea.Msg { return HistoryRequestedMsg{} } },
		},
		components.MenuItem{
			Label:  "Keluar",
			Action: func() tea.Cmd { return func() tea.Msg { return LogoutRequestedMsg{} } },
		},
	)
	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		summary, err := s.histSvc.Summarize(context.Background(), s.username)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (s *Screen) Title() string {
	return "Beranda"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		if msg.err == nil {
			s.summary = msg.summary
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	greeting := theme.Title.Render(fmt.Sprintf("Halo, %s!", s.username))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, greeting))
	b.WriteString("\n")

	if s.loaded && s.summary.Attempts > 0 {
		stats := theme.Subtitle.Render(fmt.Sprintf(
			"%d ujian selesai  ·  terbaik %d  ·  rata-rata %d",
			s.summary.Attempts, s.summary.BestScore, s.summary.AvgScore))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, stats))
	} else if s.loaded {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render("Belum ada ujian. Ayo mulai!")))
	}
	b.WriteString("\n\n")

	if s.canResume {
		notice := lipgloss.NewStyle().Foreground(theme.Warning).
			Render("Ada ujian yang belum selesai.")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, notice))
		b.WriteString("\n\n")
	}

	card := theme.Card.Width(44).Render(s.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}
