// Package app is the root Bubble Tea model: it owns navigation between
// screens, the logged-in session, and the inactivity watchdog.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/auth"
	"github.com/edugen/tka/internal/config"
	"github.com/edugen/tka/internal/exam"
	"github.com/edugen/tka/internal/history"
	"github.com/edugen/tka/internal/router"
	"github.com/edugen/tka/internal/screen"
	"github.com/edugen/tka/internal/screens/examscreen"
	historyscreen "github.com/edugen/tka/internal/screens/history"
	"github.com/edugen/tka/internal/screens/home"
	"github.com/edugen/tka/internal/screens/login"
	"github.com/edugen/tka/internal/screens/result"
	"github.com/edugen/tka/internal/screens/topicselect"
	"github.com/edugen/tka/internal/topics"
	"github.com/edugen/tka/internal/ui/layout"
	"github.com/edugen/tka/internal/watchdog"
)

const watchdogPollInterval = 15 * time.Second

// Options carries the wired services into the TUI.
type Options struct {
	Config  config.Config
	Auth    *auth.Service
	History *history.Service
	Exam    *exam.Service

	// Username is the restored session, empty when nobody is logged in.
	Username string

	// CanResume is set when a saved exam attempt was restored.
	CanResume bool
}

type watchdogTickMsg time.Time

type loggedOutMsg struct{}

type resumeCheckedMsg struct {
	canResume bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	wd     *watchdog.Watchdog

	username  string
	canResume bool
	width     int
	height    int
}

func newAppModel(opts Options) AppModel {
	m := AppModel{
		opts:      opts,
		wd:        watchdog.New(opts.Config.InactivityWindow),
		username:  opts.Username,
		canResume: opts.CanResume,
	}

	if m.username != "" {
		m.router = router.New(home.New(m.username, opts.History, m.canResume))
	} else {
		m.router = router.New(login.New(opts.Auth))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), watchdogTick())
}

func watchdogTick() tea.Cmd {
	return tea.Tick(watchdogPollInterval, func(t time.Time) tea.Msg {
		return watchdogTickMsg(t)
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case watchdogTickMsg:
		if m.username != "" && m.wd.Expired() {
			return m, m.logout()
		}
		return m, watchdogTick()

	case loggedOutMsg:
		m.username = ""
		m.canResume = false
		m.wd.Touch()
		return m, m.router.Replace(login.New(m.opts.Auth))

	case login.SucceededMsg:
		m.username = msg.Username
		m.wd.Touch()
		return m, func() tea.Msg {
			resumed, err := m.opts.Exam.Resume(context.Background(), msg.Username)
			if err != nil {
				resumed = false
			}
			return resumeCheckedMsg{canResume: resumed}
		}

	case resumeCheckedMsg:
		m.canResume = msg.canResume
		return m, m.router.Replace(home.New(m.username, m.opts.History, m.canResume))

	case home.StartRequestedMsg:
		return m, m.router.Push(topicselect.New(topics.DefaultSelection()))

	case home.ResumeRequestedMsg:
		return m, m.router.Push(examscreen.New(
			m.opts.Exam, m.username, topics.Selection{},
			m.opts.Config.LoadingMessageInterval, true))

	case home.HistoryRequestedMsg:
		return m, m.router.Push(historyscreen.New(m.opts.History, m.username))

	case home.LogoutRequestedMsg:
		return m, m.logout()

	case topicselect.ExamRequestedMsg:
		return m, m.router.Push(examscreen.New(
			m.opts.Exam, m.username, msg.Selection,
			m.opts.Config.LoadingMessageInterval, false))

	case examscreen.FinishedMsg:
		m.canResume = false
		return m, m.router.Replace(result.New(msg.Result))

	case examscreen.LeftMsg:
		m.canResume = m.opts.Exam.Phase() == exam.PhaseInProgress
		return m, m.router.Replace(home.New(m.username, m.opts.History, m.canResume))

	case result.DoneMsg:
		m.opts.Exam.Reset()
		return m, m.router.Replace(home.New(m.username, m.opts.History, false))

	case tea.KeyMsg:
		m.wd.Touch()
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if blocker, ok := m.router.Active().(screen.BackBlocker); ok && blocker.BlockBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// logout clears the session and any running attempt, then returns to
// the login screen.
func (m AppModel) logout() tea.Cmd {
	username := m.username
	return func() tea.Msg {
		ctx := context.Background()
		if username != "" {
			_ = m.opts.Exam.Discard(ctx, username)
		}
		_ = m.opts.Auth.Logout(ctx)
		return loggedOutMsg{}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	countdown := ""
	if es, ok := active.(*examscreen.Screen); ok {
		if remaining := es.Remaining(); remaining > 0 {
			countdown = layout.FormatCountdown(int(remaining.Seconds()))
		}
	}

	header := layout.RenderHeader(title, m.username, countdown, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
