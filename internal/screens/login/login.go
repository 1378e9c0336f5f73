// Package login implements the entry screen: sign in, register a new
// account, or recover a forgotten account by phone number.
package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/auth"
	"github.com/edugen/tka/internal/screen"
	"github.com/edugen/tka/internal/ui/components"
	"github.com/edugen/tka/internal/ui/layout"
	"github.com/edugen/tka/internal/ui/theme"
)

// SucceededMsg is emitted when a user is logged in and the app should
// move to the home screen.
type SucceededMsg struct {
	Username string
}

type authDoneMsg struct {
	username string
	err      error
}

type recoverDoneMsg struct {
	username string
	err      error
}

type mode int

const (
	modeMenu mode = iota
	modeLogin
	modeRegister
	modeRecover
)

// Screen is the authentication screen.
type Screen struct {
	svc *auth.Service

	mode   mode
	menu   components.Menu
	fields []components.TextInput
	focus  int

	busy      bool
	errMsg    string
	recovered string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the login screen.
func New(svc *auth.Service) *Screen {
	s := &Screen{svc: svc}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Masuk", Action: func() tea.Cmd { return s.enterMode(modeLogin) }},
		{Label: "Daftar Akun Baru", Action: func() tea.Cmd { return s.enterMode(modeRegister) }},
		{Label: "Lupa Akun (Pulihkan via No. HP)", Action: func() tea.Cmd { return s.enterMode(modeRecover) }},
	})
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Selamat Datang"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.mode == modeMenu {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) enterMode(m mode) tea.Cmd {
	s.mode = m
	s.errMsg = ""
	s.recovered = ""
	s.focus = 0

	switch m {
	case modeLogin:
		s.fields = []components.TextInput{
			components.NewTextInput("Username", "username", 32),
			components.NewPasswordInput("Password"),
		}
	case modeRegister:
		s.fields = []components.TextInput{
			components.NewTextInput("Username", "username", 32),
			components.NewPasswordInput("Password"),
			components.NewTextInput("No. HP (opsional, untuk pemulihan)", "08xx", 20),
		}
	case modeRecover:
		s.fields = []components.TextInput{
			components.NewTextInput("No. HP terdaftar", "08xx", 20),
			components.NewPasswordInput("Password baru"),
		}
	default:
		s.fields = nil
		return nil
	}
	return s.fields[0].Focus()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = friendlyError(msg.err)
			return s, nil
		}
		return s, func() tea.Msg { return SucceededMsg{Username: msg.username} }

	case recoverDoneMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = friendlyError(msg.err)
			return s, nil
		}
		s.recovered = msg.username
		s.mode = modeMenu
		return s, nil

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		if s.mode == modeMenu {
			var cmd tea.Cmd
			s.menu, cmd = s.menu.Update(msg)
			return s, cmd
		}
		return s.updateForm(msg)
	}
	return s, nil
}

func (s *Screen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeMenu
		s.errMsg = ""
		s.recovered = ""
		return s, nil

	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % len(s.fields))

	case "shift+tab", "up":
		return s, s.setFocus((s.focus - 1 + len(s.fields)) % len(s.fields))

	case "enter":
		if s.focus < len(s.fields)-1 {
			return s, s.setFocus(s.focus + 1)
		}
		return s.submit()
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *Screen) setFocus(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[i].Focus()
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	s.busy = true

	switch s.mode {
	case modeLogin:
		username := strings.TrimSpace(s.fields[0].Value())
		password := s.fields[1].Value()
		return s, func() tea.Msg {
			err := s.svc.Login(context.Background(), username, password)
			return authDoneMsg{username: username, err: err}
		}

	case modeRegister:
		username := strings.TrimSpace(s.fields[0].Value())
		password := s.fields[1].Value()
		phone := strings.TrimSpace(s.fields[2].Value())
		return s, func() tea.Msg {
			err := s.svc.Register(context.Background(), username, password, phone)
			return authDoneMsg{username: username, err: err}
		}

	case modeRecover:
		phone := strings.TrimSpace(s.fields[0].Value())
		newPassword := s.fields[1].Value()
		return s, func() tea.Msg {
			username, err := s.svc.RecoverByPhone(context.Background(), phone, newPassword)
			return recoverDoneMsg{username: username, err: err}
		}
	}

	s.busy = false
	return s, nil
}

func friendlyError(err error) string {
	var missing *auth.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("Kolom %s wajib diisi.", missing.Field)
	case errors.Is(err, auth.ErrUsernameTaken):
		return "Username sudah dipakai. Pilih yang lain."
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Username atau password salah."
	case errors.Is(err, auth.ErrAccountNotFound):
		return "Tidak ada akun dengan nomor HP itu."
	default:
		return err.Error()
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	title := theme.Title.Render("EduGen TKA")
	subtitle := theme.Subtitle.Render("Latihan Tes Kemampuan Akademik SD")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	var body string
	switch s.mode {
	case modeMenu:
		body = s.menu.View()
		if s.recovered != "" {
			body = lipgloss.NewStyle().Foreground(theme.Success).
				Render(fmt.Sprintf("Akun ditemukan: %s\nPassword sudah diganti, silakan masuk.", s.recovered)) +
				"\n\n" + body
		}
	default:
		var form strings.Builder
		for i, f := range s.fields {
			form.WriteString(f.View())
			if i < len(s.fields)-1 {
				form.WriteString("\n\n")
			}
		}
		if s.busy {
			form.WriteString("\n\n")
			form.WriteString(theme.Hint.Render("Memproses..."))
		}
		body = form.String()
	}

	if s.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)
	}

	card := theme.Card.Width(52).Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}
