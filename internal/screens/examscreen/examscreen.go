// Package examscreen runs one exam attempt: the generation wait, the
// question-by-question flow against the countdown, and submission.
package examscreen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/exam"
	"github.com/edugen/tka/internal/questiongen"
	"github.com/edugen/tka/internal/screen"
	"github.com/edugen/tka/internal/topics"
	"github.com/edugen/tka/internal/ui/components"
	"github.com/edugen/tka/internal/ui/layout"
	"github.com/edugen/tka/internal/ui/theme"
)

var loadingMessages = []string{
	"Menyusun soal Matematika...",
	"Meracik soal Bahasa Indonesia...",
	"Memeriksa tingkat kesulitan...",
	"Menyiapkan pilihan jawaban...",
	"Hampir selesai, sabar ya...",
}

type phase int

const (
	phaseGenerating phase = iota
	phaseFailed
	phaseAnswering
	phaseConfirm
	phaseScoring
)

// answerInput is the per-question component, one of the three kinds.
type answerInput struct {
	kind     questiongen.QuestionType
	single   components.SingleChoice
	multi    components.MultiSelect
	classify components.Classify
}

// Screen drives the exam attempt.
type Screen struct {
	svc             *exam.Service
	username        string
	selection       topics.Selection
	loadingInterval time.Duration
	resume          bool

	phase      phase
	loadingIdx int
	errMsg     string

	questions []questiongen.Question
	index     int
	input     answerInput
	remaining time.Duration
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.BackBlocker = (*Screen)(nil)

// New creates the exam screen. With resume set, the service already
// holds a restored attempt and generation is skipped.
func New(svc *exam.Service, username string, sel topics.Selection, loadingInterval time.Duration, resume bool) *Screen {
	return &Screen{
		svc:             svc,
		username:        username,
		selection:       sel,
		loadingInterval: loadingInterval,
		resume:          resume,
	}
}

func (s *Screen) Init() tea.Cmd {
	if s.resume {
		return func() tea.Msg { return examReadyMsg{} }
	}
	return tea.Batch(
		func() tea.Msg {
			err := s.svc.Start(context.Background(), s.username, s.selection)
			return examReadyMsg{err: err}
		},
		s.loadingTick(),
	)
}

func (s *Screen) loadingTick() tea.Cmd {
	return tea.Tick(s.loadingInterval, func(t time.Time) tea.Msg {
		return loadingTickMsg(t)
	})
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *Screen) Title() string {
	switch s.phase {
	case phaseGenerating:
		return "Menyiapkan Ujian"
	default:
		return "Ujian"
	}
}

// BlockBack keeps the global Esc handler away; the screen decides
// itself what leaving means.
func (s *Screen) BlockBack() bool {
	return true
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "←/→", Description: "Soal"},
			{Key: "Space", Description: "Pilih"},
			{Key: "Ctrl+S", Description: "Kumpulkan"},
			{Key: "Esc", Description: "Keluar (tersimpan)"},
		}
	case phaseConfirm:
		return []layout.KeyHint{
			{Key: "y", Description: "Ya, kumpulkan"},
			{Key: "n", Description: "Kembali"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Batal"},
		}
	}
}

// Remaining returns the countdown for the header.
func (s *Screen) Remaining() time.Duration {
	return s.remaining
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examReadyMsg:
		if msg.err != nil {
			s.phase = phaseFailed
			s.errMsg = friendlyError(msg.err)
			return s, nil
		}
		attempt := s.svc.Attempt()
		if attempt == nil {
			s.phase = phaseFailed
			s.errMsg = "Ujian tidak ditemukan."
			return s, nil
		}
		s.questions = attempt.Questions
		s.index = 0
		s.remaining = attempt.Remaining(time.Now())
		s.phase = phaseAnswering
		s.buildInput()
		return s, timerTick()

	case loadingTickMsg:
		if s.phase != phaseGenerating {
			return s, nil
		}
		s.loadingIdx = (s.loadingIdx + 1) % len(loadingMessages)
		return s, s.loadingTick()

	case timerTickMsg:
		if s.phase != phaseAnswering && s.phase != phaseConfirm {
			return s, nil
		}
		attempt := s.svc.Attempt()
		if attempt == nil {
			return s, nil
		}
		s.remaining = attempt.Remaining(time.Now())
		if s.remaining == 0 {
			s.phase = phaseScoring
			return s, s.finalize(true)
		}
		return s, timerTick()

	case answerSavedMsg:
		if msg.err != nil {
			s.errMsg = "Gagal menyimpan jawaban: " + msg.err.Error()
		}
		return s, nil

	case finalizedMsg:
		if msg.err != nil {
			s.phase = phaseAnswering
			s.errMsg = "Gagal mengumpulkan: " + msg.err.Error()
			return s, timerTick()
		}
		result := msg.result
		return s, func() tea.Msg { return FinishedMsg{Result: result} }

	case tea.KeyMsg:
		return s.updateKeys(msg)
	}
	return s, nil
}

func (s *Screen) updateKeys(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseGenerating, phaseFailed:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return LeftMsg{} }
		}
		return s, nil

	case phaseConfirm:
		switch msg.String() {
		case "y", "enter":
			s.phase = phaseScoring
			return s, s.finalize(false)
		case "n", "esc":
			s.phase = phaseAnswering
		}
		return s, nil

	case phaseAnswering:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return LeftMsg{} }
		case "left", "p":
			if s.index > 0 {
				s.index--
				s.buildInput()
			}
			return s, nil
		case "right", "n":
			if s.index < len(s.questions)-1 {
				s.index++
				s.buildInput()
			}
			return s, nil
		case "ctrl+s":
			s.phase = phaseConfirm
			return s, nil
		}

		before := s.currentValue()
		s.updateInput(msg)
		after := s.currentValue()
		if !questiongen.Equal(before, after) {
			q := s.questions[s.index]
			return s, func() tea.Msg {
				err := s.svc.RecordAnswer(context.Background(), q.ID, after)
				return answerSavedMsg{err: err}
			}
		}
		return s, nil
	}
	return s, nil
}

// buildInput creates the answer component for the current question,
// restoring any saved answer from the attempt.
func (s *Screen) buildInput() {
	q := s.questions[s.index]
	saved := questiongen.Null()
	if attempt := s.svc.Attempt(); attempt != nil {
		if v, ok := attempt.Answers[q.ID]; ok {
			saved = v
		}
	}

	s.input = answerInput{kind: q.Type}
	switch q.Type {
	case questiongen.TypeMultiSelect:
		var chosen []string
		if saved.Kind == questiongen.KindList {
			for _, v := range saved.List {
				chosen = append(chosen, v.Str)
			}
		}
		s.input.multi = components.NewMultiSelect(q.Options, chosen)

	case questiongen.TypeCategoryClassification:
		assigned := make(map[string]string)
		if saved.Kind == questiongen.KindObject {
			for item, v := range saved.Object {
				assigned[item] = v.Str
			}
		}
		s.input.classify = components.NewClassify(q.Options, q.Categories, assigned)

	default:
		s.input.single = components.NewSingleChoice(q.Options, saved.Str)
	}
}

func (s *Screen) updateInput(msg tea.Msg) {
	switch s.input.kind {
	case questiongen.TypeMultiSelect:
		s.input.multi, _ = s.input.multi.Update(msg)
	case questiongen.TypeCategoryClassification:
		s.input.classify, _ = s.input.classify.Update(msg)
	default:
		s.input.single, _ = s.input.single.Update(msg)
	}
}

// currentValue extracts the answer value from the active component.
// Nothing chosen yet maps to the null value, which is never persisted
// as an answer.
func (s *Screen) currentValue() questiongen.AnswerValue {
	switch s.input.kind {
	case questiongen.TypeMultiSelect:
		values := s.input.multi.Values()
		if len(values) == 0 {
			return questiongen.Null()
		}
		return questiongen.StringList(values...)

	case questiongen.TypeCategoryClassification:
		values := s.input.classify.Values()
		if len(values) == 0 {
			return questiongen.Null()
		}
		return questiongen.StringMap(values)

	default:
		v := s.input.single.Value()
		if v == "" {
			return questiongen.Null()
		}
		return questiongen.StringValue(v)
	}
}

func (s *Screen) finalize(timedOut bool) tea.Cmd {
	return func() tea.Msg {
		result, err := s.svc.Finalize(context.Background(), timedOut)
		return finalizedMsg{result: result, err: err}
	}
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, exam.ErrOffline):
		return "Tidak ada koneksi internet. Sambungkan dulu, lalu coba lagi."
	case errors.Is(err, exam.ErrBusy):
		return "Ujian lain sedang disiapkan. Tunggu sebentar."
	case errors.Is(err, questiongen.ErrEmptyResult):
		return "Soal gagal dibuat. Coba lagi ya."
	default:
		return "Gagal menyiapkan ujian: " + err.Error()
	}
}

func (s *Screen) View(width, height int) string {
	switch s.phase {
	case phaseGenerating:
		return s.viewLoading(width)
	case phaseFailed:
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg + "\n\nTekan Esc untuk kembali.")
	case phaseScoring:
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nMenghitung nilai...")
	case phaseConfirm:
		return s.viewConfirm(width)
	default:
		return s.viewQuestion(width)
	}
}

func (s *Screen) viewLoading(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Menyiapkan ujianmu")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(loadingMessages[s.loadingIdx])))
	return b.String()
}

func (s *Screen) viewConfirm(width int) string {
	attempt := s.svc.Attempt()
	answered := 0
	total := len(s.questions)
	if attempt != nil {
		answered = attempt.Answered()
	}

	body := fmt.Sprintf("Kumpulkan ujian sekarang?\n\n%d dari %d soal terjawab.", answered, total)
	if answered < total {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Warning).
			Render("Soal kosong dihitung salah.")
	}
	body += "\n\n[y] Ya, kumpulkan   [n] Kembali"

	card := theme.Card.Width(44).Render(body)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (s *Screen) viewQuestion(width int) string {
	q := s.questions[s.index]

	var b strings.Builder
	b.WriteString("\n")

	// Navigator strip.
	answered := make([]bool, len(s.questions))
	if attempt := s.svc.Attempt(); attempt != nil {
		for i, qq := range s.questions {
			if v, ok := attempt.Answers[qq.ID]; ok && !v.IsNull() {
				answered[i] = true
			}
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.QuestionDots(answered, s.index)))
	b.WriteString("\n\n")

	meta := fmt.Sprintf("Soal %d/%d  ·  %s  ·  %s  ·  %s",
		s.index+1, len(s.questions), q.Subject, q.Topic, q.CognitiveLevel)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(meta)))
	b.WriteString("\n\n")

	var body strings.Builder
	if q.Passage != "" {
		passage := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Width(50).Render(q.Passage)
		body.WriteString(passage)
		body.WriteString("\n\n")
	}
	body.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Width(50).Render(q.Text))
	body.WriteString("\n\n")

	switch s.input.kind {
	case questiongen.TypeMultiSelect:
		body.WriteString(s.input.multi.View())
	case questiongen.TypeCategoryClassification:
		body.WriteString(s.input.classify.View())
	default:
		body.WriteString(s.input.single.View())
	}

	if s.errMsg != "" {
		body.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	card := theme.Card.Width(58).Render(body.String())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}
