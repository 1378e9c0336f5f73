package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edugen/tka/internal/ui/theme"
)

// ProgressBar renders a simple filled/empty bar, e.g. answered
// questions out of total.
func ProgressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	filled := current * width / total
	empty := width - filled

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	return bar
}

// QuestionDots renders one marker per question: answered, current, or
// untouched. Used as the exam navigator strip.
func QuestionDots(answered []bool, current int) string {
	var b strings.Builder
	for i, done := range answered {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		dot := "○"
		if done {
			style = lipgloss.NewStyle().Foreground(theme.Success)
			dot = "●"
		}
		if i == current {
			style = style.Bold(true).Underline(true)
			if !done {
				style = style.Foreground(theme.Primary)
			}
		}
		b.WriteString(style.Render(dot))
		if i < len(answered)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
