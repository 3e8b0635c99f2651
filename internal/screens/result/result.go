package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/universalhex/traitquiz/internal/router"
	"github.com/universalhex/traitquiz/internal/screen"
	"github.com/universalhex/traitquiz/internal/session"
	"github.com/universalhex/traitquiz/internal/traits"
	"github.com/universalhex/traitquiz/internal/ui/components"
	"github.com/universalhex/traitquiz/internal/ui/layout"
	"github.com/universalhex/traitquiz/internal/ui/theme"
)

var (
	retryKey = key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "try again"))
	// Esc is handled by the app, which pops back to the same home screen.
	homeKey = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "home"))
)

// ResultScreen displays the outcome of a finished quiz.
type ResultScreen struct {
	summary  *session.Summary
	retry    func() screen.Screen
	retrying bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. retry builds the screen for another attempt.
func New(summary *session.Summary, retry func() screen.Screen) *ResultScreen {
	return &ResultScreen{summary: summary, retry: retry}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Try Again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, retryKey):
		if s.retry == nil || s.retrying {
			return s, nil
		}
		s.retrying = true
		next := s.retry()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case key.Matches(kmsg, homeKey):
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Quiz Complete!"))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("Score: %d / %d", sum.Score, sum.Total)))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Body.Render("Ranking: ") +
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(sum.Ranking)))
	b.WriteString("\n")

	if sum.Duration > 0 {
		mins := int(sum.Duration.Minutes())
		secs := int(sum.Duration.Seconds()) % 60
		b.WriteString(theme.Subtitle.
			Width(width).
			Render(fmt.Sprintf("Time: %d:%02d", mins, secs)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Rounds")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	var rows []string
	for _, a := range sum.Answers {
		rows = append(rows, renderAnswer(a))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeButton("Try Again", true, 22)))

	return b.String()
}

func renderAnswer(a session.Answer) string {
	if a.Correct() {
		return theme.Correct.Render(fmt.Sprintf("%2d  ✓ %s", a.Round, traits.Label(a.CorrectIndex)))
	}
	return theme.Incorrect.Render(fmt.Sprintf("%2d  ✗ %s", a.Round, traits.Label(a.Chosen))) +
		theme.Disabled.Render(fmt.Sprintf("  (was %s)", traits.Label(a.CorrectIndex)))
}
