package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/universalhex/traitquiz/internal/traits"
	"github.com/universalhex/traitquiz/internal/ui/components"
	"github.com/universalhex/traitquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	state := s.state
	cw := components.ContentWidth(width)

	var b strings.Builder

	// Info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d / %d", state.Round(), state.Rounds()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			state.Score,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	progress := components.NewRoundProgress(s.roundResults(), cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	q := state.Question
	icon := components.IconCard(q.IconID, traits.IconPath(s.assetBase, q.IconID), cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, icon))
	b.WriteString("\n\n")

	b.WriteString(theme.Title.
		Width(width).
		Foreground(theme.Text).
		Render("Which trait does this icon stand for?"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")
	b.WriteString(s.renderFeedback(width))

	return b.String()
}

// renderFeedback renders the line under the options once an answer is locked.
func (s *QuizScreen) renderFeedback(width int) string {
	state := s.state
	if state.Selected == nil {
		return theme.Hint.Width(width).Align(lipgloss.Center).Render("Select (1-4) or use arrows + Enter")
	}
	if state.Question.IsCorrect(*state.Selected) {
		return theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!")
	}
	return theme.Incorrect.Width(width).Align(lipgloss.Center).Render(
		fmt.Sprintf("Not quite. It was \"%s\"", traits.Label(state.Question.CorrectIndex)))
}

// roundResults maps the session onto progress strip cells.
func (s *QuizScreen) roundResults() []components.RoundResult {
	state := s.state
	out := make([]components.RoundResult, state.Rounds())
	for _, a := range state.Answers {
		i := a.Round - 1
		if i < 0 || i >= len(out) {
			continue
		}
		if a.Correct() {
			out[i] = components.RoundRight
		} else {
			out[i] = components.RoundWrong
		}
	}
	if !state.Answered() && state.Position < len(out) {
		out[state.Position] = components.RoundCurrent
	}
	return out
}
