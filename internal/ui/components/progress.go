package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/universalhex/traitquiz/internal/ui/theme"
)

// RoundResult is the outcome of one round as shown in the progress strip.
type RoundResult int

const (
	RoundPending RoundResult = iota
	RoundCurrent
	RoundRight
	RoundWrong
)

// RoundProgress displays one cell per round, colored by outcome.
type RoundProgress struct {
	Results []RoundResult
	Width   int
}

// NewRoundProgress creates a progress strip for the given results.
func NewRoundProgress(results []RoundResult, width int) RoundProgress {
	return RoundProgress{
		Results: results,
		Width:   width,
	}
}

// Done returns the number of rounds with an outcome.
func (p RoundProgress) Done() int {
	n := 0
	for _, r := range p.Results {
		if r == RoundRight || r == RoundWrong {
			n++
		}
	}
	return n
}

// View renders the strip followed by a "done/total" counter.
func (p RoundProgress) View() string {
	total := len(p.Results)
	if total == 0 {
		return ""
	}

	counter := fmt.Sprintf("  %d/%d", p.Done(), total)

	cellWidth := (p.Width - len(counter)) / total
	if cellWidth < 1 {
		cellWidth = 1
	}
	if cellWidth > 4 {
		cellWidth = 4
	}

	cells := make([]string, 0, total)
	for _, r := range p.Results {
		cells = append(cells, lipgloss.NewStyle().
			Background(resultColor(r)).
			Render(strings.Repeat(" ", cellWidth)))
	}

	return strings.Join(cells, "") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}

func resultColor(r RoundResult) color.Color {
	switch r {
	case RoundRight:
		return theme.Success
	case RoundWrong:
		return theme.Error
	case RoundCurrent:
		return theme.Secondary
	default:
		return theme.Border
	}
}
