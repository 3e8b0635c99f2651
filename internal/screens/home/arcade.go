package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/universalhex/traitquiz/internal/ui/theme"
)

const arcadeTitleFull = `╔╦╗╦═╗╔═╗╦╔╦╗  ╔═╗ ╦ ╦╦╔═╗
 ║ ╠╦╝╠═╣║ ║   ║═╬╗║ ║║╔═╝
 ╩ ╩╚═╩ ╩╩ ╩   ╚═╝╚╚═╝╩╚═╝`

const arcadeTitleCompact = "T · R · A · I · T   Q · U · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the quiz facts in a bordered box matching content width.
func renderStatsBar(traitCount, rounds, cw int, compact bool) string {
	traitStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	roundStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			traitStyle.Render(fmt.Sprintf("◈%d", traitCount)),
			roundStyle.Render(fmt.Sprintf("↻%d", rounds)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			traitStyle.Render(fmt.Sprintf("◈ %d TRAITS", traitCount)),
			roundStyle.Render(fmt.Sprintf("↻ %d ROUNDS", rounds)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
