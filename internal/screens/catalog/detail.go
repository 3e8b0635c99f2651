package catalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/universalhex/traitquiz/internal/screen"
	"github.com/universalhex/traitquiz/internal/traits"
	"github.com/universalhex/traitquiz/internal/ui/components"
	"github.com/universalhex/traitquiz/internal/ui/layout"
	"github.com/universalhex/traitquiz/internal/ui/theme"
)

// TraitDetailScreen shows one trait and where its icon lives.
type TraitDetailScreen struct {
	index     int
	assetBase string
}

var _ screen.Screen = (*TraitDetailScreen)(nil)
var _ screen.KeyHintProvider = (*TraitDetailScreen)(nil)

func newTraitDetail(index int, assetBase string) *TraitDetailScreen {
	return &TraitDetailScreen{index: index, assetBase: assetBase}
}

func (d *TraitDetailScreen) Init() tea.Cmd { return nil }
func (d *TraitDetailScreen) Title() string { return fmt.Sprintf("Trait #%d", traits.IconID(d.index)) }

func (d *TraitDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *TraitDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *TraitDetailScreen) View(width, height int) string {
	iconID := traits.IconID(d.index)
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.IconCard(iconID, traits.IconPath(d.assetBase, iconID), cw))
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(cw).Render(traits.Label(d.index)))
	b.WriteString("\n\n")

	dimStyle := theme.Disabled
	valStyle := theme.Body
	b.WriteString(dimStyle.Render("Index:  ") + valStyle.Render(fmt.Sprintf("%d", d.index)) + "\n")
	b.WriteString(dimStyle.Render("Icon:   ") + valStyle.Render(traits.IconFile(iconID)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+b.String())
}
