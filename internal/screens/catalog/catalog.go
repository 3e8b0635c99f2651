package catalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/universalhex/traitquiz/internal/router"
	"github.com/universalhex/traitquiz/internal/screen"
	"github.com/universalhex/traitquiz/internal/traits"
	"github.com/universalhex/traitquiz/internal/ui/layout"
	"github.com/universalhex/traitquiz/internal/ui/theme"
)

// pageSize is how far PgUp/PgDn move the cursor.
const pageSize = 8

// CatalogScreen lists every trait with its icon number.
type CatalogScreen struct {
	assetBase    string
	labels       []string
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)
var _ screen.StatusProvider = (*CatalogScreen)(nil)

// New creates a CatalogScreen. assetBase resolves icon paths in the detail view.
func New(assetBase string) *CatalogScreen {
	return &CatalogScreen{
		assetBase: assetBase,
		labels:    traits.All(),
	}
}

func (s *CatalogScreen) Init() tea.Cmd {
	return nil
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "pgup":
			s.moveCursor(-pageSize)
		case "pgdown":
			s.moveCursor(pageSize)
		case "home", "g":
			s.cursor = 0
		case "end", "G":
			s.cursor = len(s.labels) - 1
		case "enter":
			return s, s.selectTrait()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CatalogScreen) View(width, height int) string {
	if len(s.labels) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.labels) && len(lines) < height; i++ {
		lines = append(lines, s.renderRow(i, i == s.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (s *CatalogScreen) Title() string {
	return "Trait Catalog"
}

func (s *CatalogScreen) Status() string {
	return fmt.Sprintf("%d / %d", s.cursor+1, len(s.labels))
}

func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, clamped to the list.
func (s *CatalogScreen) moveCursor(delta int) {
	s.cursor = min(max(s.cursor+delta, 0), len(s.labels)-1)
}

// adjustScroll keeps the cursor inside a viewport of height rows.
func (s *CatalogScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *CatalogScreen) selectTrait() tea.Cmd {
	detail := newTraitDetail(s.cursor, s.assetBase)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *CatalogScreen) renderRow(i int, selected bool, width int) string {
	iconID := traits.IconID(i)

	nameWidth := width - 20
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := s.labels[i]
	if lipgloss.Width(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := theme.Body
	idStyle := theme.Disabled
	cursor := "  "
	if selected {
		nameStyle = theme.Selected
		idStyle = theme.Selected.Bold(false)
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s  %s",
		cursor,
		idStyle.Render(fmt.Sprintf("#%-3d", iconID)),
		nameStyle.Render(name),
	)
}
