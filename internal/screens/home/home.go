package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/universalhex/traitquiz/internal/router"
	"github.com/universalhex/traitquiz/internal/screen"
	"github.com/universalhex/traitquiz/internal/screens/catalog"
	"github.com/universalhex/traitquiz/internal/screens/quiz"
	"github.com/universalhex/traitquiz/internal/session"
	"github.com/universalhex/traitquiz/internal/traits"
	"github.com/universalhex/traitquiz/internal/ui/components"
	"github.com/universalhex/traitquiz/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu   components.Menu
	rounds int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. Starting a quiz begins a fresh session on engine.
func New(engine *session.Engine, assetBase string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(engine, assetBase)}
			}
		}},
		{Label: "TRAIT CATALOG", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: catalog.New(assetBase)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:   components.NewMenu(items),
		rounds: engine.Session().Rounds(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(traits.Count, h.rounds, cw, compact),
		h.menu.View(cw),
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
