package quiz

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/universalhex/traitquiz/internal/router"
	"github.com/universalhex/traitquiz/internal/screen"
	"github.com/universalhex/traitquiz/internal/screens/result"
	sess "github.com/universalhex/traitquiz/internal/session"
	"github.com/universalhex/traitquiz/internal/traits"
	"github.com/universalhex/traitquiz/internal/ui/components"
	"github.com/universalhex/traitquiz/internal/ui/layout"
)

var restartKey = key.NewBinding(
	key.WithKeys("r"),
	key.WithHelp("r", "restart"),
)

// QuizScreen implements screen.Screen for a running quiz.
type QuizScreen struct {
	engine    *sess.Engine
	assetBase string
	state     sess.Session
	choice    components.MultiChoice
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen and starts a fresh session on engine.
func New(engine *sess.Engine, assetBase string) *QuizScreen {
	s := &QuizScreen{
		engine:    engine,
		assetBase: assetBase,
	}
	s.sync(engine.Start())
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return fmt.Sprintf("Question %d / %d", s.state.Round(), s.state.Rounds())
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Score %d", s.state.Score)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.state.Answered() {
		return []layout.KeyHint{
			{Key: "r", Description: "Restart"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "r", Description: "Restart"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return s.handleAdvance(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.state.Complete {
		return s, nil
	}

	if key.Matches(msg, restartKey) {
		s.sync(s.engine.Restart())
		return s, nil
	}

	var pos int
	var picked bool
	s.choice, pos, picked = s.choice.Update(msg)
	if !picked {
		return s, nil
	}
	return s.submit(pos)
}

// submit locks the option at pos and schedules the round transition.
func (s *QuizScreen) submit(pos int) (screen.Screen, tea.Cmd) {
	if pos < 0 || pos >= len(s.state.Question.Options) {
		return s, nil
	}

	adv, ok := s.engine.Submit(s.state.Question.Options[pos])
	if !ok {
		return s, nil
	}
	s.sync(s.engine.Session())

	return s, tea.Tick(adv.Delay, func(time.Time) tea.Msg {
		return advanceMsg{Advance: adv}
	})
}

func (s *QuizScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if !s.engine.Apply(msg.Advance) {
		return s, nil
	}
	s.sync(s.engine.Session())

	if !s.state.Complete {
		return s, nil
	}

	summary := sess.BuildSummary(s.state)
	engine, base := s.engine, s.assetBase
	next := result.New(summary, func() screen.Screen {
		return New(engine, base)
	})
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// sync adopts a new session value and rebuilds the picker from it.
func (s *QuizScreen) sync(state sess.Session) {
	newRound := state.ID != s.state.ID || state.Position != s.state.Position
	s.state = state

	q := state.Question
	if newRound || s.choice.Options == nil {
		labels := make([]string, len(q.Options))
		correctPos := -1
		for i, idx := range q.Options {
			labels[i] = traits.Label(idx)
			if idx == q.CorrectIndex {
				correctPos = i
			}
		}
		s.choice = components.NewMultiChoice(labels, correctPos)
	}

	if state.Selected != nil {
		chosenPos := -1
		for i, idx := range q.Options {
			if idx == *state.Selected {
				chosenPos = i
				break
			}
		}
		s.choice = s.choice.Lock(chosenPos)
	}
}
