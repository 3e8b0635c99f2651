package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/universalhex/traitquiz/internal/ui/theme"
)

// ChoiceState is how a single option is drawn.
type ChoiceState int

const (
	ChoiceOpen      ChoiceState = iota // answer not yet locked
	ChoiceCorrect                      // the right answer, after locking
	ChoiceIncorrect                    // the locked wrong pick
	ChoiceDisabled                     // any other option, after locking
)

// MultiChoice is a four-way option picker. It only tracks the cursor; the
// caller owns the locked answer and passes it back through Lock.
type MultiChoice struct {
	Options      []string
	CorrectIndex int // position in Options
	Selected     int
	Locked       bool
	ChosenIndex  int // position in Options, -1 when none
	keys         KeyMap
}

// NewMultiChoice creates a picker over options.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
		keys:         DefaultKeyMap(),
	}
}

// Lock freezes the picker with chosen as the answer (a position in Options,
// or -1 when the answer matched no option).
func (m MultiChoice) Lock(chosen int) MultiChoice {
	m.Locked = true
	m.ChosenIndex = chosen
	return m
}

// Update moves the cursor. It returns the picked position and true when the
// user selects an option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int, bool) {
	if m.Locked {
		return m, -1, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, -1, false
	}

	switch {
	case key.Matches(kmsg, m.keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
		return m, -1, false
	case key.Matches(kmsg, m.keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, -1, false
	case key.Matches(kmsg, m.keys.Select):
		return m, m.Selected, true
	}

	for i, b := range m.keys.Pick {
		if i < len(m.Options) && key.Matches(kmsg, b) {
			m.Selected = i
			return m, i, true
		}
	}
	return m, -1, false
}

// State returns how option i should be drawn.
func (m MultiChoice) State(i int) ChoiceState {
	switch {
	case !m.Locked:
		return ChoiceOpen
	case i == m.CorrectIndex:
		return ChoiceCorrect
	case i == m.ChosenIndex:
		return ChoiceIncorrect
	default:
		return ChoiceDisabled
	}
}

// View renders the options, one per line.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch m.State(i) {
		case ChoiceCorrect:
			style = theme.Correct
			line += "  ✓"
		case ChoiceIncorrect:
			style = theme.Incorrect
			line += "  ✗"
		case ChoiceDisabled:
			style = theme.Disabled
		default:
			if i == m.Selected {
				style = theme.Selected
			} else {
				style = theme.Unselected
			}
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
