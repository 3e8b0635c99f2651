package quiz

import (
	sess "github.com/universalhex/traitquiz/internal/session"
)

// advanceMsg is delivered after the feedback delay to move to the next round.
type advanceMsg struct {
	Advance sess.Advance
}
