package session

import (
	"time"

	"github.com/universalhex/traitquiz/internal/traits"
)

const (
	// DefaultRounds is the number of rounds in a session.
	DefaultRounds = 10

	// OptionCount is the number of choices offered per question.
	OptionCount = 4

	// DefaultFeedbackDelay is how long an answer stays on screen before the
	// next round.
	DefaultFeedbackDelay = time.Second
)

// Config controls the behavior of the Engine.
type Config struct {
	// Rounds is the session length. Values outside [1, traits.Count]
	// are clamped.
	Rounds int

	// FeedbackDelay is the pause between an answer and the next round.
	// Zero or negative uses DefaultFeedbackDelay.
	FeedbackDelay time.Duration

	// Seed seeds the engine's random source. Zero picks a time-based seed.
	Seed int64
}

// DefaultConfig returns a Config with the standard ten rounds and a
// one-second feedback delay.
func DefaultConfig() Config {
	return Config{
		Rounds:        DefaultRounds,
		FeedbackDelay: DefaultFeedbackDelay,
	}
}

// Clamped returns c with Rounds and FeedbackDelay normalized to the values
// the engine will actually use.
func (c Config) Clamped() Config {
	c.Rounds = c.rounds()
	c.FeedbackDelay = c.feedbackDelay()
	return c
}

func (c Config) rounds() int {
	switch {
	case c.Rounds <= 0:
		return DefaultRounds
	case c.Rounds > traits.Count:
		return traits.Count
	default:
		return c.Rounds
	}
}

func (c Config) feedbackDelay() time.Duration {
	if c.FeedbackDelay <= 0 {
		return DefaultFeedbackDelay
	}
	return c.FeedbackDelay
}
