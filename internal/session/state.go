package session

import "time"

// Question is a single round: identify the trait behind an icon.
type Question struct {
	// IconID is the 1-based asset id of the icon (CorrectIndex + 1).
	IconID int

	// CorrectIndex is the trait index the icon belongs to.
	CorrectIndex int

	// Options holds OptionCount distinct trait indices, CorrectIndex among them.
	Options []int
}

// Contains reports whether index is one of the question's options.
func (q Question) Contains(index int) bool {
	for _, o := range q.Options {
		if o == index {
			return true
		}
	}
	return false
}

// IsCorrect reports whether index answers the question.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectIndex
}

func (q Question) clone() Question {
	q.Options = append([]int(nil), q.Options...)
	return q
}

// Answer records what was chosen in one round.
type Answer struct {
	Round        int // 1-based
	CorrectIndex int
	Chosen       int
}

// Correct reports whether the chosen index matched the round's trait.
func (a Answer) Correct() bool {
	return a.Chosen == a.CorrectIndex
}

// Session is the immutable state of one quiz attempt. The engine replaces
// it wholesale on every transition; values handed out are copies.
type Session struct {
	// ID identifies the attempt in logs.
	ID string

	// Generation changes on every transition. Scheduled advances carry the
	// generation they were issued against and are dropped on mismatch.
	Generation uint64

	// Sequence lists the distinct trait indices asked, in order.
	Sequence []int

	// Position is the 0-based index into Sequence of the current round.
	Position int

	// Score counts correct answers so far.
	Score int

	// Question is the current round's question.
	Question Question

	// Selected is the locked answer for the current round, nil until answered.
	Selected *int

	// Complete is set once the last round has advanced.
	Complete bool

	// Answers holds one entry per answered round.
	Answers []Answer

	StartedAt   time.Time
	CompletedAt time.Time
}

// Round returns the 1-based round number.
func (s Session) Round() int {
	return s.Position + 1
}

// Rounds returns the number of rounds in the session.
func (s Session) Rounds() int {
	return len(s.Sequence)
}

// Answered reports whether the current round's answer is locked.
func (s Session) Answered() bool {
	return s.Selected != nil
}

// IsLastRound reports whether the current round is the final one.
func (s Session) IsLastRound() bool {
	return s.Position >= len(s.Sequence)-1
}

// Duration returns how long the attempt took, or zero while it is running.
func (s Session) Duration() time.Duration {
	if !s.Complete || s.CompletedAt.IsZero() {
		return 0
	}
	return s.CompletedAt.Sub(s.StartedAt)
}

func (s Session) clone() Session {
	s.Sequence = append([]int(nil), s.Sequence...)
	s.Answers = append([]Answer(nil), s.Answers...)
	s.Question = s.Question.clone()
	if s.Selected != nil {
		sel := *s.Selected
		s.Selected = &sel
	}
	return s
}

// Advance describes a scheduled round transition. The presentation layer
// waits Delay and hands it back to Engine.Apply.
type Advance struct {
	Generation uint64
	Delay      time.Duration
}
