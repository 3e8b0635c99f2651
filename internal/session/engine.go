package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/universalhex/traitquiz/internal/ranking"
	"github.com/universalhex/traitquiz/internal/traits"
)

// Engine owns the quiz state machine. It is driven from a single goroutine
// (the UI update loop) and is not safe for concurrent use.
type Engine struct {
	rng    *rand.Rand
	logger *zap.Logger
	now    func() time.Time

	rounds int
	delay  time.Duration

	generation uint64
	current    Session
}

// NewEngine creates an Engine and starts its first session.
// A nil logger disables logging.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		now:    time.Now,
		rounds: cfg.rounds(),
		delay:  cfg.feedbackDelay(),
	}
	e.Start()
	return e
}

// Session returns a copy of the current session.
func (e *Engine) Session() Session {
	return e.current.clone()
}

// FeedbackDelay returns the pause applied between an answer and the next round.
func (e *Engine) FeedbackDelay() time.Duration {
	return e.delay
}

// Start discards the current session and begins a new one. The sequence is
// the head of a full shuffle of the catalog, so no trait repeats.
func (e *Engine) Start() Session {
	perm := e.rng.Perm(traits.Count)
	seq := append([]int(nil), perm[:e.rounds]...)

	e.generation++
	e.current = Session{
		ID:         uuid.New().String(),
		Generation: e.generation,
		Sequence:   seq,
		Question:   e.BuildQuestion(seq[0]),
		StartedAt:  e.now(),
	}

	e.logger.Info("session started",
		zap.String("session_id", e.current.ID),
		zap.Uint64("generation", e.current.Generation),
		zap.Ints("sequence", seq),
	)
	return e.Session()
}

// Restart replaces the current session with a fresh one. Advances issued
// against the old session are invalidated.
func (e *Engine) Restart() Session {
	e.logger.Info("session restarted",
		zap.String("session_id", e.current.ID),
		zap.Int("round", e.current.Round()),
		zap.Int("score", e.current.Score),
	)
	return e.Start()
}

// BuildQuestion creates a question for the trait at correct. Distractors are
// drawn uniformly from the catalog, redrawing duplicates, and the options are
// shuffled.
func (e *Engine) BuildQuestion(correct int) Question {
	options := make([]int, 0, OptionCount)
	options = append(options, correct)
	seen := map[int]bool{correct: true}

	for len(options) < OptionCount {
		i := e.rng.Intn(traits.Count)
		if seen[i] {
			continue
		}
		seen[i] = true
		options = append(options, i)
	}

	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		IconID:       traits.IconID(correct),
		CorrectIndex: correct,
		Options:      options,
	}
}

// Submit locks chosen as the answer for the current round and scores it.
// Any index is accepted; one that is not the correct trait counts as wrong.
// It returns false without changing state if the round is already answered
// or the session is complete. On success the returned Advance must be handed
// to Apply after its Delay.
func (e *Engine) Submit(chosen int) (Advance, bool) {
	if e.current.Complete || e.current.Selected != nil {
		e.logger.Debug("answer ignored",
			zap.String("session_id", e.current.ID),
			zap.Int("chosen", chosen),
		)
		return Advance{}, false
	}

	next := e.current.clone()
	next.Selected = &chosen
	correct := next.Question.IsCorrect(chosen)
	if correct {
		next.Score++
	}
	next.Answers = append(next.Answers, Answer{
		Round:        next.Round(),
		CorrectIndex: next.Question.CorrectIndex,
		Chosen:       chosen,
	})
	e.current = next

	e.logger.Info("answer submitted",
		zap.String("session_id", next.ID),
		zap.Int("round", next.Round()),
		zap.Int("correct_index", next.Question.CorrectIndex),
		zap.Int("chosen", chosen),
		zap.Bool("offered", next.Question.Contains(chosen)),
		zap.Bool("correct", correct),
		zap.Int("score", next.Score),
	)

	return Advance{Generation: next.Generation, Delay: e.delay}, true
}

// Apply performs a scheduled advance. It returns false when the advance is
// stale: the session restarted, the advance was already applied, or no
// answer is pending. Otherwise the last round completes the session and any
// other round moves on to a fresh question.
func (e *Engine) Apply(a Advance) bool {
	cur := e.current
	if a.Generation != cur.Generation || cur.Selected == nil || cur.Complete {
		e.logger.Debug("stale advance dropped",
			zap.String("session_id", cur.ID),
			zap.Uint64("advance_generation", a.Generation),
			zap.Uint64("generation", cur.Generation),
		)
		return false
	}

	next := cur.clone()
	e.generation++
	next.Generation = e.generation

	if next.IsLastRound() {
		next.Complete = true
		next.CompletedAt = e.now()
		e.current = next
		e.logger.Info("session complete",
			zap.String("session_id", next.ID),
			zap.Int("score", next.Score),
			zap.Int("rounds", next.Rounds()),
			zap.String("ranking", ranking.ForScore(next.Score, next.Rounds())),
		)
		return true
	}

	next.Position++
	next.Question = e.BuildQuestion(next.Sequence[next.Position])
	next.Selected = nil
	e.current = next

	e.logger.Debug("round advanced",
		zap.String("session_id", next.ID),
		zap.Int("round", next.Round()),
	)
	return true
}

// Ranking returns the ranking label for the current score.
func (e *Engine) Ranking() string {
	return ranking.ForScore(e.current.Score, e.current.Rounds())
}
