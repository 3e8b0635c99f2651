package session

import (
	"time"

	"github.com/universalhex/traitquiz/internal/ranking"
)

// Summary holds the data displayed on the result screen.
type Summary struct {
	SessionID string
	Score     int
	Total     int
	Accuracy  float64
	Ranking   string
	Duration  time.Duration
	Answers   []Answer
}

// BuildSummary creates a Summary from a session.
func BuildSummary(s Session) *Summary {
	total := s.Rounds()

	var accuracy float64
	if total > 0 {
		accuracy = float64(s.Score) / float64(total)
	}

	return &Summary{
		SessionID: s.ID,
		Score:     s.Score,
		Total:     total,
		Accuracy:  accuracy,
		Ranking:   ranking.ForScore(s.Score, total),
		Duration:  s.Duration(),
		Answers:   append([]Answer(nil), s.Answers...),
	}
}
