package quiz

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/universalhex/traitquiz/internal/router"
	"github.com/universalhex/traitquiz/internal/screens/result"
	sess "github.com/universalhex/traitquiz/internal/session"
	"github.com/universalhex/traitquiz/internal/traits"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuizScreen(seed int64) *QuizScreen {
	engine := sess.NewEngine(sess.Config{
		Seed:          seed,
		FeedbackDelay: time.Millisecond,
	}, nil)
	return New(engine, "https://universalhex.org")
}

// correctKey returns the number key for the current question's correct option.
func correctKey(s *QuizScreen) rune {
	for i, idx := range s.state.Question.Options {
		if idx == s.state.Question.CorrectIndex {
			return rune('1' + i)
		}
	}
	return '0'
}

func wrongKey(s *QuizScreen) rune {
	for i, idx := range s.state.Question.Options {
		if idx != s.state.Question.CorrectIndex {
			return rune('1' + i)
		}
	}
	return '0'
}

// answer presses k and returns the scheduled advance message.
func answer(t *testing.T, s *QuizScreen, k rune) advanceMsg {
	t.Helper()
	_, cmd := s.Update(keyPress(k))
	if cmd == nil {
		t.Fatalf("expected a tick command after answering with %q", k)
	}
	msg, ok := cmd().(advanceMsg)
	if !ok {
		t.Fatalf("expected advanceMsg from tick")
	}
	return msg
}

func TestQuizScreen_Title(t *testing.T) {
	s := testQuizScreen(1)
	if s.Title() != "Question 1 / 10" {
		t.Errorf("Title = %q, want %q", s.Title(), "Question 1 / 10")
	}
	if s.Status() != "Score 0" {
		t.Errorf("Status = %q, want %q", s.Status(), "Score 0")
	}
}

func TestQuizScreen_ViewShowsQuestion(t *testing.T) {
	s := testQuizScreen(2)
	view := s.View(100, 40)

	q := s.state.Question
	if !strings.Contains(view, traits.IconFile(q.IconID)) {
		t.Errorf("view missing icon asset %q", traits.IconFile(q.IconID))
	}
	for _, idx := range q.Options {
		if !strings.Contains(view, traits.Label(idx)) {
			t.Errorf("view missing option %q", traits.Label(idx))
		}
	}
}

func TestQuizScreen_CorrectAnswer(t *testing.T) {
	s := testQuizScreen(3)
	msg := answer(t, s, correctKey(s))

	if s.state.Score != 1 {
		t.Errorf("Score = %d, want 1", s.state.Score)
	}
	if !s.choice.Locked {
		t.Error("choice should be locked after answering")
	}
	if !strings.Contains(s.View(100, 40), "Correct!") {
		t.Error("expected correct feedback in view")
	}

	s.Update(msg)
	if s.state.Round() != 2 {
		t.Errorf("Round = %d after advance, want 2", s.state.Round())
	}
	if s.choice.Locked {
		t.Error("choice should unlock on the next round")
	}
}

func TestQuizScreen_WrongAnswer(t *testing.T) {
	s := testQuizScreen(4)
	answer(t, s, wrongKey(s))

	if s.state.Score != 0 {
		t.Errorf("Score = %d, want 0", s.state.Score)
	}
	if !strings.Contains(s.View(100, 40), "Not quite") {
		t.Error("expected wrong-answer feedback in view")
	}
}

func TestQuizScreen_DoubleAnswerIgnored(t *testing.T) {
	s := testQuizScreen(5)
	answer(t, s, correctKey(s))

	_, cmd := s.Update(keyPress(wrongKey(s)))
	if cmd != nil {
		t.Error("second answer in the same round should not schedule anything")
	}
	if s.state.Score != 1 {
		t.Errorf("Score = %d, want 1", s.state.Score)
	}
}

func TestQuizScreen_RestartDropsPendingAdvance(t *testing.T) {
	s := testQuizScreen(6)
	msg := answer(t, s, correctKey(s))
	oldID := s.state.ID

	s.Update(keyPress('r'))
	if s.state.ID == oldID {
		t.Fatal("restart should start a new session")
	}

	s.Update(msg)
	if s.state.Round() != 1 || s.state.Score != 0 || s.state.Answered() {
		t.Errorf("stale advance changed the new session: round=%d score=%d answered=%v",
			s.state.Round(), s.state.Score, s.state.Answered())
	}
}

func TestQuizScreen_FullRunShowsResult(t *testing.T) {
	s := testQuizScreen(7)

	var cmd tea.Cmd
	for round := 0; round < sess.DefaultRounds; round++ {
		msg := answer(t, s, correctKey(s))
		_, cmd = s.Update(msg)
	}

	if !s.state.Complete {
		t.Fatal("session should be complete after ten rounds")
	}
	if s.state.Score != 10 {
		t.Errorf("Score = %d, want 10", s.state.Score)
	}
	if cmd == nil {
		t.Fatal("expected navigation to the result screen")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	rs, ok := replace.Screen.(*result.ResultScreen)
	if !ok {
		t.Fatalf("expected *result.ResultScreen, got %T", replace.Screen)
	}
	if !strings.Contains(rs.View(100, 40), "Meta-Modeller") {
		t.Error("result should show the top ranking")
	}

	// Keys after completion do nothing.
	if _, cmd := s.Update(keyPress('1')); cmd != nil {
		t.Error("completed quiz should ignore answers")
	}
}

func TestQuizScreen_ArrowsAndEnter(t *testing.T) {
	s := testQuizScreen(8)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should submit the highlighted option")
	}
	if s.state.Selected == nil || *s.state.Selected != s.state.Question.Options[2] {
		t.Error("enter should lock the third option")
	}
}
