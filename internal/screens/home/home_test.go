package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/universalhex/traitquiz/internal/router"
	"github.com/universalhex/traitquiz/internal/screens/catalog"
	"github.com/universalhex/traitquiz/internal/screens/quiz"
	"github.com/universalhex/traitquiz/internal/session"
)

func testHome() *HomeScreen {
	return New(session.NewEngine(session.Config{Seed: 1}, nil), "")
}

func TestHome_View(t *testing.T) {
	view := testHome().View(100, 30)
	for _, want := range []string{"START QUIZ", "TRAIT CATALOG", "EXIT", "32 TRAITS", "10 ROUNDS"} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestHome_StartQuiz(t *testing.T) {
	h := testHome()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*quiz.QuizScreen); !ok {
		t.Errorf("expected quiz screen, got %T", push.Screen)
	}
}

func TestHome_Catalog(t *testing.T) {
	h := testHome()
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*catalog.CatalogScreen); !ok {
		t.Errorf("expected catalog screen, got %T", push.Screen)
	}
}
