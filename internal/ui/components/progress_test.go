package components

import (
	"strings"
	"testing"
)

func TestRoundProgress_Done(t *testing.T) {
	p := NewRoundProgress([]RoundResult{RoundRight, RoundWrong, RoundCurrent, RoundPending}, 40)
	if p.Done() != 2 {
		t.Errorf("Done() = %d, want 2", p.Done())
	}
	if !strings.Contains(p.View(), "2/4") {
		t.Errorf("view missing counter: %q", p.View())
	}
}

func TestRoundProgress_Empty(t *testing.T) {
	if v := NewRoundProgress(nil, 40).View(); v != "" {
		t.Errorf("empty progress view = %q, want empty", v)
	}
}
