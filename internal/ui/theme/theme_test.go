package theme

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func TestTypography(t *testing.T) {
	if !Title.GetBold() || Title.GetAlign() != lipgloss.Center {
		t.Error("Title should be bold and centered")
	}
	if Subtitle.GetAlign() != lipgloss.Center {
		t.Error("Subtitle should be centered")
	}
	if !Hint.GetItalic() {
		t.Error("Hint should be italic")
	}
	if !Correct.GetBold() || !Incorrect.GetBold() {
		t.Error("answer feedback styles should be bold")
	}
}
