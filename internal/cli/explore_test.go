package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/lineq/pkg/line"
)

func typeKeys(m ExploreModel, s string) ExploreModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(ExploreModel)
}

func press(m ExploreModel, k tea.KeyType) (ExploreModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(ExploreModel), cmd
}

func TestExploreSolveY(t *testing.T) {
	m := NewExploreModel(line.New(2, -3))

	m = typeKeys(m, "4")
	m, _ = press(m, tea.KeyEnter)

	if len(m.History) != 1 {
		t.Fatalf("History length = %d, want 1", len(m.History))
	}
	if got := m.History[0]; got.X != 4 || got.Y != 5 {
		t.Errorf("History[0] = %+v, want {X:4 Y:5}", got)
	}
	if m.Input != "" {
		t.Errorf("Input = %q, should be cleared after evaluation", m.Input)
	}
	if !strings.Contains(m.View(), "y = 2.0x - 3.0") {
		t.Error("View should show the equation")
	}
}

func TestExploreSolveX(t *testing.T) {
	m := NewExploreModel(line.New(2, -3))

	m, _ = press(m, tea.KeyTab)
	if m.Mode != SolveX {
		t.Fatalf("Mode = %v, want SolveX", m.Mode)
	}

	m = typeKeys(m, "5")
	m, _ = press(m, tea.KeyEnter)

	if len(m.History) != 1 || m.History[0].X != 4 {
		t.Errorf("History = %+v, want x=4", m.History)
	}
	if !strings.Contains(m.View(), "y = ") {
		t.Error("prompt should ask for y in SolveX mode")
	}
}

func TestExploreZeroSlope(t *testing.T) {
	m := NewExploreModel(line.New(0, 3))

	m, _ = press(m, tea.KeyTab)
	m = typeKeys(m, "3")
	m, _ = press(m, tea.KeyEnter)

	if len(m.History) != 0 {
		t.Errorf("History = %+v, want empty", m.History)
	}
	if m.Err != "slope is 0" {
		t.Errorf("Err = %q, want %q", m.Err, "slope is 0")
	}
	if !strings.Contains(m.View(), "slope is 0") {
		t.Error("View should show the error")
	}

	// Switching modes clears the error.
	m, _ = press(m, tea.KeyTab)
	if m.Err != "" {
		t.Errorf("Err = %q after mode switch, want empty", m.Err)
	}
}

func TestExploreInputEditing(t *testing.T) {
	m := NewExploreModel(line.New(1, 0))

	m = typeKeys(m, "1x2.5")
	if m.Input != "12.5" {
		t.Errorf("Input = %q, non-numeric runes should be ignored", m.Input)
	}

	m, _ = press(m, tea.KeyBackspace)
	if m.Input != "12." {
		t.Errorf("Input = %q after backspace, want %q", m.Input, "12.")
	}

	m = typeKeys(m, "-")
	m, _ = press(m, tea.KeyEnter)
	if m.Err == "" {
		t.Error("malformed number should set Err")
	}
	if m.Input != "12.-" {
		t.Errorf("Input = %q, should be kept on error", m.Input)
	}
}

func TestExploreHistoryLimit(t *testing.T) {
	m := NewExploreModel(line.New(1, 0))

	for i := 0; i < maxHistory+3; i++ {
		m = typeKeys(m, "1")
		m, _ = press(m, tea.KeyEnter)
	}
	if len(m.History) != maxHistory {
		t.Errorf("History length = %d, want %d", len(m.History), maxHistory)
	}
}

func TestExploreQuit(t *testing.T) {
	m := NewExploreModel(line.New(1, 0))

	if _, cmd := press(m, tea.KeyEsc); cmd == nil {
		t.Error("esc should quit")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q on empty input should quit")
	}
	if next.(ExploreModel).Input != "" {
		t.Error("q should not be typed into the input")
	}
}
