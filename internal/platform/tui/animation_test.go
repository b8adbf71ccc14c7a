package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

func testOutcome() dots.Outcome {
	return dots.Outcome{
		Cleared: []dots.Pos{dots.P(0, 0), dots.P(0, 1)},
		Filled:  []dots.Pos{dots.P(0, 0), dots.P(0, 1)},
		Delta:   2,
		Color:   0,
	}
}

func TestNewAnimationNothingToShow(t *testing.T) {
	if a := NewAnimation(testCells(), dots.Outcome{Color: dots.Empty}, time.Second); a != nil {
		t.Error("animation created for an outcome that cleared nothing")
	}
	if a := NewAnimation(testCells(), testOutcome(), 0); a != nil {
		t.Error("animation created with zero duration")
	}
}

func TestAnimationPhases(t *testing.T) {
	a := NewAnimation(testCells(), testOutcome(), 200*time.Millisecond)
	if a == nil {
		t.Fatal("NewAnimation returned nil")
	}
	if a.Phase() != PhaseBurst {
		t.Fatalf("phase = %d, want burst", a.Phase())
	}
	if !a.Bursting(dots.P(0, 0)) {
		t.Error("cleared cell not bursting at start")
	}
	if a.Bursting(dots.P(2, 2)) {
		t.Error("untouched cell bursting")
	}

	// Burst lasts half the duration
	if a.Update(0.11) {
		t.Fatal("animation finished during burst")
	}
	if a.Phase() != PhaseDrop {
		t.Fatalf("phase = %d, want drop", a.Phase())
	}
	if !a.Hidden(dots.P(0, 0)) {
		t.Error("refilled top cell visible at start of drop")
	}
	if a.Hidden(dots.P(1, 0)) {
		t.Error("cell that was not refilled is hidden")
	}

	if !a.Update(0.11) {
		t.Fatal("animation not finished after full duration")
	}
	if a.Phase() != PhaseNone {
		t.Errorf("phase = %d, want none", a.Phase())
	}
	if a.Hidden(dots.P(0, 0)) || a.Bursting(dots.P(0, 0)) {
		t.Error("finished animation still affects drawing")
	}
}

func TestNilAnimation(t *testing.T) {
	var a *Animation
	if a.Phase() != PhaseNone {
		t.Error("nil animation has a phase")
	}
	if !a.Update(1) {
		t.Error("nil animation not finished")
	}
	if a.Hidden(dots.P(0, 0)) || a.Bursting(dots.P(0, 0)) {
		t.Error("nil animation affects drawing")
	}
}
