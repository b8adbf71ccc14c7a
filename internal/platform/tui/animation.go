package tui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

// AnimationPhase represents the current phase of a release animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseBurst                // Cleared dots flash on the old board
	PhaseDrop                 // New dots fade in on the settled board
)

// Animation replays an already resolved gesture. It never touches the
// session; it only decides how the board is drawn until it finishes.
type Animation struct {
	phase    AnimationPhase
	tween    *gween.Tween
	progress float32
	phaseDur float32

	before  [][]dots.Color   // Board as it was when the pointer was released
	cleared map[dots.Pos]bool
	filled  map[dots.Pos]bool
	size    int
}

// NewAnimation builds the animation for a release outcome.
// Returns nil when there is nothing to show or animations are disabled.
func NewAnimation(before [][]dots.Color, out dots.Outcome, d time.Duration) *Animation {
	if len(out.Cleared) == 0 || d <= 0 {
		return nil
	}

	a := &Animation{
		before:   before,
		cleared:  make(map[dots.Pos]bool, len(out.Cleared)),
		filled:   make(map[dots.Pos]bool, len(out.Filled)),
		size:     len(before),
		phaseDur: float32(d.Seconds()) / 2,
	}
	for _, p := range out.Cleared {
		a.cleared[p] = true
	}
	for _, p := range out.Filled {
		a.filled[p] = true
	}
	a.start(PhaseBurst)
	return a
}

// start begins a phase with a fresh tween.
func (a *Animation) start(phase AnimationPhase) {
	a.phase = phase
	a.progress = 0
	switch phase {
	case PhaseBurst:
		a.tween = gween.New(0, 1, a.phaseDur, ease.OutQuad)
	case PhaseDrop:
		a.tween = gween.New(0, 1, a.phaseDur, ease.OutBounce)
	}
}

// Update advances the animation by dt seconds.
// Returns true once the animation has finished.
func (a *Animation) Update(dt float32) bool {
	if a == nil || a.phase == PhaseNone {
		return true
	}

	current, finished := a.tween.Update(dt)
	a.progress = current
	if !finished {
		return false
	}

	if a.phase == PhaseBurst {
		a.start(PhaseDrop)
		return false
	}
	a.phase = PhaseNone
	return true
}

// Phase returns the current phase.
func (a *Animation) Phase() AnimationPhase {
	if a == nil {
		return PhaseNone
	}
	return a.phase
}

// Board returns the board to draw during the burst phase.
func (a *Animation) Board() [][]dots.Color {
	return a.before
}

// Bursting returns true if p should be drawn as a burst.
// Bursts blink twice over the phase.
func (a *Animation) Bursting(p dots.Pos) bool {
	if a == nil || a.phase != PhaseBurst || !a.cleared[p] {
		return false
	}
	step := int(a.progress * 4)
	return step%2 == 0
}

// Hidden returns true if p is a refilled cell that has not dropped in yet.
// Lower rows appear first.
func (a *Animation) Hidden(p dots.Pos) bool {
	if a == nil || a.phase != PhaseDrop || !a.filled[p] {
		return false
	}
	shown := int(a.progress * float32(a.size+1))
	return a.size-p.Row > shown
}
