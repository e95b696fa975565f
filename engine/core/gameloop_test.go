package core

import (
	"math"
	"testing"
)

type countingSim struct {
	ticks  int
	stopAt int
}

func (s *countingSim) Tick() bool {
	s.ticks++
	return s.stopAt == 0 || s.ticks < s.stopAt
}

func TestAdvanceRunsWholeTicks(t *testing.T) {
	sim := &countingSim{}
	gl := NewGameLoop(sim, 4) // dt = 0.25
	gl.Play()

	for i := 0; i < 8; i++ {
		gl.Advance(0.125)
	}
	if sim.ticks != 4 {
		t.Errorf("ran %d ticks, want 4", sim.ticks)
	}
	if gl.CurrentTick() != 4 {
		t.Errorf("loop counted %d ticks", gl.CurrentTick())
	}
}

func TestAdvanceClampsLongFrames(t *testing.T) {
	sim := &countingSim{}
	gl := NewGameLoop(sim, 4)
	gl.Play()
	gl.Advance(10)
	if sim.ticks != 1 {
		t.Errorf("long frame ran %d ticks, want 1", sim.ticks)
	}
}

func TestPausedLoopDoesNotTick(t *testing.T) {
	sim := &countingSim{}
	gl := NewGameLoop(sim, 4)
	gl.Play()
	gl.Pause()
	gl.Advance(0.25)
	if sim.ticks != 0 {
		t.Errorf("paused loop ran %d ticks", sim.ticks)
	}
}

func TestLoopStopsAfterGameOver(t *testing.T) {
	sim := &countingSim{stopAt: 2}
	gl := NewGameLoop(sim, 4)
	gl.Play()
	for i := 0; i < 10; i++ {
		gl.Advance(0.25)
	}
	if sim.ticks != 2 {
		t.Errorf("ran %d ticks, want 2", sim.ticks)
	}
	if gl.State != StateGameOver {
		t.Errorf("state %d, want game over", gl.State)
	}
}

func TestNonPositiveTickRateFallsBack(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		sim := &countingSim{}
		gl := NewGameLoop(sim, rate)
		if gl.TickRate != DefaultTickRate {
			t.Errorf("rate %v: loop runs at %v, want %v", rate, gl.TickRate, DefaultTickRate)
		}
		gl.Play()
		gl.Advance(0.1)
		if sim.ticks > 6 {
			t.Errorf("rate %v: 0.1s ran %d ticks", rate, sim.ticks)
		}
	}
}

func TestAdvanceIgnoresBrokenRate(t *testing.T) {
	sim := &countingSim{}
	gl := NewGameLoop(sim, 4)
	gl.Play()
	for _, rate := range []float64{0, -4} {
		gl.TickRate = rate
		gl.Advance(0.25)
		if sim.ticks != 0 {
			t.Fatalf("rate %v ran %d ticks", rate, sim.ticks)
		}
	}
}
