package core

import (
	"math"
	"time"
)

// DefaultTickRate replaces a non-positive rate given to NewGameLoop
const DefaultTickRate = 60.0

// GameState represents the overall loop state
type GameState uint8

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// Simulation is advanced by the loop one tick at a time. Tick returns false
// once the simulation has stopped advancing.
type Simulation interface {
	Tick() bool
}

// GameLoop manages the fixed-timestep game loop for deterministic simulation
type GameLoop struct {
	Sim          Simulation
	State        GameState
	TickRate     float64 // fixed ticks per second
	MaxFrameTime float64 // longer frames are clamped
	accumulator  float64
	lastTime     time.Time
	ticks        uint64
	now          func() time.Time
}

// NewGameLoop creates a game loop with fixed tick rate. A rate that is not a
// positive number falls back to DefaultTickRate.
func NewGameLoop(sim Simulation, tickRate float64) *GameLoop {
	if !validRate(tickRate) {
		tickRate = DefaultTickRate
	}
	return &GameLoop{
		Sim:          sim,
		TickRate:     tickRate,
		MaxFrameTime: 0.25,
		now:          time.Now,
		lastTime:     time.Now(),
	}
}

// Update should be called every render frame. It runs the simulation
// at fixed timestep and returns the interpolation alpha for rendering.
func (gl *GameLoop) Update() float64 {
	now := gl.now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance feeds frameTime seconds into the accumulator and runs as many
// whole ticks as fit. It never reads the clock.
func (gl *GameLoop) Advance(frameTime float64) float64 {
	// Cap frame time to avoid spiral of death
	if frameTime > gl.MaxFrameTime {
		frameTime = gl.MaxFrameTime
	}
	if frameTime < 0 {
		frameTime = 0
	}

	if !validRate(gl.TickRate) {
		return 0
	}
	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StatePlaying {
			gl.ticks++
			if !gl.Sim.Tick() {
				gl.State = StateGameOver
			}
		}
		gl.accumulator -= dt
	}

	return gl.accumulator / dt
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = gl.now()
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// CurrentTick returns the number of ticks the loop has run
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.ticks
}

func validRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0)
}
