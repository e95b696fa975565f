package audio

import (
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/1siamBot/cosmowar/engine/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundID identifies a sound effect
type SoundID string

const (
	SndLaunch    SoundID = "launch"
	SndExplosion SoundID = "explosion"
	SndImpact    SoundID = "impact"
	SndGameOver  SoundID = "gameover"
)

// AudioManager plays synthesized effects for simulation events
type AudioManager struct {
	MasterVolume float64
	SFXVolume    float64
	ListenerX    float64
	ListenerY    float64
	MaxDistance  float64 // effects farther than this from the listener are silent

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewAudioManager() *AudioManager {
	return &AudioManager{
		MasterVolume: 1.0,
		SFXVolume:    0.8,
		MaxDistance:  1400,
		mixer:        &beep.Mixer{},
	}
}

// Init opens the speaker. A missing audio device is not fatal: the manager
// stays silent and every Play call is a no-op.
func (am *AudioManager) Init() error {
	am.mu.Lock()
	defer am.mu.Unlock()
	if am.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(am.mixer)
	am.initialized = true
	return nil
}

// Close stops playback
func (am *AudioManager) Close() {
	am.mu.Lock()
	defer am.mu.Unlock()
	if !am.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	am.initialized = false
}

// SetListener places the ear, normally at the missile base
func (am *AudioManager) SetListener(x, y float64) {
	am.ListenerX = x
	am.ListenerY = y
}

// Listen subscribes the manager to the events of one session
func (am *AudioManager) Listen(bus *core.EventBus) {
	bus.On(core.EvtProjectileFired, func(e core.Event) {
		p := e.Payload.(*core.Projectile)
		if p.Side == core.SideFriendly {
			am.PlaySFX(SndLaunch, p.Pos.X, p.Pos.Y)
		}
	})
	bus.On(core.EvtProjectileExploded, func(e core.Event) {
		p := e.Payload.(*core.Projectile)
		am.PlaySFX(SndExplosion, p.Pos.X, p.Pos.Y)
	})
	bus.On(core.EvtStructureHit, func(e core.Event) {
		h := e.Payload.(core.Hit)
		am.PlaySFX(SndImpact, h.Structure.Pos.X, h.Structure.Pos.Y)
	})
	bus.On(core.EvtGameEnd, func(e core.Event) {
		am.PlaySFX(SndGameOver, am.ListenerX, am.ListenerY)
	})
}

// PlaySFX plays a sound effect at a field position
func (am *AudioManager) PlaySFX(id SoundID, worldX, worldY float64) {
	am.mu.Lock()
	defer am.mu.Unlock()
	if !am.initialized {
		return
	}
	vol := am.calcVolume(worldX, worldY)
	if vol <= 0 {
		return
	}
	s, err := synth(id)
	if err != nil {
		log.Printf("audio: %s: %v", id, err)
		return
	}
	speaker.Lock()
	am.mixer.Add(&effects.Gain{Streamer: s, Gain: vol - 1})
	speaker.Unlock()
}

// calcVolume computes volume based on distance from the listener
func (am *AudioManager) calcVolume(wx, wy float64) float64 {
	dx := wx - am.ListenerX
	dy := wy - am.ListenerY
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= am.MaxDistance {
		return 0
	}
	return (1.0 - 0.5*dist/am.MaxDistance) * am.SFXVolume * am.MasterVolume
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.MasterVolume = v
}

func synth(id SoundID) (beep.Streamer, error) {
	switch id {
	case SndLaunch:
		tone, err := generators.SineTone(sampleRate, 660)
		if err != nil {
			return nil, err
		}
		return beep.Take(sampleRate.N(60*time.Millisecond), tone), nil
	case SndImpact:
		tone, err := generators.SineTone(sampleRate, 90)
		if err != nil {
			return nil, err
		}
		return beep.Take(sampleRate.N(120*time.Millisecond), tone), nil
	case SndGameOver:
		tone, err := generators.SineTone(sampleRate, 55)
		if err != nil {
			return nil, err
		}
		return beep.Take(sampleRate.N(time.Second), tone), nil
	default:
		return beep.Take(sampleRate.N(250*time.Millisecond), NewBlastGenerator(sampleRate)), nil
	}
}

// BlastGenerator is decaying white noise, the explosion sound
type BlastGenerator struct {
	sr    beep.SampleRate
	pos   int
	decay float64 // seconds to fall to ~37%
	rng   *rand.Rand
}

// NewBlastGenerator creates an explosion noise generator
func NewBlastGenerator(sr beep.SampleRate) *BlastGenerator {
	return &BlastGenerator{sr: sr, decay: 0.08, rng: rand.New(rand.NewSource(1))}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := (g.rng.Float64()*2 - 1) * 0.3 * math.Exp(-t/g.decay)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}
