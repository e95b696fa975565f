// Package session owns one game from level choice to game over and the
// prompt flow around it
package session

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/1siamBot/cosmowar/engine/ai"
	"github.com/1siamBot/cosmowar/engine/config"
	"github.com/1siamBot/cosmowar/engine/core"
	"github.com/1siamBot/cosmowar/engine/systems"
)

// State is running until the base falls, then over for good
type State uint8

const (
	StateRunning State = iota
	StateOver
)

var ErrSessionOver = errors.New("session is over")

// Session is one game: the world, its tick pipeline and the player's fire command
type Session struct {
	ID    uuid.UUID
	Level config.Level
	World *core.World

	rules  config.Rules
	motion core.Motion
	state  State
}

// New validates the rules and sets up a fresh field for level
func New(level config.Level, rules config.Rules, rng *rand.Rand) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	enemyCap, err := rules.EnemyCap(level)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", config.ErrInvalidRules)
	}

	s := &Session{
		ID:    uuid.New(),
		Level: level,
		World: core.NewWorld(),
		rules: rules,
		motion: core.Motion{
			Speed:           rules.ProjectileSpeed,
			ArrivalDistance: rules.ArrivalDistance,
			GrowthCap:       rules.ExplosionGrowthCap,
		},
	}

	w := s.World
	w.AddStructure(core.NewMissileBase(rules.BaseName, core.Vec{X: rules.BaseX, Y: rules.BaseY},
		rules.BaseHealth, rules.ArmRadius), true)
	for _, b := range rules.Buildings {
		w.AddStructure(core.NewStructure(b.Name, core.Vec{X: b.X, Y: b.Y}, rules.BuildingHealth), false)
	}

	w.AddSystem(&systems.StructureVisualSystem{})
	w.AddSystem(&systems.ImpactSystem{Blast: systems.Blast{
		RangePerUnit: rules.BlastRangePerUnit,
		Damage:       rules.ImpactDamage,
	}})
	w.AddSystem(&systems.Spawner{
		Cap:      enemyCap,
		Area:     systems.SpawnArea{MinX: rules.SpawnMinX, MaxX: rules.SpawnMaxX, Y: rules.SpawnY},
		Motion:   s.motion,
		Targeter: ai.UniformTargeter{},
		Rand:     rng,
	})
	w.AddSystem(&systems.InterceptionSystem{RangePerUnit: rules.BlastRangePerUnit})
	w.AddSystem(&systems.ProjectileSystem{})
	w.AddSystem(&systems.GameOverSystem{})

	w.Emit(core.EvtGameStart, s)
	log.Printf("session %s: started level %s (enemy cap %d)", s.ID, level, enemyCap)
	return s, nil
}

// Tick runs one simulation step and dispatches the events it produced.
// It returns false, without touching anything, once the session is over.
func (s *Session) Tick() bool {
	if s.state == StateOver {
		return false
	}
	s.World.Tick()
	if s.World.Over {
		s.state = StateOver
		log.Printf("session %s: base destroyed on tick %d", s.ID, s.World.TickCount)
	}
	s.World.Events.Dispatch()
	return s.state == StateRunning
}

// FireFriendly launches an interceptor from the base at the clicked point
func (s *Session) FireFriendly(x, y float64) (*core.Projectile, error) {
	if s.state == StateOver {
		return nil, ErrSessionOver
	}
	p, err := systems.FireFriendly(s.World, s.LaunchPoint(), core.Vec{X: x, Y: y}, s.motion)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// LaunchPoint is where friendly missiles leave the base
func (s *Session) LaunchPoint() core.Vec {
	return core.Vec{X: s.rules.BaseX, Y: s.rules.BaseY + s.rules.LaunchOffsetY}
}

func (s *Session) IsOver() bool { return s.state == StateOver }

func (s *Session) State() State { return s.state }

func (s *Session) Base() *core.Structure { return s.World.Base }

func (s *Session) Friendly() []*core.Projectile { return s.World.Friendly }

func (s *Session) Enemy() []*core.Projectile { return s.World.Enemy }

func (s *Session) Structures() []*core.Structure { return s.World.Structures }

func (s *Session) TickCount() uint64 { return s.World.TickCount }

// Rules returns the tuning the session was built with
func (s *Session) Rules() config.Rules { return s.rules }
