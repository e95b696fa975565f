package core

import (
	"errors"
	"fmt"
)

// Side tells friendly interceptors from enemy missiles
type Side uint8

const (
	SideFriendly Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideFriendly {
		return "friendly"
	}
	return "enemy"
}

// ProjectileState is the lifecycle stage of a projectile
type ProjectileState uint8

const (
	StateTraveling ProjectileState = iota
	StateExploding
	StateSpent
)

func (s ProjectileState) String() string {
	switch s {
	case StateTraveling:
		return "traveling"
	case StateExploding:
		return "exploding"
	default:
		return "spent"
	}
}

var ErrNonFinite = errors.New("non-finite coordinates")

// Motion is the per-projectile tuning, fixed at launch
type Motion struct {
	Speed           float64 // units per tick
	ArrivalDistance float64 // explode when closer than this to the target
	GrowthCap       int     // spent once Radius exceeds this
}

// Projectile represents a missile from launch to despawn
type Projectile struct {
	ID      EntityID
	Side    Side
	Origin  Vec
	Pos     Vec
	Heading Vec // unit vector, never recomputed
	Target  Vec
	State   ProjectileState
	Radius  int // 0 while traveling
	Motion  Motion
}

// NewProjectile creates a traveling projectile aimed from origin at target
func NewProjectile(side Side, origin, target Vec, m Motion) (*Projectile, error) {
	if !origin.IsFinite() || !target.IsFinite() {
		return nil, fmt.Errorf("projectile %v -> %v: %w", origin, target, ErrNonFinite)
	}
	return &Projectile{
		ID:      NewEntityID(),
		Side:    side,
		Origin:  origin,
		Pos:     origin,
		Heading: origin.HeadingTo(target),
		Target:  target,
		State:   StateTraveling,
		Motion:  m,
	}, nil
}

// DistanceTo returns the distance from the projectile's current position to a point
func (p *Projectile) DistanceTo(pt Vec) float64 {
	return p.Pos.DistanceTo(pt)
}

// BlastRange is how far the explosion reaches at the current radius
func (p *Projectile) BlastRange(perUnit float64) float64 {
	return float64(p.Radius) * perUnit
}

// Advance steps the lifecycle by one tick and returns the resulting state
func (p *Projectile) Advance() ProjectileState {
	switch p.State {
	case StateTraveling:
		p.Pos = p.Pos.Add(p.Heading.Scale(p.Motion.Speed))
		if p.DistanceTo(p.Target) < p.Motion.ArrivalDistance {
			p.State = StateExploding
		}
	case StateExploding:
		p.Radius++
		if p.Radius > p.Motion.GrowthCap {
			p.State = StateSpent
		}
	case StateSpent:
		// nothing left to do; pruned by the world
	}
	return p.State
}

// Kill marks the projectile spent immediately (interception)
func (p *Projectile) Kill() {
	p.State = StateSpent
}
