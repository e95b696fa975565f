package core

import "fmt"

// Tier is the damage bucket a structure is drawn with
type Tier uint8

const (
	TierIntact   Tier = 1 // health >= 80%
	TierDamaged  Tier = 2 // 20% <= health < 80%
	TierCritical Tier = 3 // health < 20%
)

// Appearance derives the sprite key for a structure. Ordinary buildings and
// the missile base differ only here.
type Appearance interface {
	Sprite(s *Structure, friendly []*Projectile) string
}

// TierAppearance shows the damage tier: "<name>_<tier>"
type TierAppearance struct{}

func (TierAppearance) Sprite(s *Structure, _ []*Projectile) string {
	return fmt.Sprintf("%s_%d", s.Name, s.CurrentTier())
}

// HatchAppearance shows the base open while a friendly missile is close
type HatchAppearance struct {
	Radius float64
}

func (a HatchAppearance) Sprite(s *Structure, friendly []*Projectile) string {
	for _, p := range friendly {
		if p.DistanceTo(s.Pos) < a.Radius {
			return s.Name + "_opened"
		}
	}
	return s.Name
}

// Structure is a stationary defended object
type Structure struct {
	ID         EntityID
	Name       string
	Pos        Vec
	Health     Health
	Appearance Appearance

	renderedSprite string
	renderedHealth int
}

// Refresh reports what RefreshVisual found changed
type Refresh struct {
	Sprite        string
	Health        int
	SpriteChanged bool
	LabelChanged  bool
}

// Changed is true when anything needs redrawing
func (r Refresh) Changed() bool { return r.SpriteChanged || r.LabelChanged }

// NewStructure creates an ordinary building drawn by damage tier
func NewStructure(name string, pos Vec, maxHealth int) *Structure {
	return newStructure(name, pos, maxHealth, TierAppearance{})
}

// NewMissileBase creates the player's base, drawn open or closed
func NewMissileBase(name string, pos Vec, maxHealth int, armRadius float64) *Structure {
	return newStructure(name, pos, maxHealth, HatchAppearance{Radius: armRadius})
}

func newStructure(name string, pos Vec, maxHealth int, a Appearance) *Structure {
	s := &Structure{
		ID:         NewEntityID(),
		Name:       name,
		Pos:        pos,
		Health:     Health{Current: maxHealth, Max: maxHealth},
		Appearance: a,
	}
	s.renderedSprite = a.Sprite(s, nil)
	s.renderedHealth = maxHealth
	return s
}

// Damage subtracts amount from health. There is no floor.
func (s *Structure) Damage(amount int) {
	s.Health.Current -= amount
}

// IsAlive is true while health >= 0, so zero health still counts as alive
func (s *Structure) IsAlive() bool {
	return s.Health.Current >= 0
}

// CurrentTier buckets the health ratio. Integer math keeps the 80% and 20%
// boundaries exact.
func (s *Structure) CurrentTier() Tier {
	h, m := s.Health.Current, s.Health.Max
	switch {
	case h*5 < m:
		return TierCritical
	case h*5 < m*4:
		return TierDamaged
	default:
		return TierIntact
	}
}

// RefreshVisual recomputes the sprite and compares sprite and health against
// the last rendered values, recording the new ones
func (s *Structure) RefreshVisual(friendly []*Projectile) Refresh {
	sprite := s.Appearance.Sprite(s, friendly)
	r := Refresh{
		Sprite:        sprite,
		Health:        s.Health.Current,
		SpriteChanged: sprite != s.renderedSprite,
		LabelChanged:  s.Health.Current != s.renderedHealth,
	}
	s.renderedSprite = sprite
	s.renderedHealth = s.Health.Current
	return r
}

// Rendered returns the sprite and health last handed to the renderer
func (s *Structure) Rendered() (sprite string, health int) {
	return s.renderedSprite, s.renderedHealth
}
