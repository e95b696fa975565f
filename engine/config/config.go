// Package config holds the fixed tuning of the game: field geometry, projectile and
// damage constants, the level table and the rules a session is built from
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Title is shown on the prompt screens and the window caption
const Title = "CosmoWar"

// Field geometry. Coordinates are centered on the field with y pointing up.
const (
	FieldWidth  = 1200
	FieldHeight = 800

	BaseX = 0.0
	BaseY = -300.0

	// friendly missiles leave the base slightly above its center
	LaunchOffsetY = 30.0

	SpawnY    = 400.0
	SpawnMinX = -600
	SpawnMaxX = 600
)

// Projectile behavior
const (
	ProjectileSpeed    = 6.0  // units per tick
	ArrivalDistance    = 30.0 // explode when closer than this to the target
	ExplosionGrowthCap = 5    // spent once radius exceeds this
	BlastRangePerUnit  = 10.0 // blast reach = radius * BlastRangePerUnit
)

// Structures and damage
const (
	BaseName       = "base"
	BaseHealth     = 2000
	BuildingHealth = 1000
	ImpactDamage   = 100
	ArmRadius      = 50.0 // base hatch opens while a friendly missile is this close
)

// Pacing
const (
	TickRate     = 60.0 // simulation ticks per second
	MaxFrameTime = 0.25 // seconds; longer frames are clamped
)

// Level is a difficulty token as typed at the level prompt
type Level string

const (
	LevelEasy   Level = "1"
	LevelMedium Level = "2"
	LevelHard   Level = "3"
)

// EnemyCaps maps a level to the maximum number of enemy missiles in flight
var EnemyCaps = map[Level]int{
	LevelEasy:   2,
	LevelMedium: 3,
	LevelHard:   5,
}

// AffirmativeAnswers are accepted at the replay prompt
var AffirmativeAnswers = []string{"д", "да", "y", "yes"}

var (
	ErrInvalidRules = errors.New("invalid rules")
	ErrUnknownLevel = errors.New("unknown level")
)

// BuildingSpec places one ordinary building on the field
type BuildingSpec struct {
	Name string
	X, Y float64
}

// Buildings are the defended structures besides the base, left to right
var Buildings = []BuildingSpec{
	{Name: "house", X: BaseX - 400, Y: BaseY},
	{Name: "kremlin", X: BaseX - 200, Y: BaseY},
	{Name: "nuclear", X: BaseX + 200, Y: BaseY},
	{Name: "skyscraper", X: BaseX + 400, Y: BaseY},
}

// Rules bundles everything a session needs to know about the game's tuning
type Rules struct {
	EnemyCaps map[Level]int

	BaseName       string
	BaseX, BaseY   float64
	LaunchOffsetY  float64
	BaseHealth     int
	BuildingHealth int
	Buildings      []BuildingSpec

	SpawnY               float64
	SpawnMinX, SpawnMaxX int

	ProjectileSpeed    float64
	ArrivalDistance    float64
	ExplosionGrowthCap int
	BlastRangePerUnit  float64
	ImpactDamage       int
	ArmRadius          float64
}

// DefaultRules returns the stock game tuning
func DefaultRules() Rules {
	caps := make(map[Level]int, len(EnemyCaps))
	for l, c := range EnemyCaps {
		caps[l] = c
	}
	buildings := make([]BuildingSpec, len(Buildings))
	copy(buildings, Buildings)

	return Rules{
		EnemyCaps:          caps,
		BaseName:           BaseName,
		BaseX:              BaseX,
		BaseY:              BaseY,
		LaunchOffsetY:      LaunchOffsetY,
		BaseHealth:         BaseHealth,
		BuildingHealth:     BuildingHealth,
		Buildings:          buildings,
		SpawnY:             SpawnY,
		SpawnMinX:          SpawnMinX,
		SpawnMaxX:          SpawnMaxX,
		ProjectileSpeed:    ProjectileSpeed,
		ArrivalDistance:    ArrivalDistance,
		ExplosionGrowthCap: ExplosionGrowthCap,
		BlastRangePerUnit:  BlastRangePerUnit,
		ImpactDamage:       ImpactDamage,
		ArmRadius:          ArmRadius,
	}
}

// Validate checks the rules once, before any session is built from them
func (r Rules) Validate() error {
	if len(r.EnemyCaps) == 0 {
		return fmt.Errorf("%w: no level caps", ErrInvalidRules)
	}
	for l, c := range r.EnemyCaps {
		if c < 0 {
			return fmt.Errorf("%w: negative cap %d for level %q", ErrInvalidRules, c, l)
		}
	}
	if r.BaseHealth <= 0 || r.BuildingHealth <= 0 {
		return fmt.Errorf("%w: starting health must be positive", ErrInvalidRules)
	}
	if r.SpawnMinX > r.SpawnMaxX {
		return fmt.Errorf("%w: spawn span [%d, %d] is empty", ErrInvalidRules, r.SpawnMinX, r.SpawnMaxX)
	}
	if r.ProjectileSpeed <= 0 || r.ExplosionGrowthCap < 0 {
		return fmt.Errorf("%w: projectile speed and growth cap", ErrInvalidRules)
	}
	coords := []float64{r.BaseX, r.BaseY, r.LaunchOffsetY, r.SpawnY, r.ProjectileSpeed,
		r.ArrivalDistance, r.BlastRangePerUnit, r.ArmRadius}
	for _, b := range r.Buildings {
		coords = append(coords, b.X, b.Y)
	}
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite geometry", ErrInvalidRules)
		}
	}
	return nil
}

// EnemyCap returns the in-flight enemy limit for a level
func (r Rules) EnemyCap(l Level) (int, error) {
	c, ok := r.EnemyCaps[l]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, string(l))
	}
	return c, nil
}

// ParseLevel normalizes a prompt answer. Anything outside the level table
// means "do not start".
func ParseLevel(token string) (Level, bool) {
	l := Level(strings.ToLower(strings.TrimSpace(token)))
	_, ok := EnemyCaps[l]
	return l, ok
}

// IsAffirmative reports whether a replay prompt answer means "play again"
func IsAffirmative(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	for _, a := range AffirmativeAnswers {
		if t == a {
			return true
		}
	}
	return false
}
