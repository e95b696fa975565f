// Package ai picks what enemy missiles aim at
package ai

import (
	"math/rand"

	"github.com/1siamBot/cosmowar/engine/core"
)

// Targeter chooses a target among candidate structures
type Targeter interface {
	Pick(rng *rand.Rand, candidates []*core.Structure) (*core.Structure, bool)
}

// UniformTargeter picks any candidate with equal probability
type UniformTargeter struct{}

func (UniformTargeter) Pick(rng *rand.Rand, candidates []*core.Structure) (*core.Structure, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// ThreatAssessment sums how close enemy missiles are to a point, weighted by
// proximity within radius. Used by the HUD to flag the most threatened structure.
func ThreatAssessment(enemy []*core.Projectile, at core.Vec, radius float64) float64 {
	threat := 0.0
	for _, p := range enemy {
		if p.State == core.StateSpent {
			continue
		}
		d := p.DistanceTo(at)
		if d <= radius {
			threat += 1.0 - d/radius
		}
	}
	return threat
}

// MostThreatened returns the alive structure with the highest threat, if any is threatened
func MostThreatened(w *core.World, radius float64) (*core.Structure, float64) {
	var best *core.Structure
	bestThreat := 0.0
	for _, s := range w.AliveStructures() {
		if t := ThreatAssessment(w.Enemy, s.Pos, radius); t > bestThreat {
			best, bestThreat = s, t
		}
	}
	return best, bestThreat
}
