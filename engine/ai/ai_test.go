package ai

import (
	"math/rand"
	"testing"

	"github.com/1siamBot/cosmowar/engine/core"
)

func TestUniformTargeterEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if s, ok := (UniformTargeter{}).Pick(rng, nil); ok || s != nil {
		t.Errorf("picked %v from no candidates", s)
	}
}

func TestUniformTargeterCoversAllCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	candidates := []*core.Structure{
		core.NewStructure("a", core.Vec{}, 1000),
		core.NewStructure("b", core.Vec{}, 1000),
		core.NewStructure("c", core.Vec{}, 1000),
	}
	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		s, ok := (UniformTargeter{}).Pick(rng, candidates)
		if !ok {
			t.Fatalf("no pick from %d candidates", len(candidates))
		}
		seen[s.Name]++
	}
	for _, c := range candidates {
		if seen[c.Name] == 0 {
			t.Errorf("candidate %s never picked: %v", c.Name, seen)
		}
	}
}

func TestThreatAssessment(t *testing.T) {
	enemy := []*core.Projectile{
		{Pos: core.Vec{X: 0, Y: 50}},
		{Pos: core.Vec{X: 0, Y: 500}},
		{Pos: core.Vec{X: 0, Y: 10}, State: core.StateSpent},
	}
	got := ThreatAssessment(enemy, core.Vec{}, 100)
	if got != 0.5 {
		t.Errorf("threat %.2f, want 0.50", got)
	}
}

func TestMostThreatened(t *testing.T) {
	w := core.NewWorld()
	left := core.NewStructure("left", core.Vec{X: -200}, 1000)
	right := core.NewStructure("right", core.Vec{X: 200}, 1000)
	w.AddStructure(left, false)
	w.AddStructure(right, false)
	w.Enemy = []*core.Projectile{{Pos: core.Vec{X: 190, Y: 20}}}

	s, threat := MostThreatened(w, 100)
	if s != right || threat <= 0 {
		t.Errorf("most threatened %v (%.2f), want right", s, threat)
	}

	w.Enemy = nil
	if s, _ := MostThreatened(w, 100); s != nil {
		t.Errorf("nothing should be threatened, got %s", s.Name)
	}
}
