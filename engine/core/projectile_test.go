package core

import (
	"errors"
	"math"
	"testing"
)

var testMotion = Motion{Speed: 6, ArrivalDistance: 30, GrowthCap: 5}

func mustProjectile(t *testing.T, side Side, origin, target Vec) *Projectile {
	t.Helper()
	p, err := NewProjectile(side, origin, target, testMotion)
	if err != nil {
		t.Fatalf("NewProjectile: %v", err)
	}
	return p
}

func TestNewProjectileRejectsNonFinite(t *testing.T) {
	bad := []Vec{{math.NaN(), 0}, {0, math.Inf(1)}, {math.Inf(-1), math.NaN()}}
	for _, v := range bad {
		if _, err := NewProjectile(SideEnemy, v, Vec{}, testMotion); !errors.Is(err, ErrNonFinite) {
			t.Errorf("origin %v: expected ErrNonFinite, got %v", v, err)
		}
		if _, err := NewProjectile(SideEnemy, Vec{}, v, testMotion); !errors.Is(err, ErrNonFinite) {
			t.Errorf("target %v: expected ErrNonFinite, got %v", v, err)
		}
	}
}

func TestHeadingFixedAtLaunch(t *testing.T) {
	p := mustProjectile(t, SideFriendly, Vec{0, -270}, Vec{300, 130})
	want := p.Heading
	if math.Abs(want.Len()-1) > 1e-9 {
		t.Fatalf("heading is not a unit vector: %v", want)
	}
	p.Target = Vec{-500, -500} // heading must not follow the target
	for i := 0; i < 10; i++ {
		p.Advance()
		if p.Heading != want {
			t.Fatalf("heading changed on tick %d: %v -> %v", i, want, p.Heading)
		}
	}
}

func TestCoincidentTargetFacesEast(t *testing.T) {
	p := mustProjectile(t, SideFriendly, Vec{5, 5}, Vec{5, 5})
	if p.Heading != (Vec{1, 0}) {
		t.Errorf("expected east heading, got %v", p.Heading)
	}
	if p.Advance() != StateExploding {
		t.Errorf("projectile 6 units from its target should explode")
	}
}

func TestTravelStepAndArrival(t *testing.T) {
	p := mustProjectile(t, SideEnemy, Vec{0, 400}, Vec{0, 0})
	p.Advance()
	if p.Pos != (Vec{0, 394}) {
		t.Fatalf("expected to move 6 units down, at %v", p.Pos)
	}
	for p.State == StateTraveling {
		if p.Radius != 0 {
			t.Fatalf("radius %d while traveling", p.Radius)
		}
		p.Advance()
	}
	if d := p.DistanceTo(p.Target); d >= 30 {
		t.Errorf("exploded %.1f units from target, want < 30", d)
	}
}

func TestSpentExactlySixTicksAfterExploding(t *testing.T) {
	p := mustProjectile(t, SideFriendly, Vec{0, 0}, Vec{0, 20})
	if p.Advance() != StateExploding {
		t.Fatalf("expected explosion on first tick, state %s", p.State)
	}
	prev := p.Radius
	for i := 1; i <= 6; i++ {
		state := p.Advance()
		if p.Radius != prev+1 {
			t.Fatalf("tick %d: radius %d, want %d", i, p.Radius, prev+1)
		}
		prev = p.Radius
		if i < 6 && state != StateExploding {
			t.Fatalf("tick %d: spent too early", i)
		}
		if i == 6 && state != StateSpent {
			t.Fatalf("tick 6: still %s with radius %d", state, p.Radius)
		}
	}
	pos := p.Pos
	if p.Advance() != StateSpent || p.Pos != pos || p.Radius != 6 {
		t.Errorf("advancing a spent projectile must be a no-op")
	}
}

func TestKill(t *testing.T) {
	p := mustProjectile(t, SideEnemy, Vec{0, 400}, Vec{0, 0})
	p.Kill()
	if p.State != StateSpent {
		t.Errorf("expected spent after kill, got %s", p.State)
	}
}

func TestBlastRange(t *testing.T) {
	p := &Projectile{Radius: 3}
	if got := p.BlastRange(10); got != 30 {
		t.Errorf("blast range %.1f, want 30", got)
	}
}
