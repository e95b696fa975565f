package systems

import (
	"github.com/1siamBot/cosmowar/engine/core"
)

// Blast describes how far an explosion reaches and what an impact costs
type Blast struct {
	RangePerUnit float64 // reach = radius * RangePerUnit
	Damage       int     // per structure, per tick in reach
}

// ImpactSystem damages structures caught in exploding enemy missiles
type ImpactSystem struct {
	Blast Blast
}

func (s *ImpactSystem) Priority() int { return 20 }

func (s *ImpactSystem) Update(w *core.World) {
	CheckImpact(w, s.Blast)
}

// CheckImpact applies blast damage to every structure within reach of every
// exploding enemy missile. The missile is not consumed, so a structure keeps
// taking damage each tick it stays in reach.
func CheckImpact(w *core.World, b Blast) {
	for _, e := range w.Enemy {
		if e.State != core.StateExploding {
			continue
		}
		reach := e.BlastRange(b.RangePerUnit)
		for _, st := range w.Structures {
			if e.DistanceTo(st.Pos) < reach {
				ApplyDamage(w, st, e, b.Damage)
			}
		}
	}
}

// ApplyDamage subtracts damage from a structure and reports the hit
func ApplyDamage(w *core.World, st *core.Structure, by *core.Projectile, damage int) {
	st.Damage(damage)
	w.Emit(core.EvtStructureHit, core.Hit{Structure: st, By: by, Damage: damage})
}

// InterceptionSystem destroys enemy missiles caught in friendly explosions
type InterceptionSystem struct {
	RangePerUnit float64
}

func (s *InterceptionSystem) Priority() int { return 40 }

func (s *InterceptionSystem) Update(w *core.World) {
	CheckInterceptions(w, s.RangePerUnit)
}

// CheckInterceptions kills every enemy missile closer than the blast reach of
// an exploding friendly missile. Kills are immediate and unconditional.
func CheckInterceptions(w *core.World, rangePerUnit float64) {
	for _, f := range w.Friendly {
		if f.State != core.StateExploding {
			continue
		}
		reach := f.BlastRange(rangePerUnit)
		for _, e := range w.Enemy {
			if e.State == core.StateSpent {
				continue
			}
			if e.DistanceTo(f.Pos) < reach {
				e.Kill()
				w.Emit(core.EvtInterception, core.Interception{Friendly: f, Enemy: e})
			}
		}
	}
}
