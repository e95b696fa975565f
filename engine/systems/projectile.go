package systems

import (
	"github.com/1siamBot/cosmowar/engine/core"
)

// ProjectileSystem advances friendly then enemy missiles and prunes the spent ones
type ProjectileSystem struct{}

func (s *ProjectileSystem) Priority() int { return 50 }

func (s *ProjectileSystem) Update(w *core.World) {
	advanceAll(w, w.Friendly)
	advanceAll(w, w.Enemy)
	w.Prune()
}

func advanceAll(w *core.World, ps []*core.Projectile) {
	for _, p := range ps {
		before := p.State
		after := p.Advance()
		if before == after {
			continue
		}
		switch after {
		case core.StateExploding:
			w.Emit(core.EvtProjectileExploded, p)
		case core.StateSpent:
			w.Emit(core.EvtProjectileSpent, p)
		}
	}
}
