package systems

import (
	"math/rand"

	"github.com/1siamBot/cosmowar/engine/ai"
	"github.com/1siamBot/cosmowar/engine/core"
)

// SpawnArea is the strip enemy missiles are launched from
type SpawnArea struct {
	MinX, MaxX int // inclusive
	Y          float64
}

// Spawner keeps up to Cap enemy missiles in flight
type Spawner struct {
	Cap      int
	Area     SpawnArea
	Motion   core.Motion
	Targeter ai.Targeter
	Rand     *rand.Rand
}

func (s *Spawner) Priority() int { return 30 }

func (s *Spawner) Update(w *core.World) {
	s.MaybeSpawn(w)
}

// MaybeSpawn launches one enemy missile at a random surviving structure when
// fewer than Cap are in flight. It returns nil when nothing was launched.
func (s *Spawner) MaybeSpawn(w *core.World) *core.Projectile {
	if len(w.Enemy) >= s.Cap {
		return nil
	}
	x := s.Area.MinX + s.Rand.Intn(s.Area.MaxX-s.Area.MinX+1)
	target, ok := s.Targeter.Pick(s.Rand, w.AliveStructures())
	if !ok {
		return nil
	}
	origin := core.Vec{X: float64(x), Y: s.Area.Y}
	p, err := core.NewProjectile(core.SideEnemy, origin, target.Pos, s.Motion)
	if err != nil {
		// geometry is validated with the rules; nothing to launch
		return nil
	}
	w.Launch(p)
	return p
}

// FireFriendly launches an interceptor from the base launch point at target
func FireFriendly(w *core.World, launch, target core.Vec, m core.Motion) (*core.Projectile, error) {
	p, err := core.NewProjectile(core.SideFriendly, launch, target, m)
	if err != nil {
		return nil, err
	}
	w.Launch(p)
	return p, nil
}
