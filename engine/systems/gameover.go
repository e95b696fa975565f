package systems

import (
	"github.com/1siamBot/cosmowar/engine/core"
)

// GameOverSystem ends the session once the base health drops below zero.
// Other structures never end the game.
type GameOverSystem struct{}

func (s *GameOverSystem) Priority() int { return 100 }

func (s *GameOverSystem) Update(w *core.World) {
	if w.Over || w.Base == nil {
		return
	}
	if w.Base.Health.Current < 0 {
		w.Over = true
		w.Emit(core.EvtGameEnd, w.Base)
	}
}
