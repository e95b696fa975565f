package systems

import (
	"github.com/1siamBot/cosmowar/engine/core"
)

// StructureVisualSystem recomputes structure sprites and labels at the start of
// each tick and asks the renderer to redraw only what changed
type StructureVisualSystem struct{}

func (s *StructureVisualSystem) Priority() int { return 10 }

func (s *StructureVisualSystem) Update(w *core.World) {
	for _, st := range w.Structures {
		r := st.RefreshVisual(w.Friendly)
		if r.Changed() {
			w.Emit(core.EvtStructureRedraw, core.Redraw{Structure: st, Refresh: r})
		}
	}
}
