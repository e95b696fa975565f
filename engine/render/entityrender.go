package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/cosmowar/engine/core"
)

var (
	FriendlyColor = color.RGBA{255, 255, 255, 255}
	EnemyColor    = color.RGBA{255, 60, 60, 255}
)

// DrawStructureSprite draws a structure using its sprite if available.
// Returns true if a sprite was drawn, false to fall back to default rendering
func (r *FieldRenderer) DrawStructureSprite(screen *ebiten.Image, st *core.Structure, key string) bool {
	sprite := r.Sprites.Get(key)
	if sprite == nil {
		return false
	}
	sx, sy := r.Camera.WorldToScreen(st.Pos.X, st.Pos.Y)
	sw := float64(sprite.Bounds().Dx())
	sh := float64(sprite.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-sw/2, -sh/2)
	op.GeoM.Scale(r.Camera.Zoom, r.Camera.Zoom)
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(sprite, op)
	return true
}

// DrawProjectile draws a traveling missile as its trail and nose, an exploding
// one as a disc of its blast reach, and nothing once spent
func (r *FieldRenderer) DrawProjectile(screen *ebiten.Image, p *core.Projectile) {
	clr := FriendlyColor
	if p.Side == core.SideEnemy {
		clr = EnemyColor
	}
	ox, oy := r.Camera.WorldToScreen(p.Origin.X, p.Origin.Y)
	px, py := r.Camera.WorldToScreen(p.Pos.X, p.Pos.Y)
	z := float32(r.Camera.Zoom)

	switch p.State {
	case core.StateTraveling:
		vector.StrokeLine(screen, float32(ox), float32(oy), float32(px), float32(py), 1, clr, false)
		nose := p.Pos.Add(p.Heading.Scale(8))
		nx, ny := r.Camera.WorldToScreen(nose.X, nose.Y)
		vector.StrokeLine(screen, float32(px), float32(py), float32(nx), float32(ny), 3, clr, false)
	case core.StateExploding:
		vector.StrokeLine(screen, float32(ox), float32(oy), float32(px), float32(py), 1, clr, false)
		radius := float32(p.BlastRange(r.BlastRangePerUnit)) * z
		if radius < 2 {
			radius = 2
		}
		vector.DrawFilledCircle(screen, float32(px), float32(py), radius, clr, false)
	}
}
