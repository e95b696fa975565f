package render

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/cosmowar/engine/config"
	"github.com/1siamBot/cosmowar/engine/core"
	"github.com/1siamBot/cosmowar/engine/session"
)

const labelOffsetY = 85 // field units below the structure

var (
	SkyTop     = color.RGBA{8, 8, 28, 255}
	GroundTint = color.RGBA{30, 40, 30, 255}
	LabelColor = color.RGBA{255, 255, 255, 255}
)

// label is a pre-rendered health number, rebuilt only when the health changes
type label struct {
	health int
	img    *ebiten.Image
}

// FieldRenderer draws one session's field
type FieldRenderer struct {
	Camera            *Camera
	Sprites           *SpriteManager
	BlastRangePerUnit float64

	sprites map[core.EntityID]string
	labels  map[core.EntityID]*label
	stars   []core.Vec
}

// NewFieldRenderer creates a renderer for a screenW x screenH window
func NewFieldRenderer(screenW, screenH int, rules config.Rules) *FieldRenderer {
	r := &FieldRenderer{
		Camera:            NewCamera(screenW, screenH, config.FieldWidth, config.FieldHeight),
		Sprites:           NewSpriteManager(rules),
		BlastRangePerUnit: rules.BlastRangePerUnit,
	}
	for i := 0; i < 80; i++ {
		// fixed pseudo-random sky
		x := float64((i*7919)%config.FieldWidth - config.FieldWidth/2)
		y := float64((i*104729)%(config.FieldHeight/2) + 20)
		r.stars = append(r.stars, core.Vec{X: x, Y: y})
	}
	r.Reset()
	return r
}

// Reset forgets the cached visuals of the previous session
func (r *FieldRenderer) Reset() {
	r.sprites = make(map[core.EntityID]string)
	r.labels = make(map[core.EntityID]*label)
}

// Listen subscribes to structure redraw requests of one session
func (r *FieldRenderer) Listen(bus *core.EventBus) {
	bus.On(core.EvtStructureRedraw, func(e core.Event) {
		rd := e.Payload.(core.Redraw)
		if rd.Refresh.SpriteChanged {
			r.sprites[rd.Structure.ID] = rd.Refresh.Sprite
		}
		if rd.Refresh.LabelChanged {
			if old, ok := r.labels[rd.Structure.ID]; ok {
				old.img.Deallocate()
			}
			r.labels[rd.Structure.ID] = newLabel(rd.Refresh.Health)
		}
	})
}

func newLabel(health int) *label {
	s := strconv.Itoa(health)
	w, h := text.Measure(s, DefaultFace, 0)
	img := ebiten.NewImage(int(w)+2, int(h)+2)
	op := &text.DrawOptions{}
	op.GeoM.Translate(1, 1)
	op.ColorScale.ScaleWithColor(LabelColor)
	text.Draw(img, s, DefaultFace, op)
	return &label{health: health, img: img}
}

// Draw renders the background, structures with their labels, and projectiles
func (r *FieldRenderer) Draw(screen *ebiten.Image, s *session.Session) {
	screen.Fill(SkyTop)
	_, groundY := r.Camera.WorldToScreen(0, s.Rules().BaseY-40)
	vector.DrawFilledRect(screen, 0, float32(groundY), float32(r.Camera.ScreenW),
		float32(r.Camera.ScreenH)-float32(groundY), GroundTint, false)
	for _, st := range r.stars {
		x, y := r.Camera.WorldToScreen(st.X, st.Y)
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, 1, color.RGBA{200, 200, 220, 255}, false)
	}

	for _, st := range s.Structures() {
		sprite, ok := r.sprites[st.ID]
		if !ok {
			sprite, _ = st.Rendered()
			r.sprites[st.ID] = sprite
		}
		if !r.DrawStructureSprite(screen, st, sprite) {
			x, y := r.Camera.WorldToScreen(st.Pos.X, st.Pos.Y)
			vector.DrawFilledRect(screen, float32(x)-20, float32(y)-20, 40, 40, color.RGBA{128, 128, 128, 255}, false)
		}
		r.drawLabel(screen, st)
	}

	for _, p := range s.Friendly() {
		r.DrawProjectile(screen, p)
	}
	for _, p := range s.Enemy() {
		r.DrawProjectile(screen, p)
	}
}

func (r *FieldRenderer) drawLabel(screen *ebiten.Image, st *core.Structure) {
	l, ok := r.labels[st.ID]
	if !ok {
		_, health := st.Rendered()
		l = newLabel(health)
		r.labels[st.ID] = l
	}
	x, y := r.Camera.WorldToScreen(st.Pos.X, st.Pos.Y-labelOffsetY)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(l.img.Bounds().Dx())/2, 0)
	op.GeoM.Scale(1.4, 1.4)
	op.GeoM.Translate(x, y)
	screen.DrawImage(l.img, op)
}
