package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/cosmowar/engine/input"
	"github.com/1siamBot/cosmowar/engine/render"
	"github.com/1siamBot/cosmowar/engine/session"
)

var (
	menuBG     = color.RGBA{8, 8, 16, 255}
	menuPanel  = color.RGBA{15, 15, 30, 230}
	menuBorder = color.RGBA{0, 140, 200, 255}
	menuAccent = color.RGBA{0, 200, 255, 255}
	menuField  = color.RGBA{20, 25, 40, 240}
	menuText   = color.RGBA{200, 220, 255, 255}
)

// PromptDialog is the modal text prompt shown between sessions
type PromptDialog struct {
	ScreenW int
	ScreenH int
	Tick    float64
}

func NewPromptDialog(screenW, screenH int) *PromptDialog {
	return &PromptDialog{ScreenW: screenW, ScreenH: screenH}
}

// Update feeds one frame of keyboard input into the flow's prompt.
// Returns the error of a submitted answer, if any.
func (d *PromptDialog) Update(dt float64, in *input.InputState, flow *session.Flow) error {
	d.Tick += dt
	p := flow.Prompt
	p.Type(in.Chars...)
	if in.Backspace {
		p.Backspace()
	}
	if in.Enter {
		return flow.Submit()
	}
	return nil
}

// Draw renders the prompt over the field. With no field behind it the
// background is the animated menu backdrop.
func (d *PromptDialog) Draw(screen *ebiten.Image, p *session.Prompt, overField bool) {
	if overField {
		vector.DrawFilledRect(screen, 0, 0, float32(d.ScreenW), float32(d.ScreenH), color.RGBA{0, 0, 0, 140}, false)
	} else {
		screen.Fill(menuBG)
		d.drawAnimatedBG(screen)
	}

	cx := d.ScreenW / 2
	panelW, panelH := 420, 170
	px := float32(cx - panelW/2)
	py := float32(d.ScreenH/2 - panelH/2)
	drawRoundedRect(screen, px, py, float32(panelW), float32(panelH), 10, menuPanel)
	drawRoundedRectStroke(screen, px, py, float32(panelW), float32(panelH), 10, menuBorder)

	drawCentered(screen, p.Title, float64(cx), float64(py)+18, 2, menuAccent)
	vector.DrawFilledRect(screen, px+20, py+52, float32(panelW-40), 2, menuAccent, false)
	drawCentered(screen, p.Question, float64(cx), float64(py)+68, 1, menuText)

	// entry field with blinking caret
	fx, fy := px+40, py+100
	fw := float32(panelW - 80)
	drawRoundedRect(screen, fx, fy, fw, 32, 4, menuField)
	drawRoundedRectStroke(screen, fx, fy, fw, 32, 4, color.RGBA{40, 60, 100, 200})
	entry := p.Text()
	if math.Mod(d.Tick, 1) < 0.5 {
		entry += "_"
	}
	ebitenutil.DebugPrintAt(screen, entry, int(fx)+10, int(fy)+9)
}

func (d *PromptDialog) drawAnimatedBG(screen *ebiten.Image) {
	t := d.Tick
	for i := 0; i < 40; i++ {
		px := float32(math.Mod(float64(i)*43.7+float64(i*i)*0.3, float64(d.ScreenW)))
		py := float32(math.Mod(float64(i)*67.3+t*12+float64(i)*1.7, float64(d.ScreenH)))
		alpha := uint8(60 + 50*math.Sin(t*2+float64(i)))
		vector.DrawFilledCircle(screen, px, py, 1.5, color.RGBA{0, 180, 255, alpha}, false)
	}
}

// ==================== DRAWING HELPERS ====================

func drawCentered(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, render.DefaultFace, op)
}

func drawRoundedRect(screen *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	var path vector.Path
	roundedRectPath(&path, x, y, w, h, r)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	fillPath(screen, vs, is, clr)
}

func drawRoundedRectStroke(screen *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	var path vector.Path
	roundedRectPath(&path, x, y, w, h, r)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1.5})
	fillPath(screen, vs, is, clr)
}

func roundedRectPath(p *vector.Path, x, y, w, h, r float32) {
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, vector.Clockwise)
	p.Close()
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

func fillPath(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
