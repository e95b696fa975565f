package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/cosmowar/engine/ai"
	"github.com/1siamBot/cosmowar/engine/session"
)

// HUD is the heads-up display over the field
type HUD struct {
	ScreenW, ScreenH int
	TopBarHeight     int
	ThreatRadius     float64 // enemies within this of a structure count as threats
	ShowHelp         bool
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW:      sw,
		ScreenH:      sh,
		TopBarHeight: 24,
		ThreatRadius: 250,
	}
}

// Draw renders the HUD for a running or finished session
func (h *HUD) Draw(screen *ebiten.Image, s *session.Session, paused bool) {
	h.drawTopBar(screen, s, paused)
	if h.ShowHelp {
		h.drawHelp(screen)
	}
	if s.IsOver() {
		h.drawGameOver(screen)
	}
}

func (h *HUD) drawTopBar(screen *ebiten.Image, s *session.Session, paused bool) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.TopBarHeight), color.RGBA{0, 0, 0, 180}, false)
	info := fmt.Sprintf("Level %s | Tick %d | Base %d | Missiles %d | Incoming %d",
		s.Level, s.TickCount(), s.Base().Health.Current, len(s.Friendly()), len(s.Enemy()))
	if paused {
		info += " | PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, info, 10, 5)
	h.drawBaseBar(screen, s)

	if st, threat := ai.MostThreatened(s.World, h.ThreatRadius); st != nil && threat > 0 {
		warn := fmt.Sprintf("Threat: %s", st.Name)
		ebitenutil.DebugPrintAt(screen, warn, h.ScreenW-len(warn)*6-10, 5)
	}
	id := s.ID.String()[:8]
	ebitenutil.DebugPrintAt(screen, "session "+id, 10, h.ScreenH-18)
}

// drawBaseBar is a health bar under the top bar, green to red as the base weakens
func (h *HUD) drawBaseBar(screen *ebiten.Image, s *session.Session) {
	base := s.Base().Health
	ratio := float32(base.Ratio())
	if ratio < 0 {
		ratio = 0
	}
	barColor := color.RGBA{0, 200, 0, 255}
	if ratio < 0.5 {
		barColor = color.RGBA{255, 200, 0, 255}
	}
	if ratio < 0.25 {
		barColor = color.RGBA{255, 0, 0, 255}
	}
	y := float32(h.TopBarHeight)
	vector.DrawFilledRect(screen, 0, y, float32(h.ScreenW), 4, color.RGBA{40, 40, 40, 200}, false)
	vector.DrawFilledRect(screen, 0, y, float32(h.ScreenW)*ratio, 4, barColor, false)
}

func (h *HUD) drawHelp(screen *ebiten.Image) {
	lines := []string{
		"Left Click - Launch missile",
		"P - Pause",
		"M - Mute",
		"H - Toggle help",
		"ESC - Quit",
	}
	y := h.TopBarHeight + 10
	vector.DrawFilledRect(screen, 6, float32(y-4), 200, float32(len(lines)*16+8), color.RGBA{0, 0, 0, 150}, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 12, y+i*16)
	}
}

func (h *HUD) drawGameOver(screen *ebiten.Image) {
	cx := float64(h.ScreenW) / 2
	cy := float64(h.ScreenH) / 2
	drawRoundedRect(screen, float32(cx-170), float32(cy-140), 340, 70, 12, color.RGBA{40, 0, 0, 200})
	drawCentered(screen, session.GameOverText, cx, cy-125, 3, color.RGBA{255, 255, 255, 255})
}
