// Package tui is a terminal frontend for the game, drawn with tcell. The field
// is scaled into the terminal grid, a mouse click launches a missile, and the
// prompts are typed on the bottom line.
package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/cosmowar/engine/config"
	"github.com/1siamBot/cosmowar/engine/core"
	"github.com/1siamBot/cosmowar/engine/session"
)

var (
	styleDefault  = tcell.StyleDefault
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	styleFriendly = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBlast    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
	tierStyles    = map[core.Tier]tcell.Style{
		core.TierIntact:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		core.TierDamaged:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
		core.TierCritical: tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
)

// Frontend runs a Flow on a tcell screen
type Frontend struct {
	Screen tcell.Screen
	Flow   *session.Flow
	Loop   *core.GameLoop

	// OnSession runs for every new session after the frontend has wired its loop
	OnSession func(*session.Session)

	tickRate  float64
	mouseDown bool
}

// NewFrontend takes over the flow's session start hook
func NewFrontend(screen tcell.Screen, flow *session.Flow, tickRate float64) *Frontend {
	f := &Frontend{Screen: screen, Flow: flow, tickRate: tickRate}
	flow.OnSessionStart = f.startSession
	return f
}

func (f *Frontend) startSession(s *session.Session) {
	f.Loop = core.NewGameLoop(s, f.tickRate)
	f.Loop.Play()
	if f.OnSession != nil {
		f.OnSession(s)
	}
}

// Run polls terminal events and redraws until the player leaves
func (f *Frontend) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.Screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !f.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !f.Step() {
				return
			}
		}
	}
}

// Step advances the clock and redraws. Returns false once the flow has exited.
func (f *Frontend) Step() bool {
	if f.Flow.Phase == session.PhasePlaying && f.Loop != nil {
		f.Loop.Update()
	}
	f.Flow.Update()
	f.Draw()
	return f.Flow.Phase != session.PhaseExit
}

// HandleEvent routes one terminal event. Returns false to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !f.mouseDown {
			x, y := ev.Position()
			f.HandleClick(x, y)
		}
		f.mouseDown = pressed
	case *tcell.EventResize:
		f.Screen.Sync()
	}
	return true
}

// HandleKey applies one key press. Returns false to quit.
func (f *Frontend) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	}

	switch f.Flow.Phase {
	case session.PhaseLevelPrompt, session.PhaseReplayPrompt:
		switch key {
		case tcell.KeyRune:
			f.Flow.Prompt.Type(r)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			f.Flow.Prompt.Backspace()
		case tcell.KeyEnter:
			if err := f.Flow.Submit(); err != nil {
				log.Printf("tui: %v", err)
			}
		}
	case session.PhasePlaying:
		if key == tcell.KeyRune && r == 'p' && f.Loop != nil {
			if f.Loop.State == core.StatePaused {
				f.Loop.Play()
			} else {
				f.Loop.Pause()
			}
		}
	}
	return f.Flow.Phase != session.PhaseExit
}

// HandleClick fires at the field position under a terminal cell
func (f *Frontend) HandleClick(cx, cy int) {
	if f.Flow.Phase != session.PhasePlaying || f.Flow.Session == nil {
		return
	}
	if f.Loop != nil && f.Loop.State == core.StatePaused {
		return
	}
	w, h := f.Screen.Size()
	if cy < 1 || cy >= h-1 {
		return
	}
	x, y := CellToField(cx, cy, w, h)
	if _, err := f.Flow.Session.FireFriendly(x, y); err != nil {
		log.Printf("tui: fire: %v", err)
	}
}

// FieldToCell maps a field position to a cell of a w x h terminal. Row 0 is
// the status line and the last row the prompt line.
func FieldToCell(x, y float64, w, h int) (int, int) {
	rows := h - 2
	cx := int((x + config.FieldWidth/2) / config.FieldWidth * float64(w))
	cy := int((config.FieldHeight/2-y)/config.FieldHeight*float64(rows)) + 1
	return cx, cy
}

// CellToField maps the center of a cell back to the field
func CellToField(cx, cy, w, h int) (float64, float64) {
	rows := h - 2
	x := (float64(cx)+0.5)/float64(w)*config.FieldWidth - config.FieldWidth/2
	y := config.FieldHeight/2 - (float64(cy-1)+0.5)/float64(rows)*config.FieldHeight
	return x, y
}

// Draw renders the whole screen
func (f *Frontend) Draw() {
	f.Screen.Clear()
	w, h := f.Screen.Size()

	if s := f.Flow.Session; s != nil {
		f.drawField(s, w, h)
		f.drawStatus(s, w)
		if s.IsOver() {
			f.drawCentered(h/2, " "+session.GameOverText+" ", w, styleBanner)
		}
	} else {
		f.drawCentered(h/3, config.Title, w, styleStatus)
	}

	switch f.Flow.Phase {
	case session.PhaseLevelPrompt, session.PhaseReplayPrompt:
		p := f.Flow.Prompt
		f.drawText(0, h-1, fmt.Sprintf("%s: %s > %s_", p.Title, p.Question, p.Text()), styleDefault)
	}
	f.Screen.Show()
}

func (f *Frontend) drawStatus(s *session.Session, w int) {
	base := s.Base().Health
	line := fmt.Sprintf(" %s | level %s | tick %d | base %d (%.0f%%) | missiles %d | incoming %d",
		config.Title, s.Level, s.TickCount(), base.Current, base.Ratio()*100, len(s.Friendly()), len(s.Enemy()))
	if f.Loop != nil && f.Loop.State == core.StatePaused {
		line += " | PAUSED"
	}
	for x := 0; x < w; x++ {
		f.Screen.SetContent(x, 0, ' ', nil, styleStatus)
	}
	f.drawText(0, 0, line, styleStatus)
}

func (f *Frontend) drawField(s *session.Session, w, h int) {
	for _, st := range s.Structures() {
		sprite, health := st.Rendered()
		cx, cy := FieldToCell(st.Pos.X, st.Pos.Y, w, h)
		f.Screen.SetContent(cx, cy, structureGlyph(st, sprite), nil, tierStyles[st.CurrentTier()])
		label := strconv.Itoa(health)
		f.drawText(cx-len(label)/2, cy+1, label, styleDefault)
	}
	blast := s.Rules().BlastRangePerUnit
	for _, p := range s.Enemy() {
		f.drawProjectile(p, blast, styleEnemy, w, h)
	}
	for _, p := range s.Friendly() {
		f.drawProjectile(p, blast, styleFriendly, w, h)
	}
}

func (f *Frontend) drawProjectile(p *core.Projectile, blast float64, style tcell.Style, w, h int) {
	switch p.State {
	case core.StateTraveling:
		cx, cy := FieldToCell(p.Pos.X, p.Pos.Y, w, h)
		f.setField(cx, cy, '*', style, h)
	case core.StateExploding:
		reach := p.BlastRange(blast)
		x0, y0 := FieldToCell(p.Pos.X-reach, p.Pos.Y+reach, w, h)
		x1, y1 := FieldToCell(p.Pos.X+reach, p.Pos.Y-reach, w, h)
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				fx, fy := CellToField(cx, cy, w, h)
				if p.DistanceTo(core.Vec{X: fx, Y: fy}) <= reach {
					f.setField(cx, cy, '░', styleBlast, h)
				}
			}
		}
		cx, cy := FieldToCell(p.Pos.X, p.Pos.Y, w, h)
		f.setField(cx, cy, '#', style, h)
	}
}

// setField draws inside the field rows only
func (f *Frontend) setField(cx, cy int, r rune, style tcell.Style, h int) {
	if cy < 1 || cy >= h-1 {
		return
	}
	f.Screen.SetContent(cx, cy, r, nil, style)
}

func (f *Frontend) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.Screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (f *Frontend) drawCentered(y int, s string, w int, style tcell.Style) {
	f.drawText((w-len([]rune(s)))/2, y, s, style)
}

// structureGlyph is the first letter of the name, lower case once damaged.
// The base shows '^' while its hatch is open.
func structureGlyph(st *core.Structure, sprite string) rune {
	if strings.HasSuffix(sprite, "_opened") {
		return '^'
	}
	r := []rune(strings.ToUpper(st.Name))
	if len(r) == 0 {
		return '?'
	}
	if st.CurrentTier() != core.TierIntact {
		return unicode.ToLower(r[0])
	}
	return r[0]
}
