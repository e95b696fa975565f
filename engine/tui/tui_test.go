package tui

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/cosmowar/engine/config"
	"github.com/1siamBot/cosmowar/engine/core"
	"github.com/1siamBot/cosmowar/engine/session"
)

func newTestFrontend(t *testing.T) *Frontend {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	flow := session.NewFlow(config.DefaultRules(), func() *rand.Rand {
		return rand.New(rand.NewSource(7))
	})
	return NewFrontend(screen, flow, config.TickRate)
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func typeLine(f *Frontend, line string) bool {
	for _, r := range line {
		f.HandleKey(tcell.KeyRune, r)
	}
	return f.HandleKey(tcell.KeyEnter, 0)
}

func TestCellMappingRoundTrip(t *testing.T) {
	w, h := 80, 24
	cellW := config.FieldWidth / float64(w)
	cellH := config.FieldHeight / float64(h-2)
	for _, p := range []core.Vec{{X: 0, Y: 0}, {X: -599, Y: 399}, {X: 400, Y: -300}, {X: 123, Y: -45}} {
		cx, cy := FieldToCell(p.X, p.Y, w, h)
		x, y := CellToField(cx, cy, w, h)
		if math.Abs(x-p.X) > cellW || math.Abs(y-p.Y) > cellH {
			t.Errorf("%v -> cell (%d,%d) -> (%.1f,%.1f), more than a cell away", p, cx, cy, x, y)
		}
	}
	if _, cy := FieldToCell(0, 399, w, h); cy != 1 {
		t.Errorf("top of field should be row 1, got %d", cy)
	}
}

func TestLevelPromptStartsSession(t *testing.T) {
	f := newTestFrontend(t)
	f.Draw()
	if got := rowText(f.Screen, 23); !strings.Contains(got, session.LevelQuestion) {
		t.Errorf("prompt line = %q", got)
	}

	if !typeLine(f, "2") {
		t.Fatal("frontend quit after choosing a level")
	}
	if f.Flow.Phase != session.PhasePlaying || f.Flow.Session == nil {
		t.Fatalf("phase = %v, want playing", f.Flow.Phase)
	}
	if f.Loop == nil || f.Loop.State != core.StatePlaying {
		t.Fatal("game loop not started with the session")
	}
}

func TestDrawShowsStructures(t *testing.T) {
	f := newTestFrontend(t)
	typeLine(f, "1")
	f.Draw()

	if got := rowText(f.Screen, 0); !strings.Contains(got, config.Title) || !strings.Contains(got, "base 2000 (100%)") {
		t.Errorf("status line = %q", got)
	}
	s := f.Flow.Session
	cx, cy := FieldToCell(s.Base().Pos.X, s.Base().Pos.Y, 80, 24)
	if r, _, _, _ := f.Screen.GetContent(cx, cy); r != 'B' {
		t.Errorf("base glyph = %q, want 'B'", r)
	}
	if got := rowText(f.Screen, cy+1); !strings.Contains(got, "2000") || !strings.Contains(got, "1000") {
		t.Errorf("health labels row = %q", got)
	}

	s.Base().Damage(500)
	f.Draw()
	if got := rowText(f.Screen, 0); !strings.Contains(got, "base 1500 (75%)") {
		t.Errorf("status line after damage = %q", got)
	}
}

func TestClickLaunchesMissile(t *testing.T) {
	f := newTestFrontend(t)
	f.HandleClick(40, 5) // ignored at the prompt
	typeLine(f, "1")

	f.HandleClick(40, 5)
	if n := len(f.Flow.Session.Friendly()); n != 1 {
		t.Fatalf("friendly missiles = %d, want 1", n)
	}
	f.HandleClick(40, 0) // status line
	if n := len(f.Flow.Session.Friendly()); n != 1 {
		t.Errorf("click on status line fired, friendly = %d", n)
	}

	f.HandleKey(tcell.KeyRune, 'p')
	f.HandleClick(10, 5)
	if n := len(f.Flow.Session.Friendly()); n != 1 {
		t.Errorf("click while paused fired, friendly = %d", n)
	}
}

func TestGameOverBannerAndReplay(t *testing.T) {
	f := newTestFrontend(t)
	typeLine(f, "1")
	s := f.Flow.Session
	s.Base().Damage(s.Base().Health.Max + 1)
	s.Tick()
	if !s.IsOver() {
		t.Fatal("session should be over once the base is below zero")
	}

	if !f.Step() {
		t.Fatal("step ended the flow at game over")
	}
	if got := rowText(f.Screen, 12); !strings.Contains(got, session.GameOverText) {
		t.Errorf("banner row = %q", got)
	}
	if f.Flow.Phase != session.PhaseReplayPrompt {
		t.Fatalf("phase = %v, want replay prompt", f.Flow.Phase)
	}
	if typeLine(f, "n") {
		t.Error("declining replay should quit")
	}
}

func TestEscapeQuits(t *testing.T) {
	f := newTestFrontend(t)
	if f.HandleKey(tcell.KeyEscape, 0) {
		t.Error("escape should quit")
	}
}
