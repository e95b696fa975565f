package main

import (
	"errors"
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/cosmowar/engine/audio"
	"github.com/1siamBot/cosmowar/engine/config"
	"github.com/1siamBot/cosmowar/engine/core"
	"github.com/1siamBot/cosmowar/engine/input"
	"github.com/1siamBot/cosmowar/engine/render"
	"github.com/1siamBot/cosmowar/engine/replay"
	"github.com/1siamBot/cosmowar/engine/session"
	"github.com/1siamBot/cosmowar/engine/ui"
)

const (
	ScreenWidth  = config.FieldWidth
	ScreenHeight = config.FieldHeight
)

// Game implements ebiten.Game interface
type Game struct {
	flow     *session.Flow
	gameLoop *core.GameLoop
	renderer *render.FieldRenderer
	input    *input.InputState
	audio    *audio.AudioManager
	replay   *replay.Replay
	hud      *ui.HUD
	prompt   *ui.PromptDialog

	rules    config.Rules
	tickRate float64
	muted    bool
}

func NewGame(rules config.Rules, seed int64, tickRate float64) *Game {
	g := &Game{
		renderer: render.NewFieldRenderer(ScreenWidth, ScreenHeight, rules),
		input:    input.NewInputState(),
		audio:    audio.NewAudioManager(),
		hud:      ui.NewHUD(ScreenWidth, ScreenHeight),
		prompt:   ui.NewPromptDialog(ScreenWidth, ScreenHeight),
		rules:    rules,
		tickRate: tickRate,
	}

	if err := g.audio.Init(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	g.audio.SetListener(rules.BaseX, rules.BaseY)

	next := seed
	g.flow = session.NewFlow(rules, func() *rand.Rand {
		src := rand.NewSource(next)
		next++
		return rand.New(src)
	})
	g.flow.OnSessionStart = g.startSession
	return g
}

func (g *Game) startSession(s *session.Session) {
	g.renderer.Reset()
	g.renderer.Listen(s.World.Events)
	g.audio.Listen(s.World.Events)
	g.replay = &replay.Replay{}
	g.gameLoop = core.NewGameLoop(s, g.tickRate)
	g.gameLoop.Play()
}

func (g *Game) Update() error {
	g.input.Update()
	dt := 1.0 / float64(ebiten.TPS())

	if g.input.Escape {
		return ebiten.Termination
	}
	if g.input.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = !g.muted
		if g.muted {
			g.audio.SetVolume(0)
		} else {
			g.audio.SetVolume(1)
		}
	}

	switch g.flow.Phase {
	case session.PhaseLevelPrompt, session.PhaseReplayPrompt:
		if err := g.prompt.Update(dt, g.input, g.flow); err != nil {
			log.Printf("session: %v", err)
		}
	case session.PhasePlaying:
		g.updatePlaying()
	}

	if g.flow.Phase == session.PhaseExit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updatePlaying() {
	s := g.flow.Session
	if g.input.IsKeyJustPressed(ebiten.KeyP) {
		if g.gameLoop.State == core.StatePaused {
			g.gameLoop.Play()
		} else {
			g.gameLoop.Pause()
		}
	}
	if g.input.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.ShowHelp = !g.hud.ShowHelp
	}

	if g.input.LeftJustPressed && g.gameLoop.State == core.StatePlaying {
		wx, wy := g.renderer.Camera.ScreenToWorld(g.input.MouseX, g.input.MouseY)
		if err := g.replay.Fire(s, wx, wy); err != nil {
			log.Printf("fire at (%.0f, %.0f): %v", wx, wy, err)
		}
	}

	g.gameLoop.Update()
	g.flow.Update()
	if g.flow.Phase == session.PhaseReplayPrompt {
		log.Printf("session %s lasted %d ticks, %d launches", s.ID, s.TickCount(), len(g.replay.Commands))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.flow.Session
	if s != nil {
		g.renderer.Draw(screen, s)
		g.hud.Draw(screen, s, g.gameLoop.State == core.StatePaused)
	}
	switch g.flow.Phase {
	case session.PhaseLevelPrompt, session.PhaseReplayPrompt:
		g.prompt.Draw(screen, g.flow.Prompt, s != nil)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "random seed for the first session (0 picks one from the clock)")
	tickRate := flag.Float64("tickrate", config.TickRate, "simulation ticks per second")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if !(*tickRate > 0) || math.IsInf(*tickRate, 0) {
		log.Fatalf("tickrate must be positive, got %v", *tickRate)
	}
	rules := config.DefaultRules()
	if err := rules.Validate(); err != nil {
		log.Fatal(err)
	}
	log.Printf("%s starting, seed %d", config.Title, *seed)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetVsyncEnabled(true)

	game := NewGame(rules, *seed, *tickRate)
	defer game.audio.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
