package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/cosmowar/engine/audio"
	"github.com/1siamBot/cosmowar/engine/config"
	"github.com/1siamBot/cosmowar/engine/session"
	"github.com/1siamBot/cosmowar/engine/tui"
)

var errBadTickRate = errors.New("tickrate must be positive")

type options struct {
	seed     int64
	tickRate float64
	logPath  string
	mute     bool
}

func main() {
	var opts options
	flag.Int64Var(&opts.seed, "seed", 0, "random seed for the first session (0 picks one from the clock)")
	flag.Float64Var(&opts.tickRate, "tickrate", config.TickRate, "simulation ticks per second")
	flag.StringVar(&opts.logPath, "log", "", "write the log to this file (the terminal is busy drawing)")
	flag.BoolVar(&opts.mute, "mute", false, "disable sound")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.Title, err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup, so main can exit only after they ran
func run(opts options) error {
	if err := checkOptions(opts); err != nil {
		return err
	}
	rules := config.DefaultRules()
	if err := rules.Validate(); err != nil {
		return err
	}

	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	next := seed
	flow := session.NewFlow(rules, func() *rand.Rand {
		src := rand.NewSource(next)
		next++
		return rand.New(src)
	})
	frontend := tui.NewFrontend(screen, flow, opts.tickRate)

	if !opts.mute {
		am := audio.NewAudioManager()
		if err := am.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer am.Close()
		am.SetListener(rules.BaseX, rules.BaseY)
		frontend.OnSession = func(s *session.Session) { am.Listen(s.World.Events) }
	}

	log.Printf("%s starting, seed %d", config.Title, seed)
	frontend.Run()
	return nil
}

// checkOptions rejects flags the game cannot run with, before anything is opened
func checkOptions(opts options) error {
	if !(opts.tickRate > 0) || math.IsInf(opts.tickRate, 0) {
		return fmt.Errorf("%w, got %v", errBadTickRate, opts.tickRate)
	}
	return nil
}
