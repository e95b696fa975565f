package main

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/1siamBot/cosmowar/engine/config"
)

func TestCheckOptionsRejectsBadTickRate(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := checkOptions(options{tickRate: rate})
		if !errors.Is(err, errBadTickRate) {
			t.Errorf("tickrate %v: got %v, want errBadTickRate", rate, err)
		}
	}
	if err := checkOptions(options{tickRate: config.TickRate}); err != nil {
		t.Errorf("default tickrate rejected: %v", err)
	}
}

func TestRunFailsBeforeOpeningAnything(t *testing.T) {
	path := t.TempDir() + "/game.log"
	err := run(options{tickRate: -1, logPath: path})
	if !errors.Is(err, errBadTickRate) {
		t.Fatalf("run with negative tickrate: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file created before the flags were checked: %v", err)
	}
}
