package session

import (
	"log"
	"math/rand"

	"github.com/1siamBot/cosmowar/engine/config"
)

// Phase is where the player is between and during sessions
type Phase uint8

const (
	PhaseLevelPrompt Phase = iota
	PhasePlaying
	PhaseReplayPrompt
	PhaseExit
)

func (p Phase) String() string {
	switch p {
	case PhaseLevelPrompt:
		return "level-prompt"
	case PhasePlaying:
		return "playing"
	case PhaseReplayPrompt:
		return "replay-prompt"
	default:
		return "exit"
	}
}

const (
	LevelQuestion  = "Choose a level (1, 2, 3)"
	ReplayQuestion = "Play again? y/n"

	// GameOverText is the banner shown once the base has fallen
	GameOverText = "Game over"
)

// Flow drives level prompt -> play -> replay prompt -> level prompt or exit.
// Session stays set after game over so the banner can still show the field.
type Flow struct {
	Phase   Phase
	Session *Session
	Prompt  *Prompt

	// OnSessionStart runs after a new session is created
	OnSessionStart func(*Session)

	rules   config.Rules
	newRand func() *rand.Rand
}

// NewFlow starts at the level prompt. newRand supplies the random source for
// each new session.
func NewFlow(rules config.Rules, newRand func() *rand.Rand) *Flow {
	return &Flow{
		Phase:   PhaseLevelPrompt,
		Prompt:  NewPrompt(config.Title, LevelQuestion),
		rules:   rules,
		newRand: newRand,
	}
}

// Submit hands the prompt's line to the current phase
func (f *Flow) Submit() error {
	line := f.Prompt.Submit()
	switch f.Phase {
	case PhaseLevelPrompt:
		return f.chooseLevel(line)
	case PhaseReplayPrompt:
		if config.IsAffirmative(line) {
			f.Session = nil
			f.toPrompt(PhaseLevelPrompt, LevelQuestion)
		} else {
			f.Phase = PhaseExit
		}
	}
	return nil
}

func (f *Flow) chooseLevel(line string) error {
	level, ok := config.ParseLevel(line)
	if !ok {
		log.Printf("level %q declined", line)
		f.toPrompt(PhaseReplayPrompt, ReplayQuestion)
		return nil
	}
	s, err := New(level, f.rules, f.newRand())
	if err != nil {
		f.Phase = PhaseExit
		return err
	}
	f.Session = s
	f.Phase = PhasePlaying
	if f.OnSessionStart != nil {
		f.OnSessionStart(s)
	}
	return nil
}

// Update moves a finished session on to the replay prompt
func (f *Flow) Update() {
	if f.Phase == PhasePlaying && f.Session != nil && f.Session.IsOver() {
		f.toPrompt(PhaseReplayPrompt, ReplayQuestion)
	}
}

// GameOver reports whether the banner should be shown
func (f *Flow) GameOver() bool {
	return f.Session != nil && f.Session.IsOver()
}

func (f *Flow) toPrompt(p Phase, question string) {
	f.Phase = p
	f.Prompt = NewPrompt(config.Title, question)
}
