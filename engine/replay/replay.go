// Package replay records player commands against a session tick and plays
// them back on a fresh session built from the same seed
package replay

import (
	"github.com/1siamBot/cosmowar/engine/session"
)

// Replay holds the commands of one session, in the order they were applied
type Replay struct {
	Commands []Command
}

// Record appends a command
func (r *Replay) Record(cmd Command) {
	r.Commands = append(r.Commands, cmd)
}

// Fire launches an interceptor on s and records it against the session's
// current tick
func (r *Replay) Fire(s *session.Session, x, y float64) error {
	if _, err := s.FireFriendly(x, y); err != nil {
		return err
	}
	r.Record(Command{Tick: s.TickCount(), Type: CmdFire, TargetX: x, TargetY: y})
	return nil
}

// CommandsForTick returns all commands at a given tick during playback
func (r *Replay) CommandsForTick(tick uint64) []Command {
	var result []Command
	for _, c := range r.Commands {
		if c.Tick == tick {
			result = append(result, c)
		}
	}
	return result
}

// Play applies the recorded commands to s for up to ticks ticks, stopping early
// when the session ends. It returns the number of ticks run.
func (r *Replay) Play(s *session.Session, ticks uint64) (uint64, error) {
	var ran uint64
	for ran < ticks {
		for _, c := range r.CommandsForTick(s.TickCount()) {
			if c.Type == CmdFire {
				if _, err := s.FireFriendly(c.TargetX, c.TargetY); err != nil {
					return ran, err
				}
			}
		}
		ran++
		if !s.Tick() {
			break
		}
	}
	return ran, nil
}
