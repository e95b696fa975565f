package replay

import "fmt"

// CmdType identifies a recorded player command
type CmdType uint8

const (
	CmdFire CmdType = iota
)

// Command is a deterministic player input applied before a given tick
type Command struct {
	Tick    uint64
	Type    CmdType
	TargetX float64
	TargetY float64
}

func (c Command) String() string {
	return fmt.Sprintf("tick %d: fire at (%.0f, %.0f)", c.Tick, c.TargetX, c.TargetY)
}
