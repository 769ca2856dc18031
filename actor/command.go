package actor

import (
	"fmt"
	"time"
)

// AnimatedVisual is the sprite surface a Command is issued to.
type AnimatedVisual interface {
	SetStaticFrame(tile int)
	PlayAnimation(durations []time.Duration, start, end int, loop bool)
	StopAnimation()
}

type CommandKind uint8

const (
	CommandStop CommandKind = iota + 1
	CommandAnimate
)

// Command is a single instruction for an AnimatedVisual.
type Command struct {
	Kind CommandKind

	// Tile is set for CommandStop.
	Tile int

	// Durations, Start, End and Loop are set for CommandAnimate.
	Durations []time.Duration
	Start     int
	End       int
	Loop      bool
}

// Stop halts any animation and shows tile.
func Stop(tile int) Command {
	return Command{Kind: CommandStop, Tile: tile}
}

// AnimateRange cycles tiles start..end with one duration per tile.
func AnimateRange(durations []time.Duration, start, end int, loop bool) Command {
	return Command{Kind: CommandAnimate, Durations: durations, Start: start, End: end, Loop: loop}
}

// Apply issues the command to v. A stop halts the running animation before
// showing the static tile.
func (c Command) Apply(v AnimatedVisual) {
	if v == nil {
		return
	}
	switch c.Kind {
	case CommandStop:
		v.StopAnimation()
		v.SetStaticFrame(c.Tile)
	case CommandAnimate:
		v.PlayAnimation(c.Durations, c.Start, c.End, c.Loop)
	}
}

func (c Command) String() string {
	switch c.Kind {
	case CommandStop:
		return fmt.Sprintf("stop(%d)", c.Tile)
	case CommandAnimate:
		return fmt.Sprintf("animate(%d..%d loop=%t)", c.Start, c.End, c.Loop)
	}
	return "none"
}
