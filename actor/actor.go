package actor

import (
	"errors"
	"fmt"
)

// Kind distinguishes who drives an actor.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindMachine
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMachine:
		return "machine"
	}
	return "unknown"
}

const DefaultScale = 2.5

var ErrInvalidConfig = errors.New("actor: invalid config")

// Validate reports whether cfg can drive a tile animation: every range must
// have exactly one frame duration per tile.
func (cfg Config) Validate() error {
	if cfg.Threshold < 0 {
		return fmt.Errorf("%w: negative threshold %v", ErrInvalidConfig, cfg.Threshold)
	}
	if cfg.StandTile < 0 {
		return fmt.Errorf("%w: negative stand tile %d", ErrInvalidConfig, cfg.StandTile)
	}
	for _, r := range []struct {
		name string
		rng  TileRange
	}{{"right", cfg.Right}, {"left", cfg.Left}} {
		if r.rng.Start < 0 || r.rng.End < r.rng.Start {
			return fmt.Errorf("%w: %s range %d..%d", ErrInvalidConfig, r.name, r.rng.Start, r.rng.End)
		}
		if r.rng.Len() != len(cfg.FrameDurations) {
			return fmt.Errorf("%w: %s range has %d tiles but %d frame durations", ErrInvalidConfig, r.name, r.rng.Len(), len(cfg.FrameDurations))
		}
	}
	for i, d := range cfg.FrameDurations {
		if d <= 0 {
			return fmt.Errorf("%w: frame duration %d is %v", ErrInvalidConfig, i, d)
		}
	}
	return nil
}

// Actor is a sprite whose tile follows its horizontal movement.
type Actor struct {
	Name  string
	Kind  Kind
	X, Y  float64
	Scale float64

	controller *Controller
	visual     AnimatedVisual

	// OnCommand, if set, observes every command issued to the visual.
	OnCommand func(a *Actor, cmd Command)
}

// New creates an actor standing on its stand tile.
func New(name string, kind Kind, x, y float64, cfg Config, visual AnimatedVisual) *Actor {
	a := &Actor{
		Name:       name,
		Kind:       kind,
		X:          x,
		Y:          y,
		Scale:      DefaultScale,
		controller: NewController(cfg),
		visual:     visual,
	}
	if visual != nil {
		visual.SetStaticFrame(cfg.StandTile)
	}
	return a
}

func (a *Actor) Controller() *Controller { return a.controller }

func (a *Actor) Visual() AnimatedVisual { return a.visual }

// MoveTo places the actor at (x, y) and updates its sprite from the
// horizontal distance travelled.
func (a *Actor) MoveTo(x, y float64) {
	diff := x - a.X
	a.X, a.Y = x, y
	a.UpdateSprite(diff)
}

// UpdateSprite feeds a movement delta to the controller and applies any
// resulting command.
func (a *Actor) UpdateSprite(diff float64) {
	if a == nil || a.controller == nil {
		return
	}
	cmd, ok := a.controller.Update(diff)
	if !ok {
		return
	}
	cmd.Apply(a.visual)
	if a.OnCommand != nil {
		a.OnCommand(a, cmd)
	}
}
