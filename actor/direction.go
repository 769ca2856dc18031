package actor

import (
	"math"
	"time"
)

// Direction is the last animation direction a Controller emitted.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionRight
	DirectionLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	}
	return "unknown"
}

const DefaultThreshold = 0.25

// TileRange is an inclusive range of tile indices on a sheet.
type TileRange struct {
	Start int
	End   int
}

// Len returns the number of tiles in the range.
func (r TileRange) Len() int { return r.End - r.Start + 1 }

// Config holds the tile layout and timing for a directional actor.
type Config struct {
	StandTile      int
	Right          TileRange
	Left           TileRange
	FrameDurations []time.Duration
	// Threshold is the minimum |delta| counted as movement. Inclusive.
	Threshold float64
}

// DefaultConfig returns the layout of the stock actor sheet: tile 0 standing,
// 1-4 walking left, 5-8 walking right, 100ms per frame.
func DefaultConfig() Config {
	return Config{
		StandTile:      0,
		Right:          TileRange{Start: 5, End: 8},
		Left:           TileRange{Start: 1, End: 4},
		FrameDurations: []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond},
		Threshold:      DefaultThreshold,
	}
}

// Controller turns movement samples into edge-triggered animation commands.
// It is not safe for concurrent use; each actor owns its own.
type Controller struct {
	cfg      Config
	previous Direction
}

func NewController(cfg Config) *Controller {
	durations := make([]time.Duration, len(cfg.FrameDurations))
	copy(durations, cfg.FrameDurations)
	cfg.FrameDurations = durations
	return &Controller{cfg: cfg}
}

// Config returns a copy of the controller's configuration.
func (c *Controller) Config() Config {
	cfg := c.cfg
	cfg.FrameDurations = append([]time.Duration(nil), c.cfg.FrameDurations...)
	return cfg
}

// Direction returns the direction of the last emitted command.
func (c *Controller) Direction() Direction {
	return c.previous
}

// Update classifies delta and returns a command when the direction changed.
// A reversal from left to right (or back) re-emits the range animation
// without an intervening stop.
func (c *Controller) Update(delta float64) (Command, bool) {
	switch {
	case math.Abs(delta) <= c.cfg.Threshold:
		if c.previous == DirectionNone {
			return Command{}, false
		}
		c.previous = DirectionNone
		return Stop(c.cfg.StandTile), true
	case delta > c.cfg.Threshold:
		if c.previous == DirectionRight {
			return Command{}, false
		}
		c.previous = DirectionRight
		return c.animate(c.cfg.Right), true
	case delta < -c.cfg.Threshold:
		if c.previous == DirectionLeft {
			return Command{}, false
		}
		c.previous = DirectionLeft
		return c.animate(c.cfg.Left), true
	}
	// NaN
	return Command{}, false
}

// animate builds a looping range command with its own copy of the frame
// durations.
func (c *Controller) animate(r TileRange) Command {
	durations := append([]time.Duration(nil), c.cfg.FrameDurations...)
	return AnimateRange(durations, r.Start, r.End, true)
}
