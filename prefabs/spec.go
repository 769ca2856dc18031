package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tileactor/actor"
)

// LoadSpec reads and decodes a YAML prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ActorSpec describes one actor prefab.
type ActorSpec struct {
	Name      string        `yaml:"name"`
	Kind      string        `yaml:"kind"`
	MoveSpeed float64       `yaml:"move_speed"`
	Script    string        `yaml:"script"`
	Color     *YAMLColor    `yaml:"color"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Animation AnimationSpec `yaml:"animation"`
}

// LoadActorSpec loads an actor prefab and checks its kind and animation.
func LoadActorSpec(filename string) (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](filename)
	if err != nil {
		return nil, err
	}
	if _, err := spec.ActorKind(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	if _, err := spec.Animation.Config(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *ActorSpec) ActorKind() (actor.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "", "player":
		return actor.KindPlayer, nil
	case "machine":
		return actor.KindMachine, nil
	}
	return 0, fmt.Errorf("unknown actor kind %q", s.Kind)
}

// Scale returns the transform scale, falling back to actor.DefaultScale.
func (s *ActorSpec) Scale() float64 {
	if s.Transform.Scale > 0 {
		return s.Transform.Scale
	}
	return actor.DefaultScale
}

type TransformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

type TileRangeSpec struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// AnimationSpec is the directional tile layout. Omitted fields take the
// values of actor.DefaultConfig.
type AnimationSpec struct {
	StandTile *int           `yaml:"stand_tile"`
	Right     *TileRangeSpec `yaml:"right"`
	Left      *TileRangeSpec `yaml:"left"`
	FrameMS   []int          `yaml:"frame_ms"`
	Threshold *float64       `yaml:"threshold"`
}

// Config converts the animation prefab to a validated actor.Config.
func (s AnimationSpec) Config() (actor.Config, error) {
	cfg := actor.DefaultConfig()
	if s.StandTile != nil {
		cfg.StandTile = *s.StandTile
	}
	if s.Right != nil {
		cfg.Right = actor.TileRange{Start: s.Right.Start, End: s.Right.End}
	}
	if s.Left != nil {
		cfg.Left = actor.TileRange{Start: s.Left.Start, End: s.Left.End}
	}
	if len(s.FrameMS) > 0 {
		cfg.FrameDurations = make([]time.Duration, len(s.FrameMS))
		for i, ms := range s.FrameMS {
			cfg.FrameDurations[i] = time.Duration(ms) * time.Millisecond
		}
	}
	if s.Threshold != nil {
		cfg.Threshold = *s.Threshold
	}
	if err := cfg.Validate(); err != nil {
		return actor.Config{}, err
	}
	return cfg, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
