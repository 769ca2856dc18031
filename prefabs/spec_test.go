package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/tileactor/actor"
)

func TestLoadEmbeddedActorSpecs(t *testing.T) {
	names, err := ActorSpecNames()
	require.NoError(t, err)
	require.Equal(t, []string{"actor_machine.yaml", "actor_player.yaml"}, names)

	cases := []struct {
		file      string
		kind      actor.Kind
		script    string
		scale     float64
		threshold float64
		frame     time.Duration
	}{
		{"actor_player.yaml", actor.KindPlayer, "", 2.5, 0.25, 100 * time.Millisecond},
		{"actor_machine.yaml", actor.KindMachine, "patrol.tengo", actor.DefaultScale, actor.DefaultThreshold, 120 * time.Millisecond},
	}
	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			spec, err := LoadActorSpec(c.file)
			require.NoError(t, err)

			kind, err := spec.ActorKind()
			require.NoError(t, err)
			assert.Equal(t, c.kind, kind)
			assert.Equal(t, c.script, spec.Script)
			assert.Equal(t, c.scale, spec.Scale())
			require.NotNil(t, spec.Color)

			cfg, err := spec.Animation.Config()
			require.NoError(t, err)
			assert.Equal(t, c.threshold, cfg.Threshold)
			assert.Equal(t, 0, cfg.StandTile)
			assert.Equal(t, actor.TileRange{Start: 5, End: 8}, cfg.Right)
			assert.Equal(t, actor.TileRange{Start: 1, End: 4}, cfg.Left)
			require.Len(t, cfg.FrameDurations, 4)
			assert.Equal(t, c.frame, cfg.FrameDurations[0])
		})
	}
}

func TestAnimationSpecConfig(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
		check   func(t *testing.T, cfg actor.Config)
	}{
		{
			name: "empty_uses_defaults",
			src:  `{}`,
			check: func(t *testing.T, cfg actor.Config) {
				assert.Equal(t, actor.DefaultConfig(), cfg)
			},
		},
		{
			name: "explicit_zero_threshold",
			src:  `threshold: 0`,
			check: func(t *testing.T, cfg actor.Config) {
				assert.Equal(t, 0.0, cfg.Threshold)
			},
		},
		{
			name: "two_frame_ranges",
			src: `
stand_tile: 4
right: {start: 0, end: 1}
left: {start: 2, end: 3}
frame_ms: [50, 75]
`,
			check: func(t *testing.T, cfg actor.Config) {
				assert.Equal(t, 4, cfg.StandTile)
				assert.Equal(t, []time.Duration{50 * time.Millisecond, 75 * time.Millisecond}, cfg.FrameDurations)
			},
		},
		{name: "duration_count_mismatch", src: `frame_ms: [100, 100]`, wantErr: true},
		{name: "negative_threshold", src: `threshold: -0.5`, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec AnimationSpec
			require.NoError(t, yaml.Unmarshal([]byte(c.src), &spec))
			cfg, err := spec.Config()
			if c.wantErr {
				assert.ErrorIs(t, err, actor.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			c.check(t, cfg)
		})
	}
}

func TestActorKind(t *testing.T) {
	for src, want := range map[string]actor.Kind{"": actor.KindPlayer, "Player": actor.KindPlayer, " machine ": actor.KindMachine} {
		k, err := (&ActorSpec{Kind: src}).ActorKind()
		require.NoError(t, err, src)
		assert.Equal(t, want, k, src)
	}
	_, err := (&ActorSpec{Kind: "robot"}).ActorKind()
	assert.Error(t, err)
}

func TestYAMLColor(t *testing.T) {
	var out struct {
		C YAMLColor `yaml:"c"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`c: "#ff800080"`), &out))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x80}, out.C.Color)

	assert.Error(t, yaml.Unmarshal([]byte(`c: "#fff"`), &out))
	assert.Error(t, yaml.Unmarshal([]byte(`c: [1, 2]`), &out))
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "prefabs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prefabs", "actor_player.yaml"), []byte("name: override\nkind: machine\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	spec, err := LoadActorSpec("prefabs/actor_player.yaml")
	require.NoError(t, err)
	assert.Equal(t, "override", spec.Name)

	spec, err = LoadActorSpec("actor_machine.yaml")
	require.NoError(t, err)
	assert.Equal(t, "machine", spec.Name)
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"patrol.tengo", "scripts/patrol.tengo", "prefabs/scripts/patrol.tengo"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "dx", name)
	}
}
