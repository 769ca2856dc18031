package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tileactor/actor"
)

var _ actor.AnimatedVisual = (*TileAnimation)(nil)

const tick = 100 * time.Millisecond

func durations(n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = tick
	}
	return out
}

func TestTileAnimationPlayback(t *testing.T) {
	cases := []struct {
		name  string
		loop  bool
		steps []time.Duration
		want  []int
		play  bool
	}{
		{"loop_wraps", true, []time.Duration{tick, tick, tick, tick, tick}, []int{6, 7, 8, 5, 6}, true},
		{"once_holds_last", false, []time.Duration{tick, tick, tick, tick}, []int{6, 7, 8, 8}, false},
		{"partial_tick", true, []time.Duration{tick / 2, tick / 2, tick / 4}, []int{5, 6, 6}, true},
		{"big_step", true, []time.Duration{3 * tick}, []int{8}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewTileAnimation(nil, 16, 16)
			a.PlayAnimation(durations(4), 5, 8, c.loop)
			require.Equal(t, 5, a.CurrentTile())
			for i, dt := range c.steps {
				a.Update(dt)
				assert.Equal(t, c.want[i], a.CurrentTile(), "step %d", i)
			}
			assert.Equal(t, c.play, a.Playing())
		})
	}
}

func TestTileAnimationUnevenDurations(t *testing.T) {
	a := NewTileAnimation(nil, 16, 16)
	a.PlayAnimation([]time.Duration{tick, 3 * tick}, 1, 2, true)
	a.Update(tick)
	assert.Equal(t, 2, a.CurrentTile())
	a.Update(2 * tick)
	assert.Equal(t, 2, a.CurrentTile())
	a.Update(tick)
	assert.Equal(t, 1, a.CurrentTile())
}

func TestTileAnimationStop(t *testing.T) {
	a := NewTileAnimation(nil, 16, 16)
	a.PlayAnimation(durations(4), 1, 4, true)
	a.Update(tick)
	a.StopAnimation()
	a.Update(10 * tick)
	assert.Equal(t, 2, a.CurrentTile())
	assert.False(t, a.Playing())

	a.SetStaticFrame(0)
	assert.Equal(t, 0, a.CurrentTile())
}

func TestTileAnimationIgnoresBadRange(t *testing.T) {
	a := NewTileAnimation(nil, 16, 16)
	a.SetStaticFrame(3)
	a.PlayAnimation(durations(4), 4, 1, true)
	a.PlayAnimation(nil, 1, 4, true)
	assert.False(t, a.Playing())
	assert.Equal(t, 3, a.CurrentTile())
}

func TestTileAnimationDrivenByActor(t *testing.T) {
	a := NewTileAnimation(nil, 16, 16)
	hero := actor.New("hero", actor.KindPlayer, 0, 0, actor.DefaultConfig(), a)

	hero.MoveTo(-1, 0)
	assert.True(t, a.Playing())
	assert.Equal(t, 1, a.CurrentTile())
	a.Update(tick)
	assert.Equal(t, 2, a.CurrentTile())

	hero.MoveTo(-1, 0)
	assert.False(t, a.Playing())
	assert.Equal(t, 0, a.CurrentTile())
}
