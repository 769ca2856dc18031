package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tileactor/assets"
	"github.com/milk9111/tileactor/obj"
	"github.com/milk9111/tileactor/prefabs"
)

func TestAffects(t *testing.T) {
	player := &actorEntity{file: "actor_player.yaml", spec: &prefabs.ActorSpec{}}
	machine := &actorEntity{file: "actor_machine.yaml", spec: &prefabs.ActorSpec{Script: "patrol.tengo"}}

	cases := []struct {
		name    string
		changed []string
		player  bool
		machine bool
	}{
		{"player_spec", []string{"actor_player.yaml"}, true, false},
		{"machine_spec", []string{"actor_machine.yaml"}, false, true},
		{"patrol_script", []string{"scripts/patrol.tengo"}, false, true},
		{"other_script", []string{"scripts/chase.tengo"}, false, false},
		{"unrelated", []string{"camera.yaml"}, false, false},
		{"both", []string{"actor_player.yaml", "scripts/patrol.tengo"}, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.player, affects(player, c.changed))
			assert.Equal(t, c.machine, affects(machine, c.changed))
		})
	}
}

func TestSpawnActorRejectsTakenName(t *testing.T) {
	cases := []struct {
		name      string
		replacing string
	}{
		{"startup", ""},
		{"reload_of_other_actor", "machine"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			world := obj.NewCollisionWorld(0, 400, 300)
			held := world.AddActor("player", 120, 288, obj.Box{W: 12, H: 24})

			_, err := spawnActor("actor_player.yaml", world, nil, c.replacing, false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `"player" already in use`)

			body, ok := world.Actor("player")
			require.True(t, ok)
			assert.Same(t, held, body)
		})
	}
}

func TestColliderBox(t *testing.T) {
	cases := []struct {
		name  string
		spec  prefabs.ColliderSpec
		scale float64
		want  obj.Box
	}{
		{"sized", prefabs.ColliderSpec{Width: 10, Height: 20}, 2, obj.Box{W: 20, H: 40}},
		{"offset", prefabs.ColliderSpec{Width: 10, Height: 20, OffsetX: 3, OffsetY: -1}, 2, obj.Box{W: 20, H: 40, OffsetX: 6, OffsetY: -2}},
		{"frame_fallback", prefabs.ColliderSpec{OffsetX: 1}, 1, obj.Box{W: assets.ActorFrameW, H: assets.ActorFrameH, OffsetX: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, colliderBox(c.spec, c.scale))
		})
	}
}
