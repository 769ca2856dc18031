package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/tileactor/actor"
	"github.com/milk9111/tileactor/assets"
	"github.com/milk9111/tileactor/common"
	"github.com/milk9111/tileactor/component"
	"github.com/milk9111/tileactor/obj"
	"github.com/milk9111/tileactor/prefabs"
	"github.com/milk9111/tileactor/system"
)

// actorEntity ties an actor to its sprite, physics body and driver.
type actorEntity struct {
	file   string
	spec   *prefabs.ActorSpec
	actor  *actor.Actor
	anim   *component.TileAnimation
	body   *obj.ActorBody
	mover  *system.ScriptMover
	speed  float64
	status string
}

// spawnActor builds the actor described by the prefab file. When at is
// non-nil the actor is placed there instead of at the prefab's transform.
// replacing names the actor being respawned, if any; any other live body
// with the same name makes the spawn fail.
func spawnActor(file string, world *obj.CollisionWorld, at *[2]float64, replacing string, debug bool) (*actorEntity, error) {
	spec, err := prefabs.LoadActorSpec(file)
	if err != nil {
		return nil, err
	}
	kind, err := spec.ActorKind()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	cfg, err := spec.Animation.Config()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	name := spec.Name
	if name == "" {
		name = file
	}
	if _, taken := world.Actor(name); taken && name != replacing {
		return nil, fmt.Errorf("%s: actor name %q already in use", file, name)
	}

	var mover *system.ScriptMover
	if kind == actor.KindMachine && spec.Script != "" {
		mover, err = system.NewScriptMover(spec.Script, spec.MoveSpeed)
		if err != nil {
			return nil, err
		}
	}

	var bodyColor color.Color = colornames.Steelblue
	if spec.Color != nil {
		bodyColor = spec.Color.Color
	}
	anim := component.NewTileAnimation(assets.ActorSheet(bodyColor), assets.ActorFrameW, assets.ActorFrameH)

	x, y := spec.Transform.X, spec.Transform.Y
	if y == 0 {
		y = common.FloorY - assets.ActorFrameH*spec.Scale()/2
	}
	if at != nil {
		x, y = at[0], at[1]
	}
	minX, maxX := world.Bounds()
	x = common.Clamp(x, minX+1, maxX-1)

	a := actor.New(name, kind, x, y, cfg, anim)
	a.Scale = spec.Scale()

	box := colliderBox(spec.Collider, a.Scale)
	e := &actorEntity{
		file:   file,
		spec:   spec,
		actor:  a,
		anim:   anim,
		body:   world.AddActor(name, x, y, box),
		mover:  mover,
		speed:  spec.MoveSpeed,
		status: actor.DirectionNone.String(),
	}

	a.OnCommand = func(a *actor.Actor, cmd actor.Command) {
		e.status = a.Controller().Direction().String()
		if debug {
			log.Printf("actor %s (%s): %s", a.Name, a.Kind, cmd)
		}
	}
	return e, nil
}

// colliderBox scales the prefab collider to world units, falling back to the
// sprite frame when no size is given.
func colliderBox(c prefabs.ColliderSpec, scale float64) obj.Box {
	w, h := c.Width, c.Height
	if w <= 0 || h <= 0 {
		w, h = assets.ActorFrameW, assets.ActorFrameH
	}
	return obj.Box{W: w * scale, H: h * scale, OffsetX: c.OffsetX * scale, OffsetY: c.OffsetY * scale}
}

// step decides this tick's horizontal step from input or script.
func (e *actorEntity) step(input *obj.Input) float64 {
	switch e.actor.Kind {
	case actor.KindPlayer:
		if input == nil {
			return 0
		}
		return input.MoveX * e.speed
	case actor.KindMachine:
		dx, err := e.mover.Step(e.actor.X)
		if err != nil {
			log.Printf("actor %s: script %s: %v", e.actor.Name, e.mover.ScriptPath(), err)
			return 0
		}
		return dx
	}
	return 0
}

// sync copies the body position into the actor and advances its sprite.
func (e *actorEntity) sync(dt time.Duration) {
	x, y := e.body.Position()
	e.actor.MoveTo(x, y)
	e.anim.Update(dt)
}

func (e *actorEntity) draw(screen *ebiten.Image) {
	fw, fh := e.anim.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(fw)/2, -float64(fh)/2)
	op.GeoM.Scale(e.actor.Scale, e.actor.Scale)
	op.GeoM.Translate(e.actor.X, e.actor.Y)
	e.anim.Draw(screen, op)
}

func (e *actorEntity) String() string {
	return fmt.Sprintf("%s[%s] x=%.1f dir=%s tile=%d", e.actor.Name, e.actor.Kind, e.actor.X, e.status, e.anim.CurrentTile())
}
