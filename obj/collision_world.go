package obj

import (
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeSolid
)

// CollisionWorld moves actor bodies along the floor of a walled room. Each
// body is driven by a per-tick horizontal step and reports how far it really
// travelled, so an actor pushing into a wall reads as standing still.
type CollisionWorld struct {
	space  *cp.Space
	bodies map[string]*ActorBody

	minX, maxX float64
}

// ActorBody is a chipmunk body standing in for one actor.
type ActorBody struct {
	Name  string
	body  *cp.Body
	shape *cp.Shape
	lastX float64
}

// NewCollisionWorld creates a room spanning minX..maxX with walls at both
// ends and a floor at floorY.
func NewCollisionWorld(minX, maxX, floorY float64) *CollisionWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	cw := &CollisionWorld{
		space:  space,
		bodies: make(map[string]*ActorBody),
		minX:   minX,
		maxX:   maxX,
	}
	cw.addWall(cp.Vector{X: minX, Y: floorY - 10000}, cp.Vector{X: minX, Y: floorY + 10000})
	cw.addWall(cp.Vector{X: maxX, Y: floorY - 10000}, cp.Vector{X: maxX, Y: floorY + 10000})
	return cw
}

func (cw *CollisionWorld) addWall(a, b cp.Vector) {
	seg := cp.NewSegment(cw.space.StaticBody, a, b, 1)
	seg.SetElasticity(0)
	seg.SetFriction(0)
	seg.SetCollisionType(collisionTypeSolid)
	cw.space.AddShape(seg)
}

// Bounds returns the inner wall positions.
func (cw *CollisionWorld) Bounds() (minX, maxX float64) {
	return cw.minX, cw.maxX
}

// Box is an actor's collision box. The offset moves the box relative to
// the body center.
type Box struct {
	W, H             float64
	OffsetX, OffsetY float64
}

// AddActor creates (or replaces) the body for name centered at (x, y).
func (cw *CollisionWorld) AddActor(name string, x, y float64, box Box) *ActorBody {
	cw.RemoveActor(name)
	w, h := box.W, box.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x, Y: y})
	bb := cp.BB{
		L: box.OffsetX - w/2,
		B: box.OffsetY - h/2,
		R: box.OffsetX + w/2,
		T: box.OffsetY + h/2,
	}
	shape := cp.NewBox2(body, bb, 0)
	shape.SetElasticity(0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeActor)
	// Actors pass through each other; only walls block.
	shape.SetFilter(cp.NewShapeFilter(0, 1<<1, 1<<0))

	cw.space.AddBody(body)
	cw.space.AddShape(shape)

	ab := &ActorBody{Name: name, body: body, shape: shape, lastX: x}
	cw.bodies[name] = ab
	return ab
}

// RemoveActor drops the body for name, if any.
func (cw *CollisionWorld) RemoveActor(name string) {
	ab, ok := cw.bodies[name]
	if !ok {
		return
	}
	cw.space.RemoveShape(ab.shape)
	cw.space.RemoveBody(ab.body)
	delete(cw.bodies, name)
}

// Actor returns the body registered under name.
func (cw *CollisionWorld) Actor(name string) (*ActorBody, bool) {
	ab, ok := cw.bodies[name]
	return ab, ok
}

// SetStep sets the horizontal distance the body should cover in the next
// Step of length dt.
func (ab *ActorBody) SetStep(dx, dt float64) {
	if ab == nil || dt <= 0 {
		return
	}
	ab.body.SetVelocity(dx/dt, 0)
}

// Position returns the body's center.
func (ab *ActorBody) Position() (x, y float64) {
	p := ab.body.Position()
	return p.X, p.Y
}

// Delta returns how far the body moved horizontally during the last Step.
func (ab *ActorBody) Delta() float64 {
	return ab.body.Position().X - ab.lastX
}

// Step advances the simulation by dt seconds.
func (cw *CollisionWorld) Step(dt float64) {
	for _, ab := range cw.bodies {
		ab.lastX = ab.body.Position().X
	}
	cw.space.Step(dt)
	for _, ab := range cw.bodies {
		// Keep actors on their row; walls only resolve horizontally.
		v := ab.body.Velocity()
		ab.body.SetVelocity(v.X, 0)
	}
}
