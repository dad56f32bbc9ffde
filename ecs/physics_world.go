package ecs

import (
	"log"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeWater
)

// BodyKind selects the collision type of a tile body.
type BodyKind int

const (
	BodySolid BodyKind = iota
	BodyWater
)

// PhysicsWorld owns the Chipmunk space that holds tile collision shapes. The
// space is used as a shape registry for queries; it is not stepped here.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*TileBody
}

// NewPhysicsWorld creates an empty space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	return &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*TileBody),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// EnsureTileBody returns the static body for e, creating it at center if needed.
func (pw *PhysicsWorld) EnsureTileBody(e Entity, center cp.Vector, kind BodyKind) *TileBody {
	if pw == nil || pw.space == nil {
		return nil
	}
	if tb, ok := pw.bodies[e]; ok {
		return tb
	}
	body := cp.NewStaticBody()
	body.SetPosition(center)
	pw.space.AddBody(body)

	tb := &TileBody{space: pw.space, body: body, kind: kind}
	pw.bodies[e] = tb
	return tb
}

// TileBody returns the body registered for e.
func (pw *PhysicsWorld) TileBody(e Entity) (*TileBody, bool) {
	if pw == nil {
		return nil, false
	}
	tb, ok := pw.bodies[e]
	return tb, ok
}

// RemoveTileBody drops e's body and shape from the space.
func (pw *PhysicsWorld) RemoveTileBody(e Entity) {
	if pw == nil {
		return
	}
	tb, ok := pw.bodies[e]
	if !ok {
		return
	}
	tb.clearShape()
	if tb.body != nil && pw.space != nil {
		pw.space.RemoveBody(tb.body)
	}
	delete(pw.bodies, e)
}

// Prune removes bodies whose entity no longer passes keep.
func (pw *PhysicsWorld) Prune(keep func(Entity) bool) {
	if pw == nil {
		return
	}
	for e := range pw.bodies {
		if !keep(e) {
			pw.RemoveTileBody(e)
		}
	}
}

// Len returns the number of registered tile bodies.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// TileBody is a static Chipmunk body whose single box shape can be replaced.
type TileBody struct {
	space *cp.Space
	body  *cp.Body
	shape *cp.Shape
	kind  BodyKind

	halfW, halfH float64
	offset       cp.Vector
}

// SetBox replaces the current shape with an axis-aligned box centred on the
// body position plus offset.
func (tb *TileBody) SetBox(halfW, halfH float64, offset cp.Vector) {
	if tb == nil || tb.space == nil || tb.body == nil {
		log.Println("physics: SetBox called on detached tile body")
		return
	}
	tb.clearShape()

	bb := cp.BB{
		L: offset.X - halfW,
		B: offset.Y - halfH,
		R: offset.X + halfW,
		T: offset.Y + halfH,
	}
	shape := cp.NewBox2(tb.body, bb, 0)
	shape.SetFriction(0.9)
	if tb.kind == BodyWater {
		shape.SetCollisionType(collisionTypeWater)
		shape.SetSensor(true)
	} else {
		shape.SetCollisionType(collisionTypeSolid)
	}
	tb.space.AddShape(shape)

	tb.shape = shape
	tb.halfW, tb.halfH, tb.offset = halfW, halfH, offset
}

// Shape returns the current Chipmunk shape, if any.
func (tb *TileBody) Shape() *cp.Shape {
	if tb == nil {
		return nil
	}
	return tb.shape
}

// Box returns the half extents and offset of the current box.
func (tb *TileBody) Box() (halfW, halfH float64, offset cp.Vector) {
	if tb == nil {
		return 0, 0, cp.Vector{}
	}
	return tb.halfW, tb.halfH, tb.offset
}

// BB returns the world-space bounds of the current shape.
func (tb *TileBody) BB() cp.BB {
	if tb == nil || tb.body == nil {
		return cp.BB{}
	}
	p := tb.body.Position()
	return cp.BB{
		L: p.X + tb.offset.X - tb.halfW,
		B: p.Y + tb.offset.Y - tb.halfH,
		R: p.X + tb.offset.X + tb.halfW,
		T: p.Y + tb.offset.Y + tb.halfH,
	}
}

func (tb *TileBody) clearShape() {
	if tb.shape != nil && tb.space != nil {
		tb.space.RemoveShape(tb.shape)
	}
	tb.shape = nil
}
