package autotile

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// FrameStrip is a sprite sheet with a movable frame cursor.
type FrameStrip interface {
	SetFrame(frame int)
	Frame() int
}

// Body is a physics body whose collision shape can be swapped for an
// axis-aligned box. Offsets are local and in screen space (negative Y is up).
type Body interface {
	SetBox(halfWidth, halfHeight float64, offset cp.Vector)
}

// Placement positions a single quad in world space.
type Placement struct {
	Position cp.Vector
	Origin   cp.Vector
	Scale    cp.Vector
	Angle    float64
}

// Canvas emits one quad for the strip's current frame.
type Canvas interface {
	Draw(strip FrameStrip, tint color.Color, p Placement)
}

func (p Placement) offset(dx, dy float64) Placement {
	p.Position = p.Position.Add(cp.Vector{X: dx, Y: dy})
	return p
}

func defaultPlacement() Placement {
	return Placement{Scale: cp.Vector{X: 1, Y: 1}}
}
