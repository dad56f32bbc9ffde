package autotile

import "github.com/jakecoffman/cp"

// Shape is the collision footprint of a tile.
type Shape int

const (
	// ShapeFullBox covers the whole tile.
	ShapeFullBox Shape = iota
	// ShapeTopHalfBox covers the upper half of the tile only.
	ShapeTopHalfBox
)

func (s Shape) String() string {
	switch s {
	case ShapeFullBox:
		return "full"
	case ShapeTopHalfBox:
		return "top-half"
	default:
		return "unknown"
	}
}

// Box returns the half extents and local offset of the shape for a tile of
// the given size.
func (s Shape) Box(width, height float64) (halfW, halfH float64, offset cp.Vector) {
	if s == ShapeTopHalfBox {
		return width / 2, height / 4, cp.Vector{X: 0, Y: -height / 4}
	}
	return width / 2, height / 2, cp.Vector{}
}

func applyShape(b Body, s Shape, width, height float64) {
	if b == nil {
		return
	}
	halfW, halfH, offset := s.Box(width, height)
	b.SetBox(halfW, halfH, offset)
}
