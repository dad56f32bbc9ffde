package component

import "github.com/jakecoffman/cp"

// Transform is the world position of an entity: the cell centre for tiles,
// the top-left of the view for the camera.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Vector returns the position as a Chipmunk vector.
func (t Transform) Vector() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

// Scale returns the scale with zero axes treated as 1.
func (t Transform) Scale() cp.Vector {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return cp.Vector{X: sx, Y: sy}
}

var TransformComponent = NewComponent[Transform]()
