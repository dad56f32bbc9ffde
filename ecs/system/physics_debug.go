package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/deadzone/ecs"
)

// PhysicsDebugSystem outlines every tile hitbox over the finished frame:
// solid boxes in green, water sensors in blue.
type PhysicsDebugSystem struct{}

func NewPhysicsDebugSystem() *PhysicsDebugSystem { return &PhysicsDebugSystem{} }

func (s *PhysicsDebugSystem) Update(*ecs.World) {}

func (s *PhysicsDebugSystem) DrawTop(w *ecs.World, screen *ebiten.Image) {
	if w == nil || w.PhysicsWorld() == nil || screen == nil {
		return
	}
	DrawPhysicsDebug(w.PhysicsWorld(), w, func(x1, y1, x2, y2 float64, c color.Color) {
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, c)
	})
}

// LineFunc draws one screen-space line.
type LineFunc func(x1, y1, x2, y2 float64, c color.Color)

// DrawPhysicsDebug draws the shapes of pw through line with the world's
// camera applied.
func DrawPhysicsDebug(pw *ecs.PhysicsWorld, w *ecs.World, line LineFunc) {
	if pw == nil || w == nil || line == nil {
		return
	}
	view, _ := findCameraView(w, 0)
	cp.DrawSpace(pw.Space(), &physicsDebugDrawer{line: line, view: view})
}

// physicsDebugDrawer implements cp.Drawer. Tile bodies are boxes, so only
// polygons are drawn.
type physicsDebugDrawer struct {
	line LineFunc
	view cameraView
}

func (d *physicsDebugDrawer) DrawCircle(cp.Vector, float64, float64, cp.FColor, cp.FColor, interface{}) {
}

func (d *physicsDebugDrawer) DrawSegment(cp.Vector, cp.Vector, cp.FColor, interface{}) {}

func (d *physicsDebugDrawer) DrawFatSegment(cp.Vector, cp.Vector, float64, cp.FColor, cp.FColor, interface{}) {
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 || count > len(verts) {
		return
	}
	c := toNRGBA(fill)
	for i := 0; i < count; i++ {
		x1, y1 := d.view.toScreen(verts[i])
		x2, y2 := d.view.toScreen(verts[(i+1)%count])
		d.line(x1, y1, x2, y2, c)
	}
}

func (d *physicsDebugDrawer) DrawDot(float64, cp.Vector, cp.FColor, interface{}) {}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Sensor() {
		return cp.FColor{R: 0.2, G: 0.4, B: 1, A: 0.9}
	}
	return cp.FColor{R: 0.1, G: 0.8, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
