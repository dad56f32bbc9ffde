package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// PhysicsSystem gives every tile a static body in the world's physics space
// and drops bodies of destroyed tiles.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{} }

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		pw = ecs.NewPhysicsWorld()
		w.SetPhysicsWorld(pw)
	}

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, ok := pw.TileBody(e); ok {
			continue
		}
		cfg, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)

		kind := ecs.BodySolid
		if cfg.Sensor {
			kind = ecs.BodyWater
		}
		tb := pw.EnsureTileBody(e, t.Vector(), kind)

		if water, ok := ecs.Get(w, e, component.WaterTileComponent); ok && water.Tile != nil {
			water.Tile.SetBody(tb)
			continue
		}
		if wall, ok := ecs.Get(w, e, component.WallTileComponent); ok && wall.Wall != nil {
			wall.Wall.SetBody(tb)
			continue
		}
		tb.SetBox(cfg.Width/2, cfg.Height/2, cp.Vector{})
	}

	pw.Prune(w.IsAlive)
}
