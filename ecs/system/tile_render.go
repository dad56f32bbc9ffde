package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/deadzone/autotile"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/render"
)

// TileRenderSystem draws water and walls. Draw runs the body pass; DrawTop
// adds wall back edges once every tile has been drawn.
type TileRenderSystem struct {
	camEntity ecs.Entity
	canvas    autotile.Canvas
}

func NewTileRenderSystem() *TileRenderSystem {
	return &TileRenderSystem{}
}

// NewTileRenderSystemWithCanvas draws to c instead of the frame's screen.
func NewTileRenderSystemWithCanvas(c autotile.Canvas) *TileRenderSystem {
	return &TileRenderSystem{canvas: c}
}

func (r *TileRenderSystem) Update(*ecs.World) {}

func (r *TileRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}
	c := r.canvasFor(w, screen)
	if c == nil {
		return
	}
	for _, e := range sortedByLayer(w, w.Query(component.GridCellComponent.Kind())) {
		if water, ok := ecs.Get(w, e, component.WaterTileComponent); ok && water.Tile != nil {
			water.Tile.Draw(c)
			continue
		}
		if wall, ok := ecs.Get(w, e, component.WallTileComponent); ok && wall.Wall != nil {
			wall.Wall.Draw(c)
		}
	}
}

func (r *TileRenderSystem) DrawTop(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}
	c := r.canvasFor(w, screen)
	if c == nil {
		return
	}
	for _, e := range sortedByLayer(w, w.Query(component.WallTileComponent.Kind())) {
		if wall, _ := ecs.Get(w, e, component.WallTileComponent); wall.Wall != nil {
			wall.Wall.DrawTop(c)
		}
	}
}

func (r *TileRenderSystem) canvasFor(w *ecs.World, screen *ebiten.Image) autotile.Canvas {
	if r.canvas != nil {
		return r.canvas
	}
	if screen == nil {
		return nil
	}

	view, camEntity := findCameraView(w, r.camEntity)
	r.camEntity = camEntity
	c := render.NewScreenCanvas(screen)
	c.CamX, c.CamY, c.Zoom = view.x, view.y, view.zoom
	return c
}

func sortedByLayer(w *ecs.World, entities []ecs.Entity) []ecs.Entity {
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}
