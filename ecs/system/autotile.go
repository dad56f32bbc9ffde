package system

import (
	"log"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/levels"
)

// AutotileSystem recomputes tile frames from the level grid. Tiles are
// re-autotiled when marked dirty and around cells destroyed at runtime.
type AutotileSystem struct {
	grid        *levels.Grid
	levelDesign bool
}

// NewAutotileSystem reads masks from grid. In level design mode water keeps
// its collision shape and walls keep their full boxes.
func NewAutotileSystem(grid *levels.Grid, levelDesign bool) *AutotileSystem {
	return &AutotileSystem{grid: grid, levelDesign: levelDesign}
}

func (s *AutotileSystem) Grid() *levels.Grid { return s.grid }

// SetGrid swaps the grid after a level change and marks every tile dirty.
func (s *AutotileSystem) SetGrid(w *ecs.World, grid *levels.Grid) {
	s.grid = grid
	MarkAllTilesDirty(w)
}

func (s *AutotileSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.grid == nil {
		return
	}

	for _, evt := range w.Events().Take(ecs.EventTileDestroyed) {
		d, ok := evt.Data.(ecs.TileDestroyed)
		if !ok {
			log.Printf("autotile: tile destroyed event with payload %T", evt.Data)
			continue
		}
		s.destroyAt(w, d.X, d.Y)
	}

	for _, e := range w.Query(component.AutotileDirtyComponent.Kind(), component.GridCellComponent.Kind()) {
		cell, _ := ecs.Get(w, e, component.GridCellComponent)
		s.autotile(w, e, cell)
		ecs.Remove(w, e, component.AutotileDirtyComponent)
	}
}

func (s *AutotileSystem) autotile(w *ecs.World, e ecs.Entity, cell component.GridCell) {
	if water, ok := ecs.Get(w, e, component.WaterTileComponent); ok && water.Tile != nil {
		water.Tile.Autotile(s.grid.WaterMaskAt(cell.X, cell.Y), s.levelDesign)
		return
	}
	wall, ok := ecs.Get(w, e, component.WallTileComponent)
	if !ok || wall.Wall == nil || wall.Fixed {
		return
	}
	wall.Wall.Autotile(s.grid.WallMaskAt(cell.X, cell.Y))
	if !s.levelDesign {
		wall.Wall.UseAlternateHitbox()
	}
}

// destroyAt clears the cell, removes its tile and marks every tile whose mask
// reads the cell as dirty. Wall "is top" flags reach two rows up.
func (s *AutotileSystem) destroyAt(w *ecs.World, x, y int) {
	s.grid.Clear(x, y)

	for _, e := range w.Query(component.GridCellComponent.Kind()) {
		cell, _ := ecs.Get(w, e, component.GridCellComponent)
		dx, dy := cell.X-x, cell.Y-y
		if dx == 0 && dy == 0 {
			if pw := w.PhysicsWorld(); pw != nil {
				pw.RemoveTileBody(e)
			}
			w.DestroyEntity(e)
			continue
		}
		if dx >= -1 && dx <= 1 && dy >= -2 && dy <= 1 {
			_ = ecs.Add(w, e, component.AutotileDirtyComponent, component.AutotileDirty{})
		}
	}
}

// MarkAllTilesDirty queues every tile for autotiling.
func MarkAllTilesDirty(w *ecs.World) {
	for _, e := range w.Query(component.GridCellComponent.Kind()) {
		_ = ecs.Add(w, e, component.AutotileDirtyComponent, component.AutotileDirty{})
	}
}
