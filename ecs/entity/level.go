package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/deadzone/autotile"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/levels"
	"github.com/milk9111/deadzone/prefabs"
)

const defaultTileSize = 32.0

// StripSource hands out a frame cursor per tile for a named sheet.
type StripSource interface {
	TileStrip(name string) autotile.FrameStrip
}

// LevelOptions configures LoadLevelToWorld.
type LevelOptions struct {
	TileSize float64
	Strips   StripSource
}

type sizedStrip interface {
	FrameSize() (int, int)
}

// LoadLevelToWorld creates a tile entity for every water and wall cell and a
// host entity for every host cell. Tiles start dirty so the autotile system
// picks their frames on the next update.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, opts LevelOptions) (*levels.Grid, error) {
	grid, err := levels.GridFromLevel(lvl)
	if err != nil {
		return nil, fmt.Errorf("level: build grid: %w", err)
	}

	tileSize := opts.TileSize
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}

	boundsEntity := world.CreateEntity()
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent, component.LevelBounds{
		Cols:   grid.Width(),
		Rows:   grid.Height(),
		Width:  float64(grid.Width()) * tileSize,
		Height: float64(grid.Height()) * tileSize,
	}); err != nil {
		return nil, fmt.Errorf("level: add bounds: %w", err)
	}

	fixed := lvl.WallOverrides()

	hosts := 0
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			switch grid.At(x, y) {
			case levels.CellWater:
				_, err = newWaterTile(world, x, y, tileSize, opts.Strips)
			case levels.CellWall:
				state, ok := fixed[[2]int{x, y}]
				_, err = newWallTile(world, x, y, tileSize, opts.Strips, state, ok, grid.Alt(x, y))
			case levels.CellHost:
				_, err = NewHost(world, x, y, tileSize)
				hosts++
			default:
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("level: cell %d,%d: %w", x, y, err)
			}
		}
	}

	world.Events().Push(ecs.Event{Type: ecs.EventLevelReset, Data: ecs.LevelReset{Total: hosts}})
	return grid, nil
}

func placementFor(x, y int, tileSize float64, strip autotile.FrameStrip) autotile.Placement {
	p := autotile.Placement{
		Position: cellCenter(x, y, tileSize),
		Scale:    cp.Vector{X: 1, Y: 1},
	}
	if s, ok := strip.(sizedStrip); ok {
		fw, fh := s.FrameSize()
		if fw > 0 && fh > 0 {
			p.Origin = cp.Vector{X: float64(fw) / 2, Y: float64(fh) / 2}
			p.Scale = cp.Vector{X: tileSize / float64(fw), Y: tileSize / float64(fh)}
		}
	}
	return p
}

func cellCenter(x, y int, tileSize float64) cp.Vector {
	return cp.Vector{X: (float64(x) + 0.5) * tileSize, Y: (float64(y) + 0.5) * tileSize}
}

func stripFor(src StripSource, name string) autotile.FrameStrip {
	if src == nil {
		return nil
	}
	return src.TileStrip(name)
}

func addTileComponents(world *ecs.World, e ecs.Entity, x, y int, tileSize float64, layer int, sensor bool) error {
	center := cellCenter(x, y, tileSize)
	if err := ecs.Add(world, e, component.TransformComponent, component.Transform{X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(world, e, component.GridCellComponent, component.GridCell{X: x, Y: y}); err != nil {
		return fmt.Errorf("add grid cell: %w", err)
	}
	if err := ecs.Add(world, e, component.RenderLayerComponent, component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	if err := ecs.Add(world, e, component.PhysicsBodyComponent, component.PhysicsBody{Width: tileSize, Height: tileSize, Sensor: sensor}); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	return nil
}

func newWaterTile(world *ecs.World, x, y int, tileSize float64, strips StripSource) (ecs.Entity, error) {
	strip := stripFor(strips, prefabs.SheetWater)
	tile := autotile.NewWaterTile(tileSize, tileSize)
	tile.Placement = placementFor(x, y, tileSize, strip)
	if strip != nil {
		tile.SetStrip(strip)
	}

	e := world.CreateEntity()
	if err := addTileComponents(world, e, x, y, tileSize, component.LayerWater, true); err != nil {
		return 0, fmt.Errorf("water: %w", err)
	}
	if err := ecs.Add(world, e, component.WaterTileComponent, component.WaterTile{Tile: tile}); err != nil {
		return 0, fmt.Errorf("water: add tile: %w", err)
	}
	if err := ecs.Add(world, e, component.AutotileDirtyComponent, component.AutotileDirty{}); err != nil {
		return 0, fmt.Errorf("water: mark dirty: %w", err)
	}
	return e, nil
}

func newWallTile(world *ecs.World, x, y int, tileSize float64, strips StripSource, state autotile.WallState, fixed, alt bool) (ecs.Entity, error) {
	strip := stripFor(strips, prefabs.SheetWall)
	var wall *autotile.Wall
	if fixed {
		wall = autotile.NewWallWithState(tileSize, tileSize, strip, state)
	} else {
		wall = autotile.NewWall(tileSize, tileSize, strip)
	}
	wall.Placement = placementFor(x, y, tileSize, strip)

	e := world.CreateEntity()
	if err := addTileComponents(world, e, x, y, tileSize, component.LayerWall, false); err != nil {
		return 0, fmt.Errorf("wall: %w", err)
	}
	if err := ecs.Add(world, e, component.WallTileComponent, component.WallTile{Wall: wall, Alt: alt, Fixed: fixed}); err != nil {
		return 0, fmt.Errorf("wall: add tile: %w", err)
	}
	if fixed {
		return e, nil
	}
	if err := ecs.Add(world, e, component.AutotileDirtyComponent, component.AutotileDirty{}); err != nil {
		return 0, fmt.Errorf("wall: mark dirty: %w", err)
	}
	return e, nil
}

// DestroyTile queues the removal of the tile at x, y. Its neighbours are
// re-autotiled on the next update.
func DestroyTile(world *ecs.World, x, y int) {
	world.Events().Push(ecs.Event{Type: ecs.EventTileDestroyed, Data: ecs.TileDestroyed{X: x, Y: y}})
}
