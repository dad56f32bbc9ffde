package component

import "github.com/milk9111/deadzone/autotile"

// WaterTile wraps a water autotiler placed on the level grid.
type WaterTile struct {
	Tile *autotile.WaterTile
}

var WaterTileComponent = NewComponent[WaterTile]()
