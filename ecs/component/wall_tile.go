package component

import "github.com/milk9111/deadzone/autotile"

// WallTile wraps a dead zone wall placed on the level grid. Alt selects the
// alternate top texture.
type WallTile struct {
	Wall *autotile.Wall
	Alt  bool
	// Fixed walls keep the frames the level designer gave them.
	Fixed bool
}

var WallTileComponent = NewComponent[WallTile]()
