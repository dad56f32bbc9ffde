package component

// LevelBounds stores the grid and world-space size of the current level.
type LevelBounds struct {
	Cols   int
	Rows   int
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
