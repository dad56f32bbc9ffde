package component

// GridCell is the level grid coordinate a tile entity occupies.
type GridCell struct {
	X int
	Y int
}

var GridCellComponent = NewComponent[GridCell]()
