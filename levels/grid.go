package levels

import (
	"fmt"

	"github.com/milk9111/deadzone/autotile"
)

// Cell is one character of a level row.
type Cell byte

const (
	CellEmpty Cell = '.'
	CellWall  Cell = '#'
	CellWater Cell = '~'
	CellHost  Cell = 'H'
)

func (c Cell) valid() bool {
	switch c {
	case CellEmpty, CellWall, CellWater, CellHost:
		return true
	}
	return false
}

// Grid is the mutable tile grid a level is played on. Cells outside the grid
// read as empty.
type Grid struct {
	width, height int
	cells         []Cell
	alt           []bool
}

// NewGrid builds a grid from equal-length rows, top row first.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}
	w := len(rows[0])
	g := &Grid{
		width:  w,
		height: len(rows),
		cells:  make([]Cell, w*len(rows)),
		alt:    make([]bool, w*len(rows)),
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("levels: row %d has width %d, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			c := Cell(row[x])
			if !c.valid() {
				return nil, fmt.Errorf("levels: unknown cell %q at %d,%d", row[x], x, y)
			}
			g.cells[y*w+x] = c
		}
	}
	return g, nil
}

// GridFromLevel builds the grid and applies the level's alternate texture
// pattern and cells.
func GridFromLevel(lvl *Level) (*Grid, error) {
	if lvl == nil {
		return nil, ErrEmptyLevel
	}
	g, err := NewGrid(lvl.Rows)
	if err != nil {
		return nil, err
	}
	if err := g.applyLevelAlt(lvl); err != nil {
		return nil, err
	}
	return g, nil
}

// Restyle returns a copy of g with the alternate flags recomputed from lvl.
// Cells keep their current contents, so tiles destroyed at runtime stay gone.
func (g *Grid) Restyle(lvl *Level) (*Grid, error) {
	if lvl == nil {
		return nil, ErrEmptyLevel
	}
	out := &Grid{
		width:  g.width,
		height: g.height,
		cells:  append([]Cell(nil), g.cells...),
		alt:    make([]bool, len(g.alt)),
	}
	if err := out.applyLevelAlt(lvl); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Grid) applyLevelAlt(lvl *Level) error {
	pattern, err := AltPatternForLevel(lvl)
	if err != nil {
		return err
	}
	if pattern != nil {
		if err := g.ApplyAltPattern(pattern); err != nil {
			return err
		}
	}
	for _, c := range lvl.AltCells {
		g.SetAlt(c[0], c[1], true)
	}
	return nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at x, y.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellEmpty
	}
	return g.cells[y*g.width+x]
}

// Set replaces a cell. Out of range writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Clear empties a cell, as when a tile is destroyed.
func (g *Grid) Clear(x, y int) {
	g.Set(x, y, CellEmpty)
}

func (g *Grid) IsWall(x, y int) bool { return g.At(x, y) == CellWall }

// IsTopWall reports a wall that has another wall directly below it.
func (g *Grid) IsTopWall(x, y int) bool {
	return g.IsWall(x, y) && g.IsWall(x, y+1)
}

func (g *Grid) Alt(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.alt[y*g.width+x]
}

func (g *Grid) SetAlt(x, y int, on bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.alt[y*g.width+x] = on
}

// ApplyAltPattern sets the alternate flag of every cell from the pattern.
func (g *Grid) ApplyAltPattern(p *AltPattern) error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			on, err := p.Eval(x, y)
			if err != nil {
				return err
			}
			g.alt[y*g.width+x] = on
		}
	}
	return nil
}

// Count returns the number of cells of a kind.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// WaterMaskAt reports which sides of x, y touch a wall.
func (g *Grid) WaterMaskAt(x, y int) autotile.WaterMask {
	return autotile.WaterMask{
		Above: g.IsWall(x, y-1),
		Below: g.IsWall(x, y+1),
		Left:  g.IsWall(x-1, y),
		Right: g.IsWall(x+1, y),
	}
}

// WallMaskAt gathers the neighbour flags the wall autotiler reads.
func (g *Grid) WallMaskAt(x, y int) autotile.WallMask {
	return autotile.WallMask{
		Above:           g.IsWall(x, y-1),
		Below:           g.IsWall(x, y+1),
		Left:            g.IsWall(x-1, y),
		Right:           g.IsWall(x+1, y),
		BelowIsTop:      g.IsTopWall(x, y+1),
		LeftIsTop:       g.IsTopWall(x-1, y),
		RightIsTop:      g.IsTopWall(x+1, y),
		LowerLeftIsTop:  g.IsTopWall(x-1, y+1),
		LowerRightIsTop: g.IsTopWall(x+1, y+1),
		Alt:             g.Alt(x, y),
	}
}

// Rows renders the grid back to level rows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		b := make([]byte, g.width)
		for x := 0; x < g.width; x++ {
			b[x] = byte(g.cells[y*g.width+x])
		}
		rows[y] = string(b)
	}
	return rows
}
