package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/milk9111/deadzone/autotile"
	"github.com/milk9111/deadzone/levels"
)

var (
	styleWater    = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Background(tcell.ColorBlack)
	styleWaterTop = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue).Background(tcell.ColorBlack)
	styleFront    = tcell.StyleDefault.Foreground(tcell.ColorDarkRed).Background(tcell.ColorBlack)
	styleTop      = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleHost     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// previewCell is the glyph and style shown for one autotiled grid cell.
type previewCell struct {
	glyph rune
	style tcell.Style
}

// waterGlyphs are indexed by water frame.
var waterGlyphs = [autotile.WaterFrameCount]rune{
	'~', '=', '≈', '≡', '╘', '╒', '╓', '╙', '^', '<', 'v', '>', '╤', '╧', '╥', '╨',
}

func wallGlyph(s autotile.WallState) rune {
	switch s.Primary {
	case autotile.WallTopA:
		if s.BackEdge.Set() {
			return '▀'
		}
		return '▓'
	case autotile.WallTopB:
		if s.BackEdge.Set() {
			return '▔'
		}
		return '▒'
	}
	if s.BackEdge.Set() {
		return '▄'
	}
	return '█'
}

// pinnedWalls holds the level's wall overrides by cell.
type pinnedWalls map[[2]int]autotile.WallState

// autotileCell runs the autotilers for one grid cell. Pinned walls keep their
// frames, as they do in the game.
func autotileCell(g *levels.Grid, pinned pinnedWalls, x, y int) (previewCell, bool) {
	switch g.At(x, y) {
	case levels.CellWater:
		frame := autotile.SelectWaterFrame(g.WaterMaskAt(x, y))
		st := styleWater
		if autotile.WaterShapeFor(frame) == autotile.ShapeTopHalfBox {
			st = styleWaterTop
		}
		return previewCell{glyph: waterGlyphs[frame], style: st}, true
	case levels.CellWall:
		s, ok := pinned[[2]int{x, y}]
		if !ok {
			s = autotile.SelectWallFrames(g.WallMaskAt(x, y))
		}
		st := styleTop
		if s.IsFront() {
			st = styleFront
		}
		return previewCell{glyph: wallGlyph(s), style: st}, true
	case levels.CellHost:
		return previewCell{glyph: 'H', style: styleHost}, true
	}
	return previewCell{}, false
}

// drawText writes s at x, y and returns the column after it.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawPreview renders the title on the first row and the autotiled grid
// below it, clipped to the screen.
func drawPreview(screen tcell.Screen, title string, g *levels.Grid, pinned pinnedWalls) {
	screen.Clear()
	w, h := screen.Size()
	drawText(screen, 0, 0, runewidth.Truncate(title, w, "…"), styleText)

	for y := 0; y < g.Height() && y+1 < h; y++ {
		for x := 0; x < g.Width() && x < w; x++ {
			c, ok := autotileCell(g, pinned, x, y)
			if !ok {
				continue
			}
			screen.SetContent(x, y+1, c.glyph, nil, c.style)
		}
	}
}

// runPreview shows the level on an initialised screen until q or Esc is
// pressed.
func runPreview(screen tcell.Screen, title string, g *levels.Grid, pinned pinnedWalls) error {
	drawPreview(screen, title, g, pinned)
	screen.Show()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			drawPreview(screen, title, g, pinned)
			screen.Show()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case nil:
			return nil
		}
	}
}
