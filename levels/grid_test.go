package levels

import (
	"testing"

	"github.com/milk9111/deadzone/autotile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadRows(t *testing.T) {
	_, err := NewGrid(nil)
	require.ErrorIs(t, err, ErrEmptyLevel)

	_, err = NewGrid([]string{"##", "#"})
	require.Error(t, err)

	_, err = NewGrid([]string{"#x"})
	require.Error(t, err)
}

func TestGridOutOfBoundsIsEmpty(t *testing.T) {
	g, err := NewGrid([]string{"#"})
	require.NoError(t, err)

	assert.Equal(t, CellEmpty, g.At(-1, 0))
	assert.Equal(t, CellEmpty, g.At(0, 1))
	assert.Equal(t, autotile.WallMask{}, g.WallMaskAt(0, 0))
	assert.Equal(t, autotile.WaterMask{}, g.WaterMaskAt(0, 0))

	g.Set(5, 5, CellWall)
	g.SetAlt(-1, 0, true)
	assert.False(t, g.Alt(-1, 0))
}

func TestWaterMaskAt(t *testing.T) {
	g, err := NewGrid([]string{
		".#.",
		"#~.",
		".#.",
	})
	require.NoError(t, err)

	m := g.WaterMaskAt(1, 1)
	assert.Equal(t, autotile.WaterMask{Above: true, Below: true, Left: true}, m)
	assert.Equal(t, 15, autotile.SelectWaterFrame(m))
}

func TestWaterIgnoresWaterNeighbours(t *testing.T) {
	g, err := NewGrid([]string{
		"~~~",
		"~~~",
		"###",
	})
	require.NoError(t, err)
	assert.Equal(t, autotile.WaterMask{Below: true}, g.WaterMaskAt(1, 1))
	assert.Equal(t, autotile.WaterMask{}, g.WaterMaskAt(1, 0))
}

func TestWallMaskAtTopClassification(t *testing.T) {
	g, err := NewGrid([]string{
		".....",
		".###.",
		"##.##",
		"##.##",
	})
	require.NoError(t, err)

	assert.True(t, g.IsTopWall(1, 2))
	assert.False(t, g.IsTopWall(1, 3), "bottom row has nothing below it")
	assert.False(t, g.IsTopWall(2, 1), "wall above a gap")

	m := g.WallMaskAt(1, 1)
	assert.Equal(t, autotile.WallMask{
		Below:          true,
		Right:          true,
		BelowIsTop:     true,
		LowerLeftIsTop: true,
	}, m)

	st := autotile.SelectWallFrames(m)
	assert.Equal(t, autotile.WallTopA, st.Primary)
	assert.Equal(t, autotile.FrameNone, st.FrontEdge, "wall below is a top wall")
	assert.Equal(t, autotile.BackEdge, st.BackEdge)
	assert.Equal(t, autotile.WallLeftTop, st.Left)
}

func TestWallMaskAtCorner(t *testing.T) {
	g, err := NewGrid([]string{
		"##.",
		"###",
		"###",
	})
	require.NoError(t, err)

	// (1,0): below (1,1) is top, left (0,0) is top, lower-left (0,1) is top.
	m := g.WallMaskAt(1, 0)
	assert.True(t, m.BelowIsTop)
	assert.True(t, m.LeftIsTop)
	assert.True(t, m.LowerLeftIsTop)
	assert.Equal(t, autotile.FrameNone, autotile.SelectWallFrames(m).LowerLeftCorner)

	g.Clear(0, 1)
	m = g.WallMaskAt(1, 0)
	assert.False(t, m.LeftIsTop, "left wall lost the wall below it")
}

func TestWallMaskAlt(t *testing.T) {
	g, err := NewGrid([]string{"#", "#"})
	require.NoError(t, err)
	g.SetAlt(0, 0, true)

	st := autotile.SelectWallFrames(g.WallMaskAt(0, 0))
	assert.Equal(t, autotile.WallTopB, st.Primary)
}

func TestGridRowsAndCount(t *testing.T) {
	rows := []string{"#H#", "~.~"}
	g, err := NewGrid(rows)
	require.NoError(t, err)
	assert.Equal(t, rows, g.Rows())
	assert.Equal(t, 1, g.Count(CellHost))
	assert.Equal(t, 2, g.Count(CellWall))
}

func TestGridRestyleKeepsCells(t *testing.T) {
	lvl := &Level{Rows: []string{"##", "##"}, AltPattern: "x == 0"}
	g, err := GridFromLevel(lvl)
	require.NoError(t, err)
	assert.True(t, g.Alt(0, 0))
	assert.False(t, g.Alt(1, 0))

	g.Clear(1, 1)
	lvl.AltPattern = "x == 1"
	lvl.AltCells = [][2]int{{0, 1}}
	restyled, err := g.Restyle(lvl)
	require.NoError(t, err)

	assert.Equal(t, []string{"##", "#."}, restyled.Rows())
	assert.False(t, restyled.Alt(0, 0))
	assert.True(t, restyled.Alt(1, 0))
	assert.True(t, restyled.Alt(0, 1))
	assert.True(t, g.Alt(0, 0), "original grid is untouched")

	lvl.AltPattern = ""
	lvl.AltCells = nil
	plain, err := g.Restyle(lvl)
	require.NoError(t, err)
	assert.False(t, plain.Alt(0, 0))
	assert.False(t, plain.Alt(1, 0))
}
