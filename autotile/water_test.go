package autotile

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestSelectWaterFrameTruthTable(t *testing.T) {
	cases := []struct {
		above, below, left, right bool
		want                      int
	}{
		{false, false, false, false, 0},
		{true, false, false, false, 8},
		{false, true, false, false, 10},
		{true, true, false, false, 1},
		{false, false, true, false, 11},
		{true, false, true, false, 7},
		{false, true, true, false, 6},
		{true, true, true, false, 15},
		{false, false, false, true, 9},
		{true, false, false, true, 4},
		{false, true, false, true, 5},
		{true, true, false, true, 13},
		{false, false, true, true, 2},
		{true, false, true, true, 12},
		{false, true, true, true, 14},
		{true, true, true, true, 3},
	}

	seen := make(map[int]bool)
	for _, c := range cases {
		m := WaterMask{Above: c.above, Below: c.below, Left: c.left, Right: c.right}
		got := SelectWaterFrame(m)
		assert.Equalf(t, c.want, got, "mask %+v", m)
		seen[got] = true
	}
	assert.Len(t, seen, WaterFrameCount, "every mask maps to a distinct frame")
}

func TestSelectWaterFrameNotMirrored(t *testing.T) {
	aboveLeft := SelectWaterFrame(WaterMask{Above: true, Left: true})
	aboveRight := SelectWaterFrame(WaterMask{Above: true, Right: true})
	assert.NotEqual(t, aboveLeft, aboveRight)
}

func TestWaterMaskBitsRoundTrip(t *testing.T) {
	for b := uint8(0); b < WaterFrameCount; b++ {
		require.Equal(t, b, WaterMaskFromBits(b).Bits())
	}
}

func TestWaterShapeFor(t *testing.T) {
	topHalf := map[int]bool{1: true, 3: true, 5: true, 6: true, 10: true, 11: true, 12: true, 13: true, 14: true, 15: true}
	for frame := -1; frame <= WaterFrameCount; frame++ {
		want := ShapeFullBox
		if topHalf[frame] {
			want = ShapeTopHalfBox
		}
		assert.Equalf(t, want, WaterShapeFor(frame), "frame %d", frame)
	}
}

func TestShapeBox(t *testing.T) {
	halfW, halfH, off := ShapeFullBox.Box(32, 32)
	assert.Equal(t, 16.0, halfW)
	assert.Equal(t, 16.0, halfH)
	assert.Equal(t, cp.Vector{}, off)

	halfW, halfH, off = ShapeTopHalfBox.Box(32, 32)
	assert.Equal(t, 16.0, halfW)
	assert.Equal(t, 8.0, halfH)
	assert.Equal(t, cp.Vector{X: 0, Y: -8}, off)
}

func TestWaterTileSetStripRewinds(t *testing.T) {
	strip := &fakeStrip{frame: 7}
	tile := NewWaterTile(32, 32)
	tile.SetStrip(strip)
	assert.Equal(t, 0, strip.Frame())
}

func TestWaterTileAutotileGameMode(t *testing.T) {
	strip := &fakeStrip{}
	body := &fakeBody{}
	tile := NewWaterTile(32, 32)
	tile.SetStrip(strip)
	tile.SetBody(body)

	frame := tile.Autotile(WaterMask{Above: true, Below: true}, false)
	require.Equal(t, 1, frame)
	assert.Equal(t, 1, tile.Frame())
	assert.Equal(t, 1, strip.Frame())
	assert.Equal(t, ShapeTopHalfBox, tile.Shape())

	got, ok := body.last()
	require.True(t, ok)
	assert.Equal(t, box{halfW: 16, halfH: 8, offset: cp.Vector{Y: -8}}, got)

	tile.Autotile(WaterMask{Above: true}, false)
	assert.Equal(t, 8, tile.Frame())
	assert.Equal(t, ShapeFullBox, tile.Shape())
	got, _ = body.last()
	assert.Equal(t, box{halfW: 16, halfH: 16}, got)
}

func TestWaterTileLevelDesignKeepsShape(t *testing.T) {
	strip := &fakeStrip{}
	body := &fakeBody{}
	tile := NewWaterTile(32, 32)
	tile.SetStrip(strip)
	tile.SetBody(body)
	boxesBefore := len(body.boxes)

	tile.Autotile(WaterMask{Above: true, Below: true, Left: true, Right: true}, true)
	assert.Equal(t, 3, tile.Frame())
	assert.Equal(t, 3, strip.Frame())
	assert.Equal(t, ShapeFullBox, tile.Shape(), "level design frames leave the shape alone")
	assert.Len(t, body.boxes, boxesBefore)

	tile.SetFrameLevelDesign(13)
	assert.Equal(t, 13, tile.Frame())
	assert.Equal(t, ShapeFullBox, tile.Shape())
}

func TestWaterTileWithoutStripOrBody(t *testing.T) {
	tile := NewWaterTile(32, 32)
	assert.NotPanics(t, func() {
		tile.SetFrame(5)
		tile.Draw(&recordingCanvas{})
	})
	assert.Equal(t, 5, tile.Frame())
	assert.Equal(t, ShapeTopHalfBox, tile.Shape())
}

func TestWaterTileDraw(t *testing.T) {
	strip := &fakeStrip{}
	tile := NewWaterTile(32, 32)
	tile.SetStrip(strip)
	tile.Placement.Position = cp.Vector{X: 48, Y: 80}
	tile.SetFrame(12)

	c := &recordingCanvas{}
	tile.Draw(c)
	require.Len(t, c.quads, 1)
	assert.Equal(t, 12, c.quads[0].frame)
	assert.Equal(t, cp.Vector{X: 48, Y: 80}, c.quads[0].pos)
	assert.Equal(t, colornames.White, c.quads[0].tint)
}
