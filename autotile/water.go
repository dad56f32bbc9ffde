package autotile

import (
	"log"

	"golang.org/x/image/colornames"
)

// WaterFrameCount is the number of frames in a water sheet.
const WaterFrameCount = 16

// WaterMask records which sides of a water tile touch ground.
type WaterMask struct {
	Above bool
	Below bool
	Left  bool
	Right bool
}

const (
	waterAbove uint8 = 1 << iota
	waterBelow
	waterLeft
	waterRight
)

// Bits packs the mask into its table index.
func (m WaterMask) Bits() uint8 {
	var b uint8
	if m.Above {
		b |= waterAbove
	}
	if m.Below {
		b |= waterBelow
	}
	if m.Left {
		b |= waterLeft
	}
	if m.Right {
		b |= waterRight
	}
	return b
}

// WaterMaskFromBits is the inverse of Bits. Bits above the low four are ignored.
func WaterMaskFromBits(b uint8) WaterMask {
	return WaterMask{
		Above: b&waterAbove != 0,
		Below: b&waterBelow != 0,
		Left:  b&waterLeft != 0,
		Right: b&waterRight != 0,
	}
}

// Indexed by WaterMask.Bits. Left and right frames are separate pieces of
// art, so the table is not mirror symmetric.
var waterFrames = [WaterFrameCount]int{
	0,  // none
	8,  // above
	10, // below
	1,  // above, below
	11, // left
	7,  // above, left
	6,  // below, left
	15, // above, below, left
	9,  // right
	4,  // above, right
	5,  // below, right
	13, // above, below, right
	2,  // left, right
	12, // above, left, right
	14, // below, left, right
	3,  // above, below, left, right
}

var waterTopHalf = [WaterFrameCount]bool{
	1: true, 3: true, 5: true, 6: true, 10: true,
	11: true, 12: true, 13: true, 14: true, 15: true,
}

// SelectWaterFrame returns the water frame for the given ground neighbours.
func SelectWaterFrame(m WaterMask) int {
	return waterFrames[m.Bits()]
}

// WaterShapeFor returns the collision shape used by a water frame.
func WaterShapeFor(frame int) Shape {
	if frame >= 0 && frame < WaterFrameCount && waterTopHalf[frame] {
		return ShapeTopHalfBox
	}
	return ShapeFullBox
}

// WaterTile is a single autotiled water cell.
type WaterTile struct {
	Width     float64
	Height    float64
	Placement Placement

	strip FrameStrip
	body  Body
	frame int
	shape Shape
}

// NewWaterTile creates a water tile of the given size with a full-box shape.
func NewWaterTile(width, height float64) *WaterTile {
	return &WaterTile{
		Width:     width,
		Height:    height,
		Placement: defaultPlacement(),
	}
}

// SetStrip attaches the water sheet and rewinds it to the first frame.
func (t *WaterTile) SetStrip(s FrameStrip) {
	t.strip = s
	if s != nil {
		s.SetFrame(0)
	}
}

// Strip returns the attached sheet, if any.
func (t *WaterTile) Strip() FrameStrip { return t.strip }

// SetBody attaches the collision body. The current shape is applied to it.
func (t *WaterTile) SetBody(b Body) {
	t.body = b
	applyShape(b, t.shape, t.Width, t.Height)
}

// Frame returns the current frame.
func (t *WaterTile) Frame() int { return t.frame }

// Shape returns the current collision shape.
func (t *WaterTile) Shape() Shape { return t.shape }

// SetFrame moves the sheet to frame and swaps the collision box to match.
func (t *WaterTile) SetFrame(frame int) {
	t.applyFrame(frame)
	t.shape = WaterShapeFor(frame)
	applyShape(t.body, t.shape, t.Width, t.Height)
}

// SetFrameLevelDesign moves the sheet to frame without touching the
// collision box. Used by the level designer to force art.
func (t *WaterTile) SetFrameLevelDesign(frame int) {
	t.applyFrame(frame)
}

// Autotile picks the frame for m and applies it. In level-design mode the
// collision box is left alone.
func (t *WaterTile) Autotile(m WaterMask, levelDesign bool) int {
	frame := SelectWaterFrame(m)
	if levelDesign {
		t.SetFrameLevelDesign(frame)
	} else {
		t.SetFrame(frame)
	}
	return frame
}

func (t *WaterTile) applyFrame(frame int) {
	if t.strip != nil {
		t.strip.SetFrame(frame)
	}
	t.frame = frame
}

// Draw emits the current frame.
func (t *WaterTile) Draw(c Canvas) {
	if t.strip == nil {
		log.Println("autotile: draw called on water tile with nil strip")
		return
	}
	t.strip.SetFrame(t.frame)
	c.Draw(t.strip, colornames.White, t.Placement)
}
