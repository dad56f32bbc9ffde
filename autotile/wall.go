package autotile

import (
	"image/color"
	"log"

	"golang.org/x/image/colornames"
)

// WallMaskCount is the number of distinct wall neighbour masks.
const WallMaskCount = 1 << 10

// WallMask describes the walls around a dead-zone tile. The IsTop flags are
// only meaningful when the matching neighbour exists; they are not checked.
type WallMask struct {
	Above bool
	Below bool
	Left  bool
	Right bool

	BelowIsTop      bool
	LeftIsTop       bool
	RightIsTop      bool
	LowerLeftIsTop  bool
	LowerRightIsTop bool

	// Alt selects the alternate top texture for this cell.
	Alt bool
}

const (
	wallAbove uint16 = 1 << iota
	wallBelow
	wallLeft
	wallRight
	wallBelowIsTop
	wallLeftIsTop
	wallRightIsTop
	wallLowerLeftIsTop
	wallLowerRightIsTop
	wallAlt
)

// Bits packs the mask into its table index.
func (m WallMask) Bits() uint16 {
	var b uint16
	set := func(on bool, bit uint16) {
		if on {
			b |= bit
		}
	}
	set(m.Above, wallAbove)
	set(m.Below, wallBelow)
	set(m.Left, wallLeft)
	set(m.Right, wallRight)
	set(m.BelowIsTop, wallBelowIsTop)
	set(m.LeftIsTop, wallLeftIsTop)
	set(m.RightIsTop, wallRightIsTop)
	set(m.LowerLeftIsTop, wallLowerLeftIsTop)
	set(m.LowerRightIsTop, wallLowerRightIsTop)
	set(m.Alt, wallAlt)
	return b
}

// WallMaskFromBits is the inverse of Bits. Bits above the low ten are ignored.
func WallMaskFromBits(b uint16) WallMask {
	return WallMask{
		Above:           b&wallAbove != 0,
		Below:           b&wallBelow != 0,
		Left:            b&wallLeft != 0,
		Right:           b&wallRight != 0,
		BelowIsTop:      b&wallBelowIsTop != 0,
		LeftIsTop:       b&wallLeftIsTop != 0,
		RightIsTop:      b&wallRightIsTop != 0,
		LowerLeftIsTop:  b&wallLowerLeftIsTop != 0,
		LowerRightIsTop: b&wallLowerRightIsTop != 0,
		Alt:             b&wallAlt != 0,
	}
}

// WallState is the full set of layers drawn for one wall tile.
type WallState struct {
	Primary          Frame
	Left             Frame
	Right            Frame
	FrontEdge        Frame
	BackEdge         Frame
	LowerLeftCorner  Frame
	LowerRightCorner Frame
}

// FrontWallState is the state of a wall that has not been autotiled yet.
func FrontWallState() WallState {
	return WallState{Primary: WallFront}
}

// IsFront reports whether the primary layer is the front face.
func (s WallState) IsFront() bool { return s.Primary == WallFront }

var wallTable = buildWallTable()

func buildWallTable() [WallMaskCount]WallState {
	var table [WallMaskCount]WallState
	for b := range table {
		table[b] = deriveWallState(WallMaskFromBits(uint16(b)))
	}
	return table
}

// deriveWallState applies the layer rules in order. Later rules read the
// primary frame chosen by the first one.
func deriveWallState(m WallMask) WallState {
	var s WallState

	// A wall below turns this tile into the walkable top.
	switch {
	case m.Below && m.Alt:
		s.Primary = WallTopB
	case m.Below:
		s.Primary = WallTopA
	default:
		s.Primary = WallFront
	}

	// Front-to-front seams need a cap.
	if m.Below && !m.BelowIsTop {
		s.FrontEdge = FrontEdge
	}

	// A top neighbour always hides the border; a front neighbour only hides it
	// on a front tile.
	front := s.Primary == WallFront
	if !(m.LeftIsTop || (front && m.Left)) {
		if front {
			s.Left = WallLeftFront
		} else {
			s.Left = WallLeftTop
		}
	}
	if !(m.RightIsTop || (front && m.Right)) {
		if front {
			s.Right = WallRightFront
		} else {
			s.Right = WallRightTop
		}
	}

	if !m.Above {
		s.BackEdge = BackEdge
	}

	if m.BelowIsTop && m.LeftIsTop && !m.LowerLeftIsTop {
		s.LowerLeftCorner = LowerLeftCorner
	}
	if m.BelowIsTop && m.RightIsTop && !m.LowerRightIsTop {
		s.LowerRightCorner = LowerRightCorner
	}

	return s
}

// SelectWallFrames returns the layers for a wall with the given neighbours.
func SelectWallFrames(m WallMask) WallState {
	return wallTable[m.Bits()]
}

// Wall is a dead-zone wall tile.
type Wall struct {
	Width     float64
	Height    float64
	Placement Placement

	strip     FrameStrip
	body      Body
	state     WallState
	shape     Shape
	altHitbox bool
}

// NewWall creates a front-facing wall with no border layers.
func NewWall(width, height float64, strip FrameStrip) *Wall {
	return NewWallWithState(width, height, strip, FrontWallState())
}

// NewWallWithState creates a wall with explicit layers.
func NewWallWithState(width, height float64, strip FrameStrip, state WallState) *Wall {
	return &Wall{
		Width:     width,
		Height:    height,
		Placement: defaultPlacement(),
		strip:     strip,
		state:     state,
	}
}

// SetStrip replaces the wall sheet.
func (w *Wall) SetStrip(s FrameStrip) { w.strip = s }

// Strip returns the wall sheet, if any.
func (w *Wall) Strip() FrameStrip { return w.strip }

// SetBody attaches the collision body and applies the current shape to it.
func (w *Wall) SetBody(b Body) {
	w.body = b
	applyShape(b, w.shape, w.Width, w.Height)
}

// State returns every layer of the wall.
func (w *Wall) State() WallState { return w.state }

func (w *Wall) PrimaryFrame() Frame          { return w.state.Primary }
func (w *Wall) LeftFrame() Frame             { return w.state.Left }
func (w *Wall) RightFrame() Frame            { return w.state.Right }
func (w *Wall) FrontEdgeFrame() Frame        { return w.state.FrontEdge }
func (w *Wall) BackEdgeFrame() Frame         { return w.state.BackEdge }
func (w *Wall) LowerLeftCornerFrame() Frame  { return w.state.LowerLeftCorner }
func (w *Wall) LowerRightCornerFrame() Frame { return w.state.LowerRightCorner }

// IsFrontWall reports whether the wall shows its front face.
func (w *Wall) IsFrontWall() bool { return w.state.IsFront() }

// Shape returns the current collision shape.
func (w *Wall) Shape() Shape { return w.shape }

// Autotile replaces every layer from the neighbour mask. A wall that stops
// being a front wall gets its full box back.
func (w *Wall) Autotile(m WallMask) WallState {
	w.state = SelectWallFrames(m)
	if w.altHitbox && !w.state.IsFront() {
		w.shape = ShapeFullBox
		w.altHitbox = false
		applyShape(w.body, w.shape, w.Width, w.Height)
	}
	return w.state
}

// UseAlternateHitbox shrinks a front wall's collision box to its top quarter
// band so actors can walk in front of it. Top walls keep their full box.
// Only the game calls this; the level designer keeps full boxes.
func (w *Wall) UseAlternateHitbox() bool {
	if !w.state.IsFront() {
		return false
	}
	w.shape = ShapeTopHalfBox
	w.altHitbox = true
	applyShape(w.body, w.shape, w.Width, w.Height)
	return true
}

// AlternateHitbox reports whether UseAlternateHitbox took effect.
func (w *Wall) AlternateHitbox() bool { return w.altHitbox }

// Draw emits the body layers at the tile's own position.
func (w *Wall) Draw(c Canvas) {
	if w.strip == nil {
		log.Println("autotile: draw called on wall with nil strip")
		return
	}

	w.drawFrame(c, w.state.Primary, colornames.Red, w.Placement)
	for _, f := range []Frame{
		w.state.Left,
		w.state.Right,
		w.state.FrontEdge,
		w.state.LowerLeftCorner,
		w.state.LowerRightCorner,
	} {
		if f.Set() {
			w.drawFrame(c, f, colornames.Red, w.Placement)
		}
	}
}

// DrawTop emits the back rim one tile up so it covers the tile behind this
// one. It must run after Draw has run for every wall in the scene.
func (w *Wall) DrawTop(c Canvas) {
	if w.strip == nil {
		log.Println("autotile: draw top called on wall with nil strip")
		return
	}
	if !w.state.BackEdge.Set() {
		return
	}

	w.drawFrame(c, w.state.BackEdge, colornames.White, w.Placement.offset(0, -w.Height))
	if !w.state.IsFront() {
		w.drawFrame(c, BackLine, colornames.White, w.Placement)
	}
}

func (w *Wall) drawFrame(c Canvas, f Frame, tint color.Color, p Placement) {
	w.strip.SetFrame(int(f))
	c.Draw(w.strip, tint, p)
}

// DrawPasses draws every wall's body layers, then every wall's top layers.
func DrawPasses(c Canvas, walls ...*Wall) {
	for _, w := range walls {
		if w != nil {
			w.Draw(c)
		}
	}
	for _, w := range walls {
		if w != nil {
			w.DrawTop(c)
		}
	}
}
