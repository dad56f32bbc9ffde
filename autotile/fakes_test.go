package autotile

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

type fakeStrip struct {
	frame int
	sets  []int
}

func (s *fakeStrip) SetFrame(frame int) {
	s.frame = frame
	s.sets = append(s.sets, frame)
}

func (s *fakeStrip) Frame() int { return s.frame }

type box struct {
	halfW, halfH float64
	offset       cp.Vector
}

type fakeBody struct {
	boxes []box
}

func (b *fakeBody) SetBox(halfW, halfH float64, offset cp.Vector) {
	b.boxes = append(b.boxes, box{halfW: halfW, halfH: halfH, offset: offset})
}

func (b *fakeBody) last() (box, bool) {
	if len(b.boxes) == 0 {
		return box{}, false
	}
	return b.boxes[len(b.boxes)-1], true
}

type quad struct {
	frame int
	tint  color.Color
	pos   cp.Vector
}

type recordingCanvas struct {
	quads []quad
}

func (c *recordingCanvas) Draw(strip FrameStrip, tint color.Color, p Placement) {
	c.quads = append(c.quads, quad{frame: strip.Frame(), tint: tint, pos: p.Position})
}

func (c *recordingCanvas) frames() []int {
	out := make([]int, 0, len(c.quads))
	for _, q := range c.quads {
		out = append(out, q.frame)
	}
	return out
}
