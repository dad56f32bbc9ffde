package render

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// FilmStrip is a sprite sheet sliced into equally sized frames, read left to
// right then top to bottom, with a cursor on the current frame.
type FilmStrip struct {
	sheet  *ebiten.Image
	layout stripLayout
	frame  int
}

type stripLayout struct {
	frameW, frameH int
	cols, frames   int
}

func newStripLayout(sheetW, sheetH, frameW, frameH int) (stripLayout, error) {
	if frameW <= 0 || frameH <= 0 {
		return stripLayout{}, fmt.Errorf("render: invalid frame size %dx%d", frameW, frameH)
	}
	cols := sheetW / frameW
	rows := sheetH / frameH
	if cols == 0 || rows == 0 {
		return stripLayout{}, fmt.Errorf("render: sheet %dx%d smaller than frame %dx%d", sheetW, sheetH, frameW, frameH)
	}
	return stripLayout{frameW: frameW, frameH: frameH, cols: cols, frames: cols * rows}, nil
}

func (l stripLayout) rect(frame int) image.Rectangle {
	x := (frame % l.cols) * l.frameW
	y := (frame / l.cols) * l.frameH
	return image.Rect(x, y, x+l.frameW, y+l.frameH)
}

// NewFilmStrip slices sheet into frameW x frameH frames.
func NewFilmStrip(sheet *ebiten.Image, frameW, frameH int) (*FilmStrip, error) {
	if sheet == nil {
		return nil, fmt.Errorf("render: nil sheet")
	}
	b := sheet.Bounds()
	layout, err := newStripLayout(b.Dx(), b.Dy(), frameW, frameH)
	if err != nil {
		return nil, err
	}
	return &FilmStrip{sheet: sheet, layout: layout}, nil
}

// SetFrame moves the cursor. Frames outside the sheet are logged and ignored.
func (s *FilmStrip) SetFrame(frame int) {
	if s == nil {
		return
	}
	if frame < 0 || frame >= s.layout.frames {
		log.Printf("render: frame %d out of range [0,%d)", frame, s.layout.frames)
		return
	}
	s.frame = frame
}

// Frame returns the cursor position.
func (s *FilmStrip) Frame() int {
	if s == nil {
		return 0
	}
	return s.frame
}

// Size returns the number of frames on the sheet.
func (s *FilmStrip) Size() int {
	if s == nil {
		return 0
	}
	return s.layout.frames
}

// FrameSize returns the width and height of one frame.
func (s *FilmStrip) FrameSize() (int, int) {
	if s == nil {
		return 0, 0
	}
	return s.layout.frameW, s.layout.frameH
}

// Image returns the sub-image of the current frame.
func (s *FilmStrip) Image() *ebiten.Image {
	if s == nil || s.sheet == nil {
		return nil
	}
	sub, ok := s.sheet.SubImage(s.layout.rect(s.frame).Add(s.sheet.Bounds().Min)).(*ebiten.Image)
	if !ok {
		return nil
	}
	return sub
}

// Clone returns a strip sharing the sheet with its own cursor at frame 0.
func (s *FilmStrip) Clone() *FilmStrip {
	if s == nil {
		return nil
	}
	return &FilmStrip{sheet: s.sheet, layout: s.layout}
}

// PlaceholderSheet builds a single-row sheet of frames shaded from base, used
// when a tile sheet image is missing.
func PlaceholderSheet(frameW, frameH, frames int, base color.Color) *ebiten.Image {
	if frames <= 0 {
		frames = 1
	}
	sheet := ebiten.NewImage(frameW*frames, frameH)
	r, g, b, a := base.RGBA()
	for i := 0; i < frames; i++ {
		shade := 1 - 0.5*float64(i)/float64(frames)
		c := color.NRGBA{
			R: uint8(float64(r>>8) * shade),
			G: uint8(float64(g>>8) * shade),
			B: uint8(float64(b>>8) * shade),
			A: uint8(a >> 8),
		}
		rect := image.Rect(i*frameW, 0, (i+1)*frameW, frameH)
		if sub, ok := sheet.SubImage(rect).(*ebiten.Image); ok {
			sub.Fill(c)
		}
	}
	return sheet
}
