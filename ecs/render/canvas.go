package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/deadzone/autotile"
)

type imageStrip interface {
	Image() *ebiten.Image
}

// ScreenCanvas draws autotile quads onto an ebiten image through a camera.
type ScreenCanvas struct {
	Screen *ebiten.Image
	CamX   float64
	CamY   float64
	Zoom   float64
}

// NewScreenCanvas wraps screen with the camera at the origin.
func NewScreenCanvas(screen *ebiten.Image) *ScreenCanvas {
	return &ScreenCanvas{Screen: screen, Zoom: 1}
}

// Draw emits one quad of the strip's current frame.
func (c *ScreenCanvas) Draw(strip autotile.FrameStrip, tint color.Color, p autotile.Placement) {
	if c == nil || c.Screen == nil {
		return
	}
	src, ok := strip.(imageStrip)
	if !ok {
		log.Printf("render: strip %T has no image", strip)
		return
	}
	img := src.Image()
	if img == nil {
		return
	}

	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	sx, sy := p.Scale.X, p.Scale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-p.Origin.X, -p.Origin.Y)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(p.Angle)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate((p.Position.X-c.CamX)*zoom, (p.Position.Y-c.CamY)*zoom)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	c.Screen.DrawImage(img, op)
}
