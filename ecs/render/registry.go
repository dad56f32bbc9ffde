package render

import (
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/deadzone/autotile"
	"github.com/milk9111/deadzone/prefabs"
	"golang.org/x/image/colornames"
)

// StripRegistry holds one film strip per tile sheet. Tiles get clones so each
// has its own frame cursor over the shared sheet.
type StripRegistry struct {
	strips map[string]*FilmStrip
}

// NewStripRegistry creates an empty registry.
func NewStripRegistry() *StripRegistry {
	return &StripRegistry{strips: make(map[string]*FilmStrip)}
}

// LoadStripRegistry registers the water and wall sheets from a tiles spec.
func LoadStripRegistry(spec prefabs.TilesSpec) (*StripRegistry, error) {
	r := NewStripRegistry()
	if err := r.Register(prefabs.SheetWater, spec.Water); err != nil {
		return nil, err
	}
	if err := r.Register(prefabs.SheetWall, spec.Wall); err != nil {
		return nil, err
	}
	return r, nil
}

// Register loads a sheet image and slices it. A missing image is replaced by
// a generated placeholder so levels still render.
func (r *StripRegistry) Register(name string, spec prefabs.TileSheetSpec) error {
	if r == nil {
		return fmt.Errorf("render: nil registry")
	}
	if spec.FrameW <= 0 || spec.FrameH <= 0 {
		return fmt.Errorf("render: register %q: invalid frame size %dx%d", name, spec.FrameW, spec.FrameH)
	}
	img, err := LoadImage(spec.Image)
	if err != nil {
		log.Printf("render: sheet %q: %v; using placeholder", name, err)
		var base color.Color = colornames.Magenta
		if spec.Placeholder != nil && spec.Placeholder.Color != nil {
			base = spec.Placeholder.Color
		}
		img = PlaceholderSheet(spec.FrameW, spec.FrameH, spec.Frames, base)
	}
	strip, err := NewFilmStrip(img, spec.FrameW, spec.FrameH)
	if err != nil {
		return fmt.Errorf("render: register %q: %w", name, err)
	}
	if spec.Frames > 0 && strip.Size() < spec.Frames {
		return fmt.Errorf("render: register %q: sheet has %d frames, want %d", name, strip.Size(), spec.Frames)
	}
	r.strips[name] = strip
	return nil
}

// Strip returns a fresh cursor over the named sheet.
func (r *StripRegistry) Strip(name string) (*FilmStrip, bool) {
	if r == nil {
		return nil, false
	}
	s, ok := r.strips[name]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// TileStrip is Strip as an autotile.FrameStrip, nil when the sheet is unknown.
func (r *StripRegistry) TileStrip(name string) autotile.FrameStrip {
	s, ok := r.Strip(name)
	if !ok {
		return nil
	}
	return s
}
