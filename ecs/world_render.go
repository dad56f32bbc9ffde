package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws the base pass for its entities.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// TopRenderSystem draws decoration that must cover neighbouring tiles.
type TopRenderSystem interface {
	DrawTop(w *World, screen *ebiten.Image)
}

// Draw runs the base pass of every render system before the top pass of any
// of them, so top layers land over every tile in the scene.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil {
		return
	}
	systems := w.Systems()
	for _, s := range systems {
		if rs, ok := s.(RenderSystem); ok {
			rs.Draw(w, screen)
		}
	}
	for _, s := range systems {
		if ts, ok := s.(TopRenderSystem); ok {
			ts.DrawTop(w, screen)
		}
	}
}
