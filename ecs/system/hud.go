package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// HUDSystem ticks the level timer, counts possessed hosts and draws the HUD
// over everything else.
type HUDSystem struct {
	step float64
}

// NewHUDSystem advances the timer by one tick per update.
func NewHUDSystem() *HUDSystem {
	return &HUDSystem{step: 1 / float64(ebiten.TPS())}
}

// NewHUDSystemWithStep advances the timer by step seconds per update.
func NewHUDSystemWithStep(step float64) *HUDSystem {
	return &HUDSystem{step: step}
}

func (s *HUDSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	e, ok := w.First(component.HUDComponent.Kind())
	if !ok {
		return
	}
	h, _ := ecs.Get(w, e, component.HUDComponent)
	if h.Counter == nil {
		return
	}

	for _, evt := range w.Events().Take(ecs.EventLevelReset) {
		h.Counter.Reset()
		switch d := evt.Data.(type) {
		case ecs.LevelReset:
			h.Counter.SetTotal(d.Total)
		case nil:
		default:
			log.Printf("hud: level reset event with payload %T", evt.Data)
		}
	}
	for range w.Events().Take(ecs.EventHostPossessed) {
		h.Counter.IncrementProgress()
	}

	h.Counter.Advance(s.step)
	h.View.Update()
}

func (s *HUDSystem) DrawTop(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	e, ok := w.First(component.HUDComponent.Kind())
	if !ok {
		return
	}
	h, _ := ecs.Get(w, e, component.HUDComponent)
	h.View.Draw(screen)
}
