package entity

import (
	"fmt"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/hud"
	"github.com/milk9111/deadzone/prefabs"
)

// HUDStyle builds the view style from a spec, falling back to the defaults
// for unset fields.
func HUDStyle(spec *prefabs.HUDSpec) hud.Style {
	style := hud.DefaultStyle()
	if spec == nil {
		return style
	}
	style.TextColor = spec.TextColor.Or(style.TextColor)
	style.PanelColor = spec.PanelColor.Or(style.PanelColor)
	if spec.PadTop > 0 {
		style.PadTop = spec.PadTop
	}
	if spec.PadLeft > 0 {
		style.PadLeft = spec.PadLeft
	}
	if spec.Spacing > 0 {
		style.Spacing = spec.Spacing
	}
	return style
}

// NewHUD creates the HUD entity. Without a window the view is skipped and
// only the counter is kept.
func NewHUD(world *ecs.World, spec *prefabs.HUDSpec, withView bool) (ecs.Entity, error) {
	counter := hud.NewCounter()
	h := component.HUD{Counter: counter}
	if withView {
		h.View = hud.NewView(counter, HUDStyle(spec))
	}

	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.HUDComponent, h); err != nil {
		return 0, fmt.Errorf("hud: add component: %w", err)
	}
	return e, nil
}
