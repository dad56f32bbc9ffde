package entity

import (
	"fmt"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// NewHost creates a possessable host standing in cell x, y.
func NewHost(world *ecs.World, x, y int, tileSize float64) (ecs.Entity, error) {
	center := cellCenter(x, y, tileSize)
	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.TransformComponent, component.Transform{X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("host: add transform: %w", err)
	}
	if err := ecs.Add(world, e, component.HostTagComponent, component.HostTag{}); err != nil {
		return 0, fmt.Errorf("host: add tag: %w", err)
	}
	return e, nil
}

// PossessHost marks a host as possessed and notifies the HUD. Possessing the
// same host twice counts once.
func PossessHost(world *ecs.World, host ecs.Entity) error {
	tag, ok := ecs.Get(world, host, component.HostTagComponent)
	if !ok {
		return fmt.Errorf("host: %s is not a host", host)
	}
	if tag.Possessed {
		return nil
	}
	tag.Possessed = true
	if err := ecs.Add(world, host, component.HostTagComponent, tag); err != nil {
		return fmt.Errorf("host: update tag: %w", err)
	}
	world.Events().Push(ecs.Event{Type: ecs.EventHostPossessed, Data: host})
	return nil
}
