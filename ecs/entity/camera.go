package entity

import (
	"fmt"

	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// NewCamera creates the camera the tile renderer draws through.
func NewCamera(w *ecs.World, zoom float64) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent, component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent, component.Transform{
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent, component.Camera{Zoom: zoom}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}

	return camera, nil
}
