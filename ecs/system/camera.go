package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

// CameraSystem keeps the camera centred on the level for a fixed viewport.
type CameraSystem struct {
	camEntity ecs.Entity
	viewW     float64
	viewH     float64
}

func NewCameraSystem(viewW, viewH float64) *CameraSystem {
	return &CameraSystem{viewW: viewW, viewH: viewH}
}

// Update sets the camera transform so the level bounds sit in the middle of
// the viewport at the camera's zoom.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, boundsEntity, component.LevelBoundsComponent)

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	camTransform, _ := ecs.Get(w, cs.camEntity, component.TransformComponent)
	camTransform.X = bounds.Width/2 - cs.viewW/(2*zoom)
	camTransform.Y = bounds.Height/2 - cs.viewH/(2*zoom)
	if err := ecs.Add(w, cs.camEntity, component.TransformComponent, camTransform); err != nil {
		panic("camera system: update transform: " + err.Error())
	}
}

// cameraView is the world-to-screen transform of the camera.
type cameraView struct {
	x, y float64
	zoom float64
}

func (v cameraView) toScreen(p cp.Vector) (float64, float64) {
	return (p.X - v.x) * v.zoom, (p.Y - v.y) * v.zoom
}

// findCameraView reads the camera transform, reusing cached when it is still
// alive. Without a camera the view is the identity.
func findCameraView(w *ecs.World, cached ecs.Entity) (cameraView, ecs.Entity) {
	view := cameraView{zoom: 1}
	camEntity := cached
	if !camEntity.Valid() || !w.IsAlive(camEntity) {
		e, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return view, 0
		}
		camEntity = e
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
		view.x, view.y = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent); ok && cam.Zoom > 0 {
		view.zoom = cam.Zoom
	}
	return view, camEntity
}
