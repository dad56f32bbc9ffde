package component

// Camera is the view offset and zoom applied when drawing world tiles.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
