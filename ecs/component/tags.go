package component

// HostTag marks a possessable host. Hosts count towards the HUD total.
type HostTag struct {
	Possessed bool
}

var HostTagComponent = NewComponent[HostTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
