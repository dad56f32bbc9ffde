package component

import "github.com/milk9111/deadzone/hud"

// HUD holds the counter and, when running with a window, its widget view.
type HUD struct {
	Counter *hud.Counter
	View    *hud.View
}

var HUDComponent = NewComponent[HUD]()
