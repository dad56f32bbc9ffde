package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerWater = 0
	LayerWall  = 10
)

var RenderLayerComponent = NewComponent[RenderLayer]()
