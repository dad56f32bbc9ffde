package component

// PhysicsBody is the collider configuration of a tile. The runtime Chipmunk
// body lives in the world's PhysicsWorld, keyed by entity.
type PhysicsBody struct {
	Width  float64
	Height float64
	Sensor bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
