package component

// AutotileDirty marks a tile whose frames must be recomputed from its
// neighbours on the next update.
type AutotileDirty struct{}

var AutotileDirtyComponent = NewComponent[AutotileDirty]()
