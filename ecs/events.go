package ecs

// EventType identifies an event payload.
type EventType string

const (
	// EventTileDestroyed carries a TileDestroyed payload.
	EventTileDestroyed EventType = "tile_destroyed"
	// EventHostPossessed carries the possessed host entity.
	EventHostPossessed EventType = "host_possessed"
	// EventLevelReset carries a LevelReset payload; the HUD restarts its
	// counters.
	EventLevelReset EventType = "level_reset"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// LevelReset reports a level (re)start with the number of hosts to possess.
type LevelReset struct {
	Total int
}

// TileDestroyed reports that the tile at a grid cell was removed at runtime.
type TileDestroyed struct {
	X, Y int
}

// EventQueue is a FIFO queue drained by systems and cleared after each
// world update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Take removes and returns the events of one type, keeping the rest queued
// for later systems.
func (q *EventQueue) Take(t EventType) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var taken []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == t {
			taken = append(taken, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return taken
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
