package ecs

import (
	"fmt"

	"github.com/milk9111/deadzone/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, systems and the event queue.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*sparseSet
	scheduler *Scheduler
	events    EventQueue

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*sparseSet),
		scheduler: NewScheduler(),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.removeSlot(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.alive()
}

// AddComponent stores value for e, replacing any previous value of the kind.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("add component %d to %s: %w", kindID(kind), e, component.ErrEntityNotAlive)
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		s = newSparseSet()
		w.stores[kind.ID()] = s
	}
	s.set(e, value)
	return nil
}

// RemoveComponent drops the kind from e.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	s := w.store(kind)
	if s == nil {
		return false
	}
	return s.remove(e)
}

// HasComponent reports whether e carries the kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	s := w.store(kind)
	return s != nil && s.has(e)
}

// GetComponent returns the stored value for the kind.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	s := w.store(kind)
	if s == nil {
		return nil, false
	}
	return s.get(e)
}

// Query returns live entities that carry every kind, in the order of the
// smallest store.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*sparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k)
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if len(s.dense) < len(smallest.dense) {
			smallest = s
		}
	}

	out := make([]Entity, 0, len(smallest.dense))
outer:
	for _, e := range smallest.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range stores {
			if s != smallest && !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns any live entity with the kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	s := w.store(kind)
	if s == nil {
		return 0, false
	}
	for _, e := range s.entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

func (w *World) store(kind component.Kind) *sparseSet {
	if w == nil || kind == nil {
		return nil
	}
	return w.stores[kind.ID()]
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Update runs all systems once and then drops any unconsumed events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func kindID(k component.Kind) component.ComponentID {
	if k == nil {
		return 0
	}
	return k.ID()
}
