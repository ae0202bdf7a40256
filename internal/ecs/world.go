package ecs

import (
	"fmt"
	"slices"
)

// World is the central entity registry and component store.
//
// Deletion is deferred: Delete marks an entity dead at once, so it drops out
// of Query and can no longer receive components, but its components stay
// readable until Maintain sweeps them at the end of the tick.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	pending    []EntityID
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Delete marks the entity for removal at the next Maintain.
// Deleting an entity twice is a no-op.
func (w *World) Delete(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	w.pending = append(w.pending, id)
}

// Maintain removes the components of every entity deleted since the last
// call and returns their IDs in deletion order.
func (w *World) Maintain() []EntityID {
	if len(w.pending) == 0 {
		return nil
	}
	removed := w.pending
	for _, id := range removed {
		for _, store := range w.components {
			delete(store, id)
		}
		delete(w.alive, id)
	}
	w.pending = nil
	return removed
}

// Pending reports whether the entity was deleted but not yet swept.
func (w *World) Pending(id EntityID) bool {
	return slices.Contains(w.pending, id)
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Entities returns every live entity in creation order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.alive))
	for id, ok := range w.alive {
		if ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Add attaches a component to an entity, replacing any previous value of the
// same type. Adding to a dead or unknown entity panics.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		panic(fmt.Sprintf("ecs: add %T to dead entity %s", c, id))
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Clear drops every component of the given type.
func (w *World) Clear(t ComponentType) {
	delete(w.components, t)
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Count returns how many entities hold a component of the given type,
// including entities awaiting Maintain.
func (w *World) Count(t ComponentType) int {
	return len(w.components[t])
}

// Query returns all alive entities that have every listed component type,
// in creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
