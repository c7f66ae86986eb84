package ecs

import "slices"

// World is the component arena and the ordered actor registry.
//
// Every entity created here lives in the arena until destroyed. Only the
// entities that have been placed are part of the registry, which is what
// queries walk; an item sitting in a backpack is alive but not placed.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
	owners     map[Component]EntityID
	placed     []EntityID
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
		owners:     make(map[Component]EntityID),
	}
}

// CreateEntity mints a new entity ID and marks it alive. The entity is not
// placed in the registry.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity lifts the entity out of the registry, detaches all its
// components and marks it dead.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.Lift(id)
	for _, store := range w.components {
		if c, ok := store[id]; ok {
			delete(w.owners, c)
			delete(store, id)
		}
	}
	w.alive[id] = false
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches c to entity id.
//
// A component instance has at most one owner: if c is currently attached to
// another entity it is detached from that entity first. A component of the
// same type already on id is detached and loses its owner.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		panic("ecs: Add on dead entity")
	}
	t := c.Type()
	if prev, ok := w.owners[c]; ok {
		if prev == id {
			return
		}
		w.Remove(prev, t)
	}
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	if old, ok := w.components[t][id]; ok {
		delete(w.owners, old)
	}
	w.components[t][id] = c
	w.owners[c] = id
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity. The detached instance no
// longer has an owner.
func (w *World) Remove(id EntityID, t ComponentType) {
	store := w.components[t]
	if store == nil {
		return
	}
	if c, ok := store[id]; ok {
		delete(w.owners, c)
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Owner returns the entity c is attached to, or NilEntity.
func (w *World) Owner(c Component) EntityID {
	return w.owners[c]
}

// Place appends the entity to the registry. Placing an entity that is
// already placed is a no-op, so registry order stays insertion order.
func (w *World) Place(id EntityID) {
	if !w.alive[id] {
		panic("ecs: Place on dead entity")
	}
	if w.Placed(id) {
		return
	}
	w.placed = append(w.placed, id)
}

// Lift removes the entity from the registry without destroying it.
// It reports whether the entity was placed.
func (w *World) Lift(id EntityID) bool {
	i := slices.Index(w.placed, id)
	if i < 0 {
		return false
	}
	w.placed = slices.Delete(w.placed, i, i+1)
	return true
}

// Placed reports whether the entity is in the registry.
func (w *World) Placed(id EntityID) bool {
	return slices.Contains(w.placed, id)
}

// Entities returns a copy of the registry in insertion order.
func (w *World) Entities() []EntityID {
	return slices.Clone(w.placed)
}

// Query returns the placed entities that have every listed component type,
// in registry order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var result []EntityID
	for _, id := range w.placed {
		match := true
		for _, t := range types {
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}
