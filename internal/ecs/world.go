package ecs

import (
	"fmt"
	"slices"
)

// store holds every component of one type, keyed by entity.
type store map[EntityID]Component

// World is the entity registry. Each component type has its own sparse
// store, so an entity only pays for the components it carries.
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	dead   []EntityID
	stores map[ComponentType]store
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[ComponentType]store),
	}
}

// CreateEntity mints a new entity ID. IDs grow monotonically, so ID order
// is creation order.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity forgets the entity and drops all its components at once.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	delete(w.alive, id)
	for _, s := range w.stores {
		delete(s, id)
	}
}

// Alive reports whether id has been created and not yet destroyed.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Add attaches c to id, replacing any component of the same type.
func (w *World) Add(id EntityID, c Component) {
	s, ok := w.stores[c.Type()]
	if !ok {
		s = make(store)
		w.stores[c.Type()] = s
	}
	s[id] = c
}

// Insert attaches a component that the entity must not already carry.
// A second insert is a programming error and panics.
func (w *World) Insert(id EntityID, c Component) {
	if w.Has(id, c.Type()) {
		panic(fmt.Sprintf("ecs: entity %d already has component type %d", id, c.Type()))
	}
	w.Add(id, c)
}

// Get returns the component of type t on id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

// Remove detaches the component of type t from id, if any.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.stores[t], id)
}

// Has reports whether id carries a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.stores[t][id]
	return ok
}

// Query returns every live entity that carries all of types, sorted by ID.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Scan the smallest store and probe the others.
	ordered := slices.Clone(types)
	slices.SortFunc(ordered, func(a, b ComponentType) int {
		return len(w.stores[a]) - len(w.stores[b])
	})

	var result []EntityID
	for id := range w.stores[ordered[0]] {
		if w.Alive(id) && w.hasAll(id, ordered[1:]) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}

// MarkDead schedules an entity for removal by the next Sweep.
// The entity and its components stay readable until then.
func (w *World) MarkDead(id EntityID) {
	if !w.Alive(id) || w.MarkedDead(id) {
		return
	}
	w.dead = append(w.dead, id)
}

// MarkedDead reports whether id is waiting for the next Sweep.
func (w *World) MarkedDead(id EntityID) bool {
	return slices.Contains(w.dead, id)
}

// Sweep destroys every entity passed to MarkDead since the previous sweep
// and returns them in the order they were marked.
func (w *World) Sweep() []EntityID {
	swept := w.dead
	w.dead = nil
	for _, id := range swept {
		w.DestroyEntity(id)
	}
	return swept
}
