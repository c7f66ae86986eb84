// Package system implements the rules that mutate a session: registry
// queries, movement and melee, inventory, monster AI, targeting and spells.
package system

import (
	"slices"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/session"
)

// Filter narrows a registry query. Nil coordinates and false flags match
// everything; set fields are combined with AND.
type Filter struct {
	X, Y      *int
	Creature  bool
	Item      bool
	Container bool

	// Excluded entities are dropped before any other test.
	Excluded []ecs.EntityID
	// Search, when non-nil, replaces the placed registry as the candidates.
	Search []ecs.EntityID
}

// At returns a filter matching entities standing on p.
func At(p geom.Point) Filter {
	x, y := p.X, p.Y
	return Filter{X: &x, Y: &y}
}

// Objects returns the entities matching f in registry order.
func Objects(s *session.Session, f Filter) []ecs.EntityID {
	candidates := f.Search
	if candidates == nil {
		candidates = s.World.Entities()
	}
	var out []ecs.EntityID
	for _, id := range candidates {
		if f.match(s.World, id) {
			out = append(out, id)
		}
	}
	return out
}

// FirstCreature returns the first creature matching f in registry order,
// or ecs.NilEntity.
func FirstCreature(s *session.Session, f Filter) ecs.EntityID {
	f.Creature = true
	candidates := f.Search
	if candidates == nil {
		candidates = s.World.Entities()
	}
	for _, id := range candidates {
		if f.match(s.World, id) {
			return id
		}
	}
	return ecs.NilEntity
}

func (f Filter) match(w *ecs.World, id ecs.EntityID) bool {
	if slices.Contains(f.Excluded, id) || !w.Alive(id) {
		return false
	}
	if f.X != nil || f.Y != nil {
		pos := component.PositionOf(w, id)
		if pos == nil {
			return false
		}
		if f.X != nil && pos.X != *f.X {
			return false
		}
		if f.Y != nil && pos.Y != *f.Y {
			return false
		}
	}
	if f.Creature && !w.Has(id, component.CCreature) {
		return false
	}
	if f.Item && !w.Has(id, component.CItem) {
		return false
	}
	if f.Container && !w.Has(id, component.CContainer) {
		return false
	}
	return true
}
