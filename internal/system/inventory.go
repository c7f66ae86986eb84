package system

import (
	"fmt"
	"slices"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/message"
	"crab-roguelike/internal/session"
)

// UseResult is the outcome of using an item.
type UseResult uint8

const (
	UseFailed    UseResult = iota // nothing to use; a message explains why
	UseConsumed                   // effect applied, item destroyed
	UseCancelled                  // effect declined, nothing changed
)

// PickUp moves a free-standing item into actor's container. It is rejected
// with a message when the item does not fit.
func PickUp(s *session.Session, item, actor ecs.EntityID) bool {
	it := component.ItemOf(s.World, item)
	bag := component.ContainerOf(s.World, actor)
	if it == nil || bag == nil || it.Holder != ecs.NilEntity {
		return false
	}
	if bag.CurrentVolume(s.World)+it.Volume > bag.MaxVolume {
		s.Messages.Add("Not enough room to pick up", message.ColorLightRed)
		return false
	}
	bag.Items = append(bag.Items, item)
	s.World.Lift(item)
	it.Holder = actor
	s.Messages.Add("You pick it up", message.ColorLightGreen)
	return true
}

// PickUpAll tries to pick up every item under actor. It reports whether
// there was anything there at all.
func PickUpAll(s *session.Session, actor ecs.EntityID) bool {
	pos := component.PositionOf(s.World, actor)
	if pos == nil {
		return false
	}
	f := At(pos.Point())
	f.Item = true
	f.Excluded = []ecs.EntityID{actor}
	items := Objects(s, f)
	for _, id := range items {
		PickUp(s, id, actor)
	}
	return len(items) > 0
}

// Drop puts a held item back on the map, at *at when given or under its
// holder otherwise. Panics if at lies outside the map.
func Drop(s *session.Session, item ecs.EntityID, at *geom.Point) bool {
	if at != nil && !s.Map.InBounds(at.X, at.Y) {
		panic(fmt.Sprintf("system: drop target %v outside %dx%d map", *at, s.Map.Width, s.Map.Height))
	}
	it := component.ItemOf(s.World, item)
	if it == nil || it.Holder == ecs.NilEntity {
		return false
	}
	holder := it.Holder

	var dest geom.Point
	switch {
	case at != nil:
		dest = *at
	case component.PositionOf(s.World, holder) != nil:
		dest = component.PositionOf(s.World, holder).Point()
	default:
		return false
	}

	release(s, item, it)
	if pos := component.PositionOf(s.World, item); pos != nil {
		pos.Set(dest)
	} else {
		s.World.Add(item, &component.Position{X: dest.X, Y: dest.Y})
	}
	s.World.Place(item)
	s.Messages.Add("You drop the item", message.ColorLightGreen)
	return true
}

// Use applies the item's effect to its holder. A consumed item is removed
// from the container and destroyed.
func Use(s *session.Session, item ecs.EntityID) UseResult {
	it := component.ItemOf(s.World, item)
	if it == nil || it.Effect == component.EffectNone || it.Holder == ecs.NilEntity {
		s.Messages.Add("You can't use that", message.ColorLightRed)
		return UseFailed
	}

	var res UseResult
	switch it.Effect {
	case component.EffectHeal:
		res = healEffect(s, it.Holder, it.Value)
	}
	if res == UseConsumed {
		release(s, item, it)
		s.World.DestroyEntity(item)
	}
	return res
}

// Inventory returns the items held by actor, in pickup order.
func Inventory(s *session.Session, actor ecs.EntityID) []ecs.EntityID {
	bag := component.ContainerOf(s.World, actor)
	if bag == nil {
		return nil
	}
	return slices.Clone(bag.Items)
}

func healEffect(s *session.Session, user ecs.EntityID, amount int) UseResult {
	cr := component.CreatureOf(s.World, user)
	if cr == nil {
		return UseCancelled
	}
	if cr.HP >= cr.MaxHP {
		s.Messages.Info(FullName(s, user) + " is already at full health")
		return UseCancelled
	}
	s.Messages.Info(fmt.Sprintf("%s healed for %d", FullName(s, user), amount))
	Heal(s, user, amount)
	return UseConsumed
}

// release takes item out of its holder's container.
func release(s *session.Session, item ecs.EntityID, it *component.Item) {
	if bag := component.ContainerOf(s.World, it.Holder); bag != nil {
		if i := slices.Index(bag.Items, item); i >= 0 {
			bag.Items = slices.Delete(bag.Items, i, i+1)
		}
	}
	it.Holder = ecs.NilEntity
}
