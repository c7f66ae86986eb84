package component

import "crab-roguelike/internal/ecs"

const CItem ecs.ComponentType = 4

// EffectKind is the use-effect attached to an item.
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectHeal            // heals the user by Value
)

// Item makes an actor something that can be picked up, dropped and used.
type Item struct {
	Weight float64
	Volume float64
	Value  int // effect payload
	Effect EffectKind

	// Holder is the actor whose Container holds this item, or NilEntity
	// while the item lies on the ground.
	Holder ecs.EntityID
}

func (*Item) Type() ecs.ComponentType { return CItem }
