package component

import "crab-roguelike/internal/ecs"

// Typed lookups. Each returns nil when the entity lacks the component.

func PositionOf(w *ecs.World, id ecs.EntityID) *Position {
	c, _ := w.Get(id, CPosition).(*Position)
	return c
}

func RenderableOf(w *ecs.World, id ecs.EntityID) *Renderable {
	c, _ := w.Get(id, CRenderable).(*Renderable)
	return c
}

func CreatureOf(w *ecs.World, id ecs.EntityID) *Creature {
	c, _ := w.Get(id, CCreature).(*Creature)
	return c
}

func ItemOf(w *ecs.World, id ecs.EntityID) *Item {
	c, _ := w.Get(id, CItem).(*Item)
	return c
}

func ContainerOf(w *ecs.World, id ecs.EntityID) *Container {
	c, _ := w.Get(id, CContainer).(*Container)
	return c
}

func AIOf(w *ecs.World, id ecs.EntityID) *AI {
	c, _ := w.Get(id, CAI).(*AI)
	return c
}
