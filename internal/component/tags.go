package component

import "crab-roguelike/internal/ecs"

const CTagPlayer ecs.ComponentType = 7

// TagPlayer marks the player-controlled entity. It is not zero-sized so
// every instance has its own address and can be owned like any component.
type TagPlayer struct{ _ byte }

func (*TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
