package component

import "crab-roguelike/internal/ecs"

const CAI ecs.ComponentType = 6

// AIBehavior describes how a creature acts each turn.
type AIBehavior uint8

const (
	BehaviorWander AIBehavior = iota // random step, possibly none
	BehaviorChase                    // step along the line to Target when seen
)

type AI struct {
	Behavior AIBehavior
	Target   ecs.EntityID // chase target, usually the player
}

func (*AI) Type() ecs.ComponentType { return CAI }
