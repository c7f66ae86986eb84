package component

import "crab-roguelike/internal/ecs"

const CCreature ecs.ComponentType = 3

// DeathKind selects what happens when a creature's HP drops to zero.
type DeathKind uint8

const (
	DeathNone    DeathKind = iota // nothing happens; HP just goes negative
	DeathMonster                  // becomes a usable corpse
	DeathPlayer                   // ends the session
)

// Creature gives an actor health and the ability to fight.
// HP is only clamped from above, by healing.
type Creature struct {
	Name  string // instance name, e.g. "Jackie"
	HP    int
	MaxHP int
	Death DeathKind
	Dead  bool // set once the death handler has run
}

func (*Creature) Type() ecs.ComponentType { return CCreature }

// NewCreature returns a creature at full health.
func NewCreature(name string, hp int, death DeathKind) *Creature {
	return &Creature{Name: name, HP: hp, MaxHP: hp, Death: death}
}
