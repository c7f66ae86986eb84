package game

import (
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/system"
)

// IntentKind enumerates the requests the turn controller accepts.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentPass
	IntentPickup
	IntentUseItem
	IntentDropItem
	IntentCast
	IntentInspect
	IntentQuit
)

// Intent is a resolved player request. Only the fields relevant to Kind
// are read.
type Intent struct {
	Kind   IntentKind
	DX, DY int
	Index  int          // inventory slot for use and drop
	Spell  system.Spell // for cast
	Target *geom.Point  // chosen tile for cast; nil when targeting was cancelled
}

func Move(dx, dy int) Intent { return Intent{Kind: IntentMove, DX: dx, DY: dy} }
func Pass() Intent { return Intent{Kind: IntentPass} }
func Pickup() Intent { return Intent{Kind: IntentPickup} }
func UseItem(i int) Intent { return Intent{Kind: IntentUseItem, Index: i} }
func DropItem(i int) Intent { return Intent{Kind: IntentDropItem, Index: i} }
func Inspect() Intent { return Intent{Kind: IntentInspect} }
func Quit() Intent { return Intent{Kind: IntentQuit} }
func Cast(sp system.Spell, target *geom.Point) Intent {
	return Intent{Kind: IntentCast, Spell: sp, Target: target}
}

func (k IntentKind) String() string {
	switch k {
	case IntentMove:
		return "move"
	case IntentPass:
		return "pass"
	case IntentPickup:
		return "pickup"
	case IntentUseItem:
		return "use"
	case IntentDropItem:
		return "drop"
	case IntentCast:
		return "cast"
	case IntentInspect:
		return "inspect"
	case IntentQuit:
		return "quit"
	}
	return "none"
}
