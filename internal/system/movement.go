package system

import (
	"crab-roguelike/internal/component"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/session"
)

// Move steps id by (dx, dy). A creature on the destination is attacked
// instead and id stays put. It reports whether anything happened.
func Move(s *session.Session, id ecs.EntityID, dx, dy int) bool {
	pos := component.PositionOf(s.World, id)
	if pos == nil {
		return false
	}
	dest := pos.Point().Add(geom.Pt(dx, dy))

	f := At(dest)
	f.Excluded = []ecs.EntityID{id}
	if target := FirstCreature(s, f); target != ecs.NilEntity {
		Attack(s, id, target, s.Config.Combat.MeleeDamage)
		return true
	}

	if s.Map.IsBlocked(dest) {
		return false
	}
	pos.Set(dest)
	if id == s.Player {
		s.View.Invalidate()
	}
	return true
}

// MoveToward takes one step along the line from id to target.
func MoveToward(s *session.Session, id ecs.EntityID, target geom.Point) bool {
	pos := component.PositionOf(s.World, id)
	if pos == nil {
		return false
	}
	from := pos.Point()
	line := geom.Line(from, target, true)
	if len(line) < 2 {
		return false
	}
	step := line[1].Sub(from)
	return Move(s, id, step.X, step.Y)
}
