package system

import (
	"github.com/sirupsen/logrus"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/session"
)

// RunAI gives every AI-bearing entity one turn in registry order and
// returns how many acted. Entities that lose their AI during the pass,
// for example by dying, are skipped.
func RunAI(s *session.Session) int {
	acted := 0
	for _, id := range s.World.Query(component.CAI) {
		if component.AIOf(s.World, id) == nil {
			continue
		}
		TakeTurn(s, id)
		acted++
	}
	return acted
}

// TakeTurn runs one decision for id according to its behavior.
func TakeTurn(s *session.Session, id ecs.EntityID) {
	ai := component.AIOf(s.World, id)
	if ai == nil {
		return
	}
	log := s.Logger("ai").WithFields(logrus.Fields{"entity": id, "turn": s.Turn})

	switch ai.Behavior {
	case component.BehaviorChase:
		if chase(s, id, ai) {
			log.Debug("chase")
			return
		}
		log.Debug("chase target not in sight, wandering")
		wander(s, id)
	default:
		wander(s, id)
	}
}

// chase steps toward the target while id stands inside the player's field
// of view. It reports whether a chase step was attempted.
func chase(s *session.Session, id ecs.EntityID, ai *component.AI) bool {
	pos := component.PositionOf(s.World, id)
	target := component.PositionOf(s.World, ai.Target)
	if pos == nil || target == nil || !s.World.Alive(ai.Target) {
		return false
	}
	if !s.View.Visible(pos.Point()) {
		return false
	}
	MoveToward(s, id, target.Point())
	return true
}

// wander moves by a uniform random delta in {-1,0,1}²; (0,0) is a no-op.
func wander(s *session.Session, id ecs.EntityID) {
	dx := s.Rand.Intn(3) - 1
	dy := s.Rand.Intn(3) - 1
	if dx == 0 && dy == 0 {
		return
	}
	Move(s, id, dx, dy)
}
