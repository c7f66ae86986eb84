package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/message"
	"crab-roguelike/internal/session"
)

// FullName returns "<instance> the <object>", e.g. "Jackie the Smart Crab".
func FullName(s *session.Session, id ecs.EntityID) string {
	return fmt.Sprintf("%s the %s", instanceName(s, id), objectName(s, id))
}

func instanceName(s *session.Session, id ecs.EntityID) string {
	if cr := component.CreatureOf(s.World, id); cr != nil {
		return cr.Name
	}
	return objectName(s, id)
}

func objectName(s *session.Session, id ecs.EntityID) string {
	if r := component.RenderableOf(s.World, id); r != nil {
		return r.Name
	}
	return "something"
}

// Attack reports the hit and deals damage to target. Targets without a
// creature are ignored.
func Attack(s *session.Session, attacker, target ecs.EntityID, damage int) {
	if component.CreatureOf(s.World, target) == nil {
		return
	}
	s.Messages.Add(fmt.Sprintf("%s attacks %s for %d damage!",
		instanceName(s, attacker), instanceName(s, target), damage), message.ColorDarkGreen)
	TakeDamage(s, target, damage)
}

// TakeDamage lowers the creature's HP and runs its death handler the first
// time HP reaches zero or below. It reports whether the creature died in
// this call. Entities without a creature are left alone.
func TakeDamage(s *session.Session, id ecs.EntityID, amount int) bool {
	cr := component.CreatureOf(s.World, id)
	if cr == nil {
		return false
	}
	cr.HP -= amount
	if cr.HP > 0 || cr.Dead {
		return false
	}
	cr.Dead = true
	s.Logger("combat").WithFields(logrus.Fields{
		"entity": id,
		"name":   cr.Name,
		"hp":     cr.HP,
	}).Debug("creature died")

	switch cr.Death {
	case component.DeathMonster:
		turnIntoCorpse(s, id, cr)
	case component.DeathPlayer:
		s.Messages.Add("You died!", message.ColorRed)
		s.Over = true
	}
	return true
}

// Heal raises HP by amount, capped at the maximum.
func Heal(s *session.Session, id ecs.EntityID, amount int) {
	cr := component.CreatureOf(s.World, id)
	if cr == nil {
		return
	}
	cr.HP = min(cr.HP+amount, cr.MaxHP)
}

// turnIntoCorpse strips the monster's creature and AI and leaves an edible
// corpse in its place.
func turnIntoCorpse(s *session.Session, id ecs.EntityID, cr *component.Creature) {
	s.Messages.Add(cr.Name+" is dead!", message.ColorGreen)

	if r := component.RenderableOf(s.World, id); r != nil {
		r.Name = "Corpse of " + cr.Name
		r.Freeze()
	}
	s.World.Remove(id, component.CCreature)
	s.World.Remove(id, component.CAI)
	s.World.Add(id, &component.Item{
		Effect: component.EffectHeal,
		Value:  s.Config.Combat.CorpseHeal,
	})
}
