package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/session"
	"crab-roguelike/internal/system"
)

// Outcome reports what applying an intent did.
type Outcome struct {
	TurnSpent bool
	Quit      bool
}

// Controller advances a session one turn at a time.
type Controller struct {
	s   *session.Session
	log *logrus.Entry
}

func NewController(s *session.Session) *Controller {
	return &Controller{s: s, log: s.Logger("turn")}
}

// Apply resolves the player's intent and, if that spent a turn, refreshes
// the player's field of view and gives every AI one move in registry order.
// Once the player is dead only quit has an effect.
func (c *Controller) Apply(in Intent) Outcome {
	if in.Kind == IntentQuit {
		return Outcome{Quit: true}
	}
	if c.s.Over {
		return Outcome{}
	}

	spent := c.resolve(in)
	if !spent {
		return Outcome{}
	}

	c.s.Turn++
	c.s.RefreshView()
	acted := system.RunAI(c.s)
	c.log.WithFields(logrus.Fields{
		"turn":   c.s.Turn,
		"intent": in.Kind.String(),
		"ai":     acted,
	}).Debug("turn spent")
	return Outcome{TurnSpent: true}
}

func (c *Controller) resolve(in Intent) bool {
	s := c.s
	switch in.Kind {
	case IntentMove:
		if in.DX < -1 || in.DX > 1 || in.DY < -1 || in.DY > 1 || (in.DX == 0 && in.DY == 0) {
			return false
		}
		return system.Move(s, s.Player, in.DX, in.DY)

	case IntentPass:
		return true

	case IntentPickup:
		if !system.PickUpAll(s, s.Player) {
			s.Messages.Info("There is nothing here to pick up.")
			return false
		}
		return true

	case IntentUseItem:
		item, ok := c.slot(in.Index)
		if !ok {
			return false
		}
		return system.Use(s, item) == system.UseConsumed

	case IntentDropItem:
		item, ok := c.slot(in.Index)
		if !ok {
			return false
		}
		return system.Drop(s, item, nil)

	case IntentCast:
		return system.Cast(s, in.Spell, in.Target)

	case IntentInspect:
		if cr := component.CreatureOf(s.World, s.Player); cr != nil {
			s.Messages.Info(fmt.Sprintf("You are at %d/%d health!", cr.HP, cr.MaxHP))
		}
		return false
	}
	return false
}

// slot returns the player's i-th inventory item.
func (c *Controller) slot(i int) (ecs.EntityID, bool) {
	inv := system.Inventory(c.s, c.s.Player)
	if i < 0 || i >= len(inv) {
		c.s.Messages.Info("You have no such item.")
		return ecs.NilEntity, false
	}
	return inv[i], true
}
