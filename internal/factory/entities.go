package factory

import (
	"crab-roguelike/internal/component"
	"crab-roguelike/internal/config"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Render order, lowest drawn first.
const (
	orderItem    = 2
	orderMonster = 5
	orderPlayer  = 10
)

// NewPlayer creates and places the player entity described by p.
func NewPlayer(w *ecs.World, p config.Player) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, &component.Position{X: p.Pos.X, Y: p.Pos.Y})
	w.Add(id, &component.Renderable{
		Name:        p.Kind,
		Frames:      []string{p.Glyph},
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderPlayer,
	})
	w.Add(id, component.NewCreature(p.Name, p.HP, component.DeathPlayer))
	w.Add(id, &component.Container{MaxVolume: p.MaxVolume})
	w.Add(id, &component.TagPlayer{})
	w.Place(id)
	return id
}

// NewMonster creates and places a monster that hunts or wanders around target.
func NewMonster(w *ecs.World, m config.Monster, target ecs.EntityID) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, &component.Position{X: m.Pos.X, Y: m.Pos.Y})
	w.Add(id, &component.Renderable{
		Name:        m.Kind,
		Frames:      append([]string(nil), m.Frames...),
		Speed:       1.0,
		FGColor:     tcell.ColorRed,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderMonster,
	})
	w.Add(id, component.NewCreature(m.Name, m.HP, component.DeathMonster))
	w.Add(id, &component.AI{Behavior: behavior(m.Behavior), Target: target})
	w.Place(id)
	return id
}

// NewItem creates and places a free-standing item at (x, y).
func NewItem(w *ecs.World, x, y int, name, glyph string, item *component.Item) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, &component.Position{X: x, Y: y})
	w.Add(id, &component.Renderable{
		Name:        name,
		Frames:      []string{glyph},
		FGColor:     tcell.ColorGreen,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderItem,
	})
	w.Add(id, item)
	w.Place(id)
	return id
}

// Populate fills s with the configured player and monsters, in that order,
// and computes the first visibility field.
func Populate(s *session.Session) {
	log := s.Logger("factory")
	s.Player = NewPlayer(s.World, s.Config.Player)
	for _, m := range s.Config.Monsters {
		id := NewMonster(s.World, m, s.Player)
		log.WithField("entity", id).Debugf("spawned %s the %s", m.Name, m.Kind)
	}
	s.RefreshView()
}

func behavior(name string) component.AIBehavior {
	if name == "chase" {
		return component.BehaviorChase
	}
	return component.BehaviorWander
}
