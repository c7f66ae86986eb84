package system

import (
	"testing"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/config"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/factory"
	"crab-roguelike/internal/session"
)

// newSession returns a seeded session on the default map holding only the
// player at (13,13).
func newSession(t *testing.T, pillars ...config.Point) *session.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	cfg.Monsters = nil
	if pillars != nil {
		cfg.Map.Pillars = pillars
	}
	s := session.New(cfg, nil)
	factory.Populate(s)
	return s
}

func spawn(s *session.Session, name string, x, y, hp int, behavior string) ecs.EntityID {
	return factory.NewMonster(s.World, config.Monster{
		Name:     name,
		Kind:     "Crab",
		Frames:   []string{"c", "C"},
		Pos:      config.Point{X: x, Y: y},
		HP:       hp,
		Behavior: behavior,
	}, s.Player)
}

func spawnItem(s *session.Session, x, y int, volume float64) ecs.EntityID {
	return factory.NewItem(s.World, x, y, "Shell", "o", &component.Item{Volume: volume})
}

func hp(s *session.Session, id ecs.EntityID) int {
	return component.CreatureOf(s.World, id).HP
}
