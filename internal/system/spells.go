package system

import (
	"github.com/sirupsen/logrus"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/message"
	"crab-roguelike/internal/session"
)

// Spell identifies a targeted spell the player can cast.
type Spell uint8

const (
	SpellLightning Spell = iota
	SpellFireball
)

func (sp Spell) String() string {
	switch sp {
	case SpellLightning:
		return "lightning"
	case SpellFireball:
		return "fireball"
	}
	return "unknown"
}

// Targeting returns the line options used to pick the spell's endpoint.
// Lightning is stopped by walls only; fireball by walls and creatures.
func Targeting(s *session.Session, sp Spell) LineOpts {
	switch sp {
	case SpellFireball:
		return LineOpts{MaxRange: s.Config.Spells.Fireball.MaxRange}
	default:
		return LineOpts{
			MaxRange:           s.Config.Spells.Lightning.MaxRange,
			PenetrateCreatures: true,
		}
	}
}

// SplashRadius returns the area radius of the spell, or -1 for spells
// without one.
func SplashRadius(s *session.Session, sp Spell) int {
	if sp == SpellFireball {
		return s.Config.Spells.Fireball.Radius
	}
	return -1
}

// Cast resolves the player's candidate target and casts sp. A nil
// candidate or a target that resolves to nothing cancels the cast. It
// reports whether the spell went off.
func Cast(s *session.Session, sp Spell, candidate *geom.Point) bool {
	if candidate == nil {
		return false
	}
	origin, ok := s.PlayerPos()
	if !ok {
		return false
	}
	line := ResolveLine(s, origin, *candidate, Targeting(s, sp))
	if len(line) == 0 {
		return false
	}
	endpoint := line[len(line)-1]

	s.Logger("spells").WithFields(logrus.Fields{
		"spell":    sp.String(),
		"endpoint": endpoint,
	}).Debug("cast")

	switch sp {
	case SpellLightning:
		return Lightning(s, origin, endpoint, s.Config.Spells.Lightning.Damage)
	case SpellFireball:
		cfg := s.Config.Spells.Fireball
		Fireball(s, endpoint, cfg.Radius, cfg.Damage)
		return true
	}
	return false
}

// Lightning damages every creature on the line from origin to endpoint,
// origin excluded. An empty line cancels the bolt.
func Lightning(s *session.Session, origin, endpoint geom.Point, damage int) bool {
	tiles := geom.Line(origin, endpoint, false)
	if len(tiles) == 0 {
		return false
	}
	for _, p := range tiles {
		if target := FirstCreature(s, At(p)); target != ecs.NilEntity {
			TakeDamage(s, target, damage)
		}
	}
	return true
}

// Fireball damages the first creature on every tile of the square around
// center, walls notwithstanding. It returns the number of creatures hit.
func Fireball(s *session.Session, center geom.Point, radius, damage int) int {
	hit := 0
	for _, p := range ResolveSplash(s, center, radius) {
		target := FirstCreature(s, At(p))
		if target == ecs.NilEntity {
			continue
		}
		TakeDamage(s, target, damage)
		hit++
		if target != s.Player && component.CreatureOf(s.World, target) != nil {
			s.Messages.Add(FullName(s, target)+" howls in pain.", message.ColorRed)
		}
	}
	return hit
}
