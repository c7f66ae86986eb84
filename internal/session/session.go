// Package session holds the state of one running game. Every system takes
// the session explicitly; nothing in the core reaches for globals.
package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/config"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/gamemap"
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/logger"
	"crab-roguelike/internal/message"
)

// Session owns the map, actors, visibility field and message log.
type Session struct {
	ID       string // run id stamped on every log entry
	Config   config.Config
	World    *ecs.World
	Map      *gamemap.GameMap
	View     *gamemap.Visibility
	Messages *message.Log
	Rand     *rand.Rand
	Log      *logrus.Logger

	Player ecs.EntityID
	Over   bool // player died; only quit is accepted afterwards
	Turn   int
}

// New returns an empty session on a fresh walled map built from cfg.
// The caller populates actors and sets Player. A zero seed uses the clock.
func New(cfg config.Config, log *logrus.Logger) *Session {
	if log == nil {
		log = logger.Discard()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := gamemap.New(cfg.Map.Width, cfg.Map.Height)
	for _, p := range cfg.Map.Pillars {
		m.Set(p.X, p.Y, gamemap.MakePillar())
	}
	return &Session{
		ID:       uuid.NewString(),
		Config:   cfg,
		World:    ecs.NewWorld(),
		Map:      m,
		View:     gamemap.NewVisibility(m, cfg.FOV.Radius, cfg.FOV.LightWalls),
		Messages: message.NewLog(),
		Rand:     rand.New(rand.NewSource(seed)),
		Log:      log,
		Player:   ecs.NilEntity,
	}
}

// Logger returns an entry tagged with the run id and the given subsystem
// name.
func (s *Session) Logger(component string) *logrus.Entry {
	return logger.Component(s.Log, component).WithField("session", s.ID)
}

// PlayerPos returns the player's position, or false when the player has none.
func (s *Session) PlayerPos() (geom.Point, bool) {
	pos := component.PositionOf(s.World, s.Player)
	if pos == nil {
		return geom.Point{}, false
	}
	return pos.Point(), true
}

// RefreshView recomputes the visibility field from the player when it is
// dirty or the player has moved. It reports whether a recompute happened.
func (s *Session) RefreshView() bool {
	p, ok := s.PlayerPos()
	if !ok {
		return false
	}
	return s.View.Update(s.Map, p)
}
