package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/config"
	"crab-roguelike/internal/geom"
)

func TestNewBuildsConfiguredMap(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	s := New(cfg, nil)

	if s.Map.Width != 20 || s.Map.Height != 20 {
		t.Fatalf("map is %dx%d; want 20x20", s.Map.Width, s.Map.Height)
	}
	for _, p := range cfg.Map.Pillars {
		if !s.Map.IsBlocked(geom.Pt(p.X, p.Y)) {
			t.Errorf("pillar at (%d,%d) should block", p.X, p.Y)
		}
	}
	if s.Messages.Len() != 0 || s.Over {
		t.Error("a new session should start with no messages and not over")
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	a, b := New(cfg, nil), New(cfg, nil)
	for i := 0; i < 10; i++ {
		if a.Rand.Intn(100) != b.Rand.Intn(100) {
			t.Fatal("same seed should give the same sequence")
		}
	}
}

func TestRefreshViewFollowsPlayer(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	s := New(cfg, nil)
	if s.RefreshView() {
		t.Fatal("no player yet, nothing to refresh")
	}

	s.Player = s.World.CreateEntity()
	pos := &component.Position{X: 3, Y: 3}
	s.World.Add(s.Player, pos)
	s.World.Place(s.Player)

	if !s.RefreshView() {
		t.Fatal("first refresh should compute")
	}
	if s.RefreshView() {
		t.Fatal("unchanged origin should not recompute")
	}
	pos.X = 4
	if !s.RefreshView() {
		t.Fatal("moving the player should recompute")
	}
	if !s.View.Visible(geom.Pt(4, 3)) {
		t.Fatal("player tile should be visible")
	}
}

func TestLoggerTagsSessionAndComponent(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s := New(config.Default(), log)
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", s.ID, err)
	}

	s.Logger("combat").Debug("hit")
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no entry logged")
	}
	if entry.Data["session"] != s.ID || entry.Data["component"] != "combat" {
		t.Fatalf("fields = %v", entry.Data)
	}
	if other := New(config.Default(), log); other.ID == s.ID {
		t.Fatal("two sessions share an id")
	}
}
