// Package config loads the game settings: map layout, vision, combat and
// spell tuning, and the starting roster.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Point is a map coordinate in configuration files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type Map struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Pillars []Point `yaml:"pillars"`
}

type FOV struct {
	Radius     int  `yaml:"radius"`
	LightWalls bool `yaml:"light_walls"`
}

type Combat struct {
	MeleeDamage int `yaml:"melee_damage"`
	CorpseHeal  int `yaml:"corpse_heal"`
}

// Spell tunes one targeted spell. Radius is unused by line spells.
type Spell struct {
	Damage   int `yaml:"damage"`
	MaxRange int `yaml:"max_range"`
	Radius   int `yaml:"radius"`
}

type Spells struct {
	Lightning Spell `yaml:"lightning"`
	Fireball  Spell `yaml:"fireball"`
}

type Player struct {
	Name      string  `yaml:"name"`
	Kind      string  `yaml:"kind"`
	Glyph     string  `yaml:"glyph"`
	Pos       Point   `yaml:"pos"`
	HP        int     `yaml:"hp"`
	MaxVolume float64 `yaml:"max_volume"`
}

type Monster struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Frames   []string `yaml:"frames"`
	Pos      Point    `yaml:"pos"`
	HP       int      `yaml:"hp"`
	Behavior string   `yaml:"behavior"` // "chase" or "wander"
}

type Messages struct {
	Visible int `yaml:"visible"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
	File   string `yaml:"file"`
}

// Config is the full game configuration.
type Config struct {
	Seed     int64     `yaml:"seed"`
	Map      Map       `yaml:"map"`
	FOV      FOV       `yaml:"fov"`
	Combat   Combat    `yaml:"combat"`
	Spells   Spells    `yaml:"spells"`
	Player   Player    `yaml:"player"`
	Monsters []Monster `yaml:"monsters"`
	Messages Messages  `yaml:"messages"`
	Log      Log       `yaml:"log"`
}

// Default returns the stock game: a walled 20x20 room with two pillars,
// the player and two crabs.
func Default() Config {
	return Config{
		Map: Map{
			Width:   20,
			Height:  20,
			Pillars: []Point{{10, 10}, {10, 15}},
		},
		FOV:    FOV{Radius: 10, LightWalls: true},
		Combat: Combat{MeleeDamage: 3, CorpseHeal: 4},
		Spells: Spells{
			Lightning: Spell{Damage: 5, MaxRange: 5},
			Fireball:  Spell{Damage: 5, MaxRange: 4, Radius: 1},
		},
		Player: Player{
			Name:      "Greg",
			Kind:      "human",
			Glyph:     "🧑",
			Pos:       Point{13, 13},
			HP:        10,
			MaxVolume: 10,
		},
		Monsters: []Monster{
			{Name: "Jackie", Kind: "Smart Crab", Frames: []string{"🦀", "c"}, Pos: Point{15, 15}, HP: 10, Behavior: "chase"},
			{Name: "Bob", Kind: "Dumb Crab", Frames: []string{"🦀", "c"}, Pos: Point{14, 15}, HP: 10, Behavior: "wander"},
		},
		Messages: Messages{Visible: 4},
		Log:      Log{Level: "info", Format: "text", File: "crab-roguelike.log"},
	}
}

// Load reads a YAML file over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var (
	ErrMapTooSmall  = errors.New("map must be at least 3x3")
	ErrBadRadius    = errors.New("fov radius must not be negative")
	ErrBadPlacement = errors.New("actor must be placed inside the map border")
	ErrBadBehavior  = errors.New("unknown monster behavior")
)

// Validate checks the settings the core treats as invariants.
func (c Config) Validate() error {
	if c.Map.Width < 3 || c.Map.Height < 3 {
		return fmt.Errorf("%w: got %dx%d", ErrMapTooSmall, c.Map.Width, c.Map.Height)
	}
	if c.FOV.Radius < 0 {
		return fmt.Errorf("%w: got %d", ErrBadRadius, c.FOV.Radius)
	}
	if !c.interior(c.Player.Pos) {
		return fmt.Errorf("%w: player at (%d,%d)", ErrBadPlacement, c.Player.Pos.X, c.Player.Pos.Y)
	}
	for _, p := range c.Map.Pillars {
		if !c.interior(p) {
			return fmt.Errorf("%w: pillar at (%d,%d)", ErrBadPlacement, p.X, p.Y)
		}
	}
	for _, m := range c.Monsters {
		if !c.interior(m.Pos) {
			return fmt.Errorf("%w: %s at (%d,%d)", ErrBadPlacement, m.Name, m.Pos.X, m.Pos.Y)
		}
		if m.Behavior != "chase" && m.Behavior != "wander" {
			return fmt.Errorf("%w: %q for %s", ErrBadBehavior, m.Behavior, m.Name)
		}
	}
	return nil
}

func (c Config) interior(p Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < c.Map.Width-1 && p.Y < c.Map.Height-1
}
