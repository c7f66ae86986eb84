package system

import (
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/session"
)

// LineOpts configures how a targeting line is cut short.
type LineOpts struct {
	MaxRange           int // steps from the origin; 0 means unlimited
	PenetrateWalls     bool
	PenetrateCreatures bool
}

// ResolveLine returns the tiles from origin toward candidate that a
// targeted effect can reach. The line stops, inclusive, at the first tile
// that is MaxRange steps away, blocks the path, or holds a creature other
// than on the origin. Tiles outside the map end the line before them.
func ResolveLine(s *session.Session, origin, candidate geom.Point, opts LineOpts) []geom.Point {
	full := geom.Line(origin, candidate, true)
	valid := make([]geom.Point, 0, len(full))
	for i, p := range full {
		if !s.Map.InBounds(p.X, p.Y) {
			break
		}
		valid = append(valid, p)

		if opts.MaxRange > 0 && i == opts.MaxRange {
			break
		}
		if !opts.PenetrateWalls && s.Map.IsBlocked(p) {
			break
		}
		if !opts.PenetrateCreatures && i != 0 && FirstCreature(s, At(p)) != ecs.NilEntity {
			break
		}
	}
	return valid
}

// ResolveSplash returns the in-map tiles of the square of half-width r
// around center. Walls do not shield anything inside the square.
func ResolveSplash(s *session.Session, center geom.Point, r int) []geom.Point {
	var out []geom.Point
	for _, p := range geom.Radius(center, r, true) {
		if s.Map.InBounds(p.X, p.Y) {
			out = append(out, p)
		}
	}
	return out
}
