package gamemap

import (
	"fmt"
	"slices"

	"crab-roguelike/internal/geom"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"
)

// Visibility is the field of view of a single observer.
//
// It is derived state: the set is recomputed lazily by Update when the
// observer moved or the field was invalidated, and every tile that enters the
// set is marked explored on the map.
type Visibility struct {
	Radius     int
	LightWalls bool

	fov     *rl.FOV
	visible mapset.Set[geom.Point]
	origin  geom.Point
	valid   bool
	dirty   bool
}

// NewVisibility creates an empty field for m. Nothing is visible until the
// first Update.
func NewVisibility(m *GameMap, radius int, lightWalls bool) *Visibility {
	return &Visibility{
		Radius:     radius,
		LightWalls: lightWalls,
		fov:        rl.NewFOV(gruid.NewRange(0, 0, m.Width, m.Height)),
		visible:    mapset.New[geom.Point](),
		dirty:      true,
	}
}

// Invalidate forces the next Update to recompute.
func (v *Visibility) Invalidate() { v.dirty = true }

// Dirty reports whether the next Update will recompute for an unchanged
// origin.
func (v *Visibility) Dirty() bool { return v.dirty || !v.valid }

// Origin returns the observer position of the last computation.
func (v *Visibility) Origin() geom.Point { return v.origin }

// Update recomputes the field from origin when it is dirty or the origin
// changed, and reports whether it did.
func (v *Visibility) Update(m *GameMap, origin geom.Point) bool {
	if v.valid && !v.dirty && origin == v.origin {
		return false
	}
	v.visible = ComputeVisibility(m, v.fov, origin, v.Radius, v.LightWalls)
	v.origin = origin
	v.valid = true
	v.dirty = false
	return true
}

// Visible reports whether p is in the current field.
func (v *Visibility) Visible(p geom.Point) bool {
	return v.visible.Has(p)
}

// Size returns the number of visible tiles.
func (v *Visibility) Size() int { return v.visible.Size() }

// Points returns the visible tiles sorted row by row.
func (v *Visibility) Points() []geom.Point {
	pts := make([]geom.Point, 0, v.visible.Size())
	v.visible.Each(func(p geom.Point) { pts = append(pts, p) })
	slices.SortFunc(pts, func(a, b geom.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return pts
}

// ComputeVisibility returns the tiles within radius of origin (Euclidean,
// inclusive) that origin can see, using symmetric shadow casting: if a floor
// tile A sees floor tile B then B sees A. Blocking tiles are reported only
// when lightWalls is set. Every returned tile is marked explored on m.
//
// Panics if origin is outside the map.
func ComputeVisibility(m *GameMap, fov *rl.FOV, origin geom.Point, radius int, lightWalls bool) mapset.Set[geom.Point] {
	if !m.InBounds(origin.X, origin.Y) {
		panic(fmt.Sprintf("gamemap: visibility origin %v outside %dx%d map", origin, m.Width, m.Height))
	}
	set := mapset.New[geom.Point]()
	set.Put(origin)

	if radius > 0 {
		passable := func(p gruid.Point) bool {
			return m.InBounds(p.X, p.Y) && !m.Tiles[p.Y][p.X].BlocksPath
		}
		r2 := radius * radius
		src := gruid.Point{X: origin.X, Y: origin.Y}
		for _, gp := range fov.SSCVisionMap(src, radius, passable, true) {
			p := geom.Pt(gp.X, gp.Y)
			if !m.InBounds(p.X, p.Y) {
				continue
			}
			d := p.Sub(origin)
			if d.X*d.X+d.Y*d.Y > r2 {
				continue
			}
			if !lightWalls && m.Tiles[p.Y][p.X].BlocksPath {
				continue
			}
			set.Put(p)
		}
	}

	set.Each(func(p geom.Point) {
		m.Tiles[p.Y][p.X].Explored = true
	})
	return set
}
