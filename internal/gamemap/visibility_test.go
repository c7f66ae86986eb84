package gamemap

import (
	"math/rand"
	"testing"

	"crab-roguelike/internal/geom"
)

// pillarMap is the starting level layout: a walled 20x20 room with two
// pillars.
func pillarMap() *GameMap {
	m := New(20, 20)
	m.Set(10, 10, MakePillar())
	m.Set(10, 15, MakePillar())
	return m
}

func TestVisibilityOriginAlwaysVisible(t *testing.T) {
	m := New(20, 20)
	v := NewVisibility(m, 5, true)
	v.Update(m, geom.Pt(5, 5))

	if !v.Visible(geom.Pt(5, 5)) {
		t.Error("observer's own tile must always be visible")
	}
	if !m.At(5, 5).Explored {
		t.Error("observer's own tile must be marked explored")
	}
}

func TestVisibilityNearbyTilesVisible(t *testing.T) {
	m := New(20, 20)
	v := NewVisibility(m, 5, true)
	v.Update(m, geom.Pt(10, 10))

	for _, p := range []geom.Point{geom.Pt(10, 7), geom.Pt(10, 13), geom.Pt(7, 10), geom.Pt(13, 10), geom.Pt(12, 12)} {
		if !v.Visible(p) {
			t.Errorf("tile %v should be visible with radius 5", p)
		}
		if !m.At(p.X, p.Y).Explored {
			t.Errorf("tile %v should be marked explored", p)
		}
	}
}

func TestVisibilityRadiusLimits(t *testing.T) {
	m := New(30, 30)
	v := NewVisibility(m, 4, true)
	v.Update(m, geom.Pt(15, 15))

	for _, p := range []geom.Point{geom.Pt(15, 20), geom.Pt(15, 10), geom.Pt(20, 15), geom.Pt(10, 15), geom.Pt(18, 18)} {
		if v.Visible(p) {
			t.Errorf("tile %v lies beyond radius 4 and must not be visible", p)
		}
		if m.At(p.X, p.Y).Explored {
			t.Errorf("tile %v was never seen and must stay unexplored", p)
		}
	}
	if !v.Visible(geom.Pt(15, 19)) {
		t.Error("tile at exactly the radius should be visible")
	}
}

func TestVisibilityPillarCastsShadow(t *testing.T) {
	m := New(20, 20)
	m.Set(10, 8, MakePillar())
	v := NewVisibility(m, 8, true)
	v.Update(m, geom.Pt(10, 10))

	if v.Visible(geom.Pt(10, 7)) {
		t.Error("tile (10,7) directly behind the pillar should be hidden")
	}
	if v.Visible(geom.Pt(10, 6)) {
		t.Error("tile (10,6) directly behind the pillar should be hidden")
	}
}

func TestVisibilityWithoutLightWallsHidesBlockers(t *testing.T) {
	m := pillarMap()
	v := NewVisibility(m, 10, false)
	v.Update(m, geom.Pt(13, 13))

	for _, p := range v.Points() {
		if m.At(p.X, p.Y).BlocksPath {
			t.Errorf("blocking tile %v reported visible with lightWalls off", p)
		}
	}
}

func TestVisibilityIsSymmetric(t *testing.T) {
	const (
		maps    = 40
		pillars = 30
		radius  = 6
	)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < maps; i++ {
		m := New(20, 20)
		for j := 0; j < pillars; j++ {
			m.Set(1+rng.Intn(18), 1+rng.Intn(18), MakePillar())
		}

		fields := make(map[geom.Point]*Visibility)
		var floors []geom.Point
		for y := 1; y < m.Height-1; y++ {
			for x := 1; x < m.Width-1; x++ {
				p := geom.Pt(x, y)
				if m.IsBlocked(p) {
					continue
				}
				v := NewVisibility(m, radius, true)
				v.Update(m, p)
				fields[p] = v
				floors = append(floors, p)
			}
		}
		for _, a := range floors {
			for _, b := range floors {
				if fields[a].Visible(b) != fields[b].Visible(a) {
					t.Fatalf("map %d: %v sees %v = %v, reverse = %v",
						i, a, b, fields[a].Visible(b), fields[b].Visible(a))
				}
			}
		}
	}
}

func TestVisibilityUpdateIsLazyAndIdempotent(t *testing.T) {
	m := pillarMap()
	v := NewVisibility(m, 10, true)

	if !v.Update(m, geom.Pt(13, 13)) {
		t.Fatal("first Update must compute")
	}
	first := v.Points()

	if v.Update(m, geom.Pt(13, 13)) {
		t.Error("Update with an unchanged origin and clean field must not recompute")
	}
	v.Invalidate()
	if !v.Dirty() {
		t.Error("Invalidate must mark the field dirty")
	}
	if !v.Update(m, geom.Pt(13, 13)) {
		t.Error("Update after Invalidate must recompute")
	}
	second := v.Points()
	if len(first) != len(second) {
		t.Fatalf("recomputation changed the field: %d vs %d tiles", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("recomputation changed tile %d: %v vs %v", i, first[i], second[i])
		}
	}
	if !v.Update(m, geom.Pt(12, 13)) {
		t.Error("Update from a new origin must recompute")
	}
}

func TestExploredIsMonotonic(t *testing.T) {
	m := New(30, 10)
	v := NewVisibility(m, 3, true)
	v.Update(m, geom.Pt(3, 5))
	if !m.At(5, 5).Explored {
		t.Fatal("tile near the first origin should be explored")
	}
	v.Update(m, geom.Pt(25, 5))
	if v.Visible(geom.Pt(5, 5)) {
		t.Fatal("tile far from the new origin must not be visible")
	}
	if !m.At(5, 5).Explored {
		t.Error("explored flag must never revert")
	}
}

func TestVisibilityOutOfBoundsOriginPanics(t *testing.T) {
	m := New(10, 10)
	v := NewVisibility(m, 5, true)
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-bounds origin must panic")
		}
	}()
	v.Update(m, geom.Pt(-1, 3))
}
