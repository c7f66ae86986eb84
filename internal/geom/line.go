package geom

// Line rasterizes the segment from -> to with integer Bresenham stepping and
// returns every cell in visiting order, ending at to.
//
// The path is 8-connected and has max(|dx|, |dy|) steps. When the ideal line
// passes exactly between two cells the x step is taken first, so
// Line((0,0), (2,1)) is (0,0) (1,0) (2,1). When from == to the result is
// [from] or empty depending on includeStart.
func Line(from, to Point, includeStart bool) []Point {
	if from == to {
		if includeStart {
			return []Point{from}
		}
		return []Point{}
	}

	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)
	err := dx - dy

	pts := make([]Point, 0, max(dx, dy)+1)
	if includeStart {
		pts = append(pts, from)
	}
	x, y := from.X, from.Y
	for x != to.X || y != to.Y {
		e2 := 2 * err
		if e2 >= -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		pts = append(pts, Point{x, y})
	}
	return pts
}

// Radius enumerates the square of half-width r centred on center, x-major.
// It is a Chebyshev box, not a disc, and ignores the map entirely: callers
// decide what an out-of-map or obstructed cell means.
func Radius(center Point, r int, includeCenter bool) []Point {
	if r < 0 {
		return nil
	}
	side := 2*r + 1
	pts := make([]Point, 0, side*side)
	for x := center.X - r; x <= center.X+r; x++ {
		for y := center.Y - r; y <= center.Y+r; y++ {
			p := Point{x, y}
			if p == center && !includeCenter {
				continue
			}
			pts = append(pts, p)
		}
	}
	return pts
}
