package component

import (
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/geom"
)

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y int
}

func (*Position) Type() ecs.ComponentType { return CPosition }

// Point returns the position as a grid point.
func (p *Position) Point() geom.Point { return geom.Pt(p.X, p.Y) }

// Set moves the position to q.
func (p *Position) Set(q geom.Point) { p.X, p.Y = q.X, q.Y }
