package component

import "crab-roguelike/internal/ecs"

const CContainer ecs.ComponentType = 5

// Container holds item actors in pickup order.
type Container struct {
	MaxVolume float64
	Items     []ecs.EntityID
}

func (*Container) Type() ecs.ComponentType { return CContainer }

// CurrentVolume sums the volume of the held items. It is never cached.
func (c *Container) CurrentVolume(w *ecs.World) float64 {
	total := 0.0
	for _, id := range c.Items {
		if it := ItemOf(w, id); it != nil {
			total += it.Volume
		}
	}
	return total
}
