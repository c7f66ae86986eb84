package component

import (
	"crab-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Renderable is an actor's display identity: what it is called and how it
// is drawn. Frames cycle once every Speed seconds; a single frame is static.
type Renderable struct {
	Name        string // object name, e.g. "Smart Crab"
	Frames      []string
	Speed       float64
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int
}

func (*Renderable) Type() ecs.ComponentType { return CRenderable }

// Freeze stops the animation on its first frame.
func (r *Renderable) Freeze() {
	if len(r.Frames) > 1 {
		r.Frames = r.Frames[:1]
	}
}

// Frame returns the glyph to draw at the given elapsed time in seconds.
func (r *Renderable) Frame(elapsed float64) string {
	switch len(r.Frames) {
	case 0:
		return "?"
	case 1:
		return r.Frames[0]
	}
	if r.Speed <= 0 {
		return r.Frames[0]
	}
	perFrame := r.Speed / float64(len(r.Frames))
	return r.Frames[int(elapsed/perFrame)%len(r.Frames)]
}
