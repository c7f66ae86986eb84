package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/zyedidia/generic/mapset"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/ecs"
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/session"
)

// Renderer draws a session onto a tcell screen. It only reads game state.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	theme   TileTheme
	hudRows int
}

// NewRenderer creates a Renderer that keeps the bottom hudRows rows for
// the status line and messages.
func NewRenderer(screen tcell.Screen, hudRows int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(geom.Point{}, w, max(h-hudRows, 1)),
		theme:   TidePool,
		hudRows: hudRows,
	}
}

// Resize refits the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-r.hudRows, 1)
}

// CenterOn recenters the camera on world position p.
func (r *Renderer) CenterOn(p geom.Point) { r.camera.Center(p) }

// ScreenToWorld converts a screen cell, e.g. a mouse position, to a tile.
func (r *Renderer) ScreenToWorld(sx, sy int) geom.Point {
	return r.camera.ScreenToWorld(sx, sy)
}

// Overlay marks the tiles of a targeting line and its splash area.
type Overlay struct {
	Line   []geom.Point
	Splash []geom.Point
}

// backgrounds returns the shading for each marked tile. Line tiles win over
// splash tiles.
func (ov *Overlay) backgrounds() map[geom.Point]tcell.Color {
	if ov == nil {
		return nil
	}
	onLine := mapset.Of(ov.Line...)
	bg := make(map[geom.Point]tcell.Color, len(ov.Line)+len(ov.Splash))
	for _, p := range ov.Splash {
		if !onLine.Has(p) {
			bg[p] = colorTargetSplash
		}
	}
	onLine.Each(func(p geom.Point) { bg[p] = colorTargetLine })
	return bg
}

// DrawFrame clears the screen and draws the map and the actors standing on
// visible tiles, shading the tiles of ov when it is non-nil. elapsed drives
// the actors' animations.
func (r *Renderer) DrawFrame(s *session.Session, elapsed float64, ov *Overlay) {
	bg := ov.backgrounds()
	r.screen.Clear()
	r.drawMap(s, bg)
	r.drawEntities(s, elapsed, bg)
}

func tileStyle(bg map[geom.Point]tcell.Color, p geom.Point) tcell.Style {
	if c, ok := bg[p]; ok {
		return tcell.StyleDefault.Background(c)
	}
	return tcell.StyleDefault.Background(tcell.ColorBlack)
}

// drawMap renders all visible and explored tiles.
func (r *Renderer) drawMap(s *session.Session, bg map[geom.Point]tcell.Color) {
	for y := 0; y < s.Map.Height; y++ {
		for x := 0; x < s.Map.Width; x++ {
			p := geom.Pt(x, y)
			glyph := r.theme.tileGlyph(*s.Map.At(x, y), s.View.Visible(p))
			if glyph == "" {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(p)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, glyph, tileStyle(bg, p))
		}
	}
}

// drawable holds sorting info for entity rendering.
type drawable struct {
	id    ecs.EntityID
	order int
	pos   geom.Point
	rend  *component.Renderable
}

// drawables returns the placed entities on visible tiles, lowest render
// order first. Ties keep registry order.
func drawables(s *session.Session) []drawable {
	ids := s.World.Query(component.CRenderable, component.CPosition)
	out := make([]drawable, 0, len(ids))
	for _, id := range ids {
		pos := component.PositionOf(s.World, id).Point()
		if !s.View.Visible(pos) {
			continue
		}
		rend := component.RenderableOf(s.World, id)
		out = append(out, drawable{id: id, order: rend.RenderOrder, pos: pos, rend: rend})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].order < out[j].order
	})
	return out
}

func (r *Renderer) drawEntities(s *session.Session, elapsed float64, bg map[geom.Point]tcell.Color) {
	for _, e := range drawables(s) {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos)
		if !onScreen {
			continue
		}
		style := tileStyle(bg, e.pos).Foreground(e.rend.FGColor)
		r.putGlyph(sx, sy, e.rend.Frame(elapsed), style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Pad narrow glyphs so every tile spans two columns.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// Show flushes the drawn frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }
