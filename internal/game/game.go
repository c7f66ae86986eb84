// Package game runs the turn controller behind a tcell terminal front end.
package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/geom"
	"crab-roguelike/internal/render"
	"crab-roguelike/internal/session"
	"crab-roguelike/internal/system"
)

// frameInterval paces redraws so idle animations keep moving.
const frameInterval = 200 * time.Millisecond

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	s        *session.Session
	ctrl     *Controller
	start    time.Time
	log      *logrus.Entry
}

// New creates a Game on a freshly initialised terminal screen.
func New(s *session.Session) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return NewWithScreen(s, screen), nil
}

// NewWithScreen creates a Game on an already initialised screen.
func NewWithScreen(s *session.Session, screen tcell.Screen) *Game {
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, render.HUDRows(s.Config.Messages.Visible)),
		s:        s,
		ctrl:     NewController(s),
		start:    time.Now(),
		log:      s.Logger("game"),
	}
}

// Run is the main loop. It returns when the player quits or the screen
// is closed, and always finalises the screen.
func (g *Game) Run() error {
	defer g.screen.Fini()

	stop := make(chan struct{})
	defer close(stop)
	go g.tick(stop)

	g.log.Info("game started")
	for {
		g.draw(nil)
		g.renderer.Show()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			in, ok := g.intentFor(keyToAction(ev))
			if !ok {
				continue
			}
			if g.ctrl.Apply(in).Quit {
				g.log.WithField("turns", g.s.Turn).Info("game over")
				return nil
			}
		}
	}
}

// tick posts an interrupt each frame so Run redraws animations.
func (g *Game) tick(stop <-chan struct{}) {
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

func (g *Game) elapsed() float64 { return time.Since(g.start).Seconds() }

// draw renders the map, the optional targeting overlay and the HUD. The
// caller adds any menu and calls Show.
func (g *Game) draw(ov *render.Overlay) {
	if pos, ok := g.s.PlayerPos(); ok {
		g.renderer.CenterOn(pos)
	}
	g.renderer.DrawFrame(g.s, g.elapsed(), ov)
	g.renderer.DrawHUD(g.s)
}

// intentFor turns a map-view action into an intent, opening an overlay when
// the action needs more input. ok is false when nothing should be applied.
func (g *Game) intentFor(a Action) (Intent, bool) {
	if in, ok := directIntent(a); ok {
		return in, true
	}
	if g.s.Over {
		return Intent{}, false
	}
	switch a {
	case ActionInventory:
		return g.runInventory(false)
	case ActionDrop:
		return g.runInventory(true)
	case ActionLightning:
		return Cast(system.SpellLightning, g.runTargeting(system.SpellLightning)), true
	case ActionFireball:
		return Cast(system.SpellFireball, g.runTargeting(system.SpellFireball)), true
	case ActionPause:
		g.runPause()
	}
	return Intent{}, false
}

// runTargeting lets the player steer a cursor with movement keys or the
// mouse. The resolved line and splash are redrawn every frame. It returns
// the chosen tile, or nil when cancelled.
func (g *Game) runTargeting(sp system.Spell) *geom.Point {
	origin, ok := g.s.PlayerPos()
	if !ok {
		return nil
	}
	opts := system.Targeting(g.s, sp)
	radius := system.SplashRadius(g.s, sp)
	cursor := origin

	for {
		line := system.ResolveLine(g.s, origin, cursor, opts)
		ov := &render.Overlay{Line: line}
		if radius >= 0 && len(line) > 0 {
			ov.Splash = system.ResolveSplash(g.s, line[len(line)-1], radius)
		}
		g.draw(ov)
		g.renderer.DrawBanner(fmt.Sprintf("Cast %s: move to aim, Enter to cast, Esc to cancel", sp))
		g.renderer.Show()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventMouse:
			x, y := ev.Position()
			cursor = g.renderer.ScreenToWorld(x, y)
			if ev.Buttons()&tcell.Button1 != 0 {
				return &cursor
			}
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return nil
			case tcell.KeyEnter:
				return &cursor
			}
			if dx, dy := actionToDelta(keyToAction(ev)); dx != 0 || dy != 0 {
				next := cursor.Add(geom.Pt(dx, dy))
				if g.s.Map.InBounds(next.X, next.Y) {
					cursor = next
				}
			}
		}
	}
}

// itemNames lists the player's inventory for the menus.
func itemNames(s *session.Session) []string {
	items := system.Inventory(s, s.Player)
	names := make([]string, 0, len(items))
	for _, id := range items {
		name := "something"
		if r := component.RenderableOf(s.World, id); r != nil {
			name = r.Name
		}
		names = append(names, name)
	}
	return names
}

// runInventory shows the inventory. Enter uses the selected item, or drops
// it when drop is set; Backspace always drops. Esc closes without acting.
func (g *Game) runInventory(drop bool) (Intent, bool) {
	title := "Inventory:"
	if drop {
		title = "Drop which item?"
	}
	cursor := 0
	for {
		names := itemNames(g.s)
		cursor = max(min(cursor, len(names)-1), 0)
		lines := names
		if len(lines) == 0 {
			lines = []string{"(empty)"}
		}
		g.draw(nil)
		g.renderer.DrawMenu(title, lines, cursor)
		g.renderer.Show()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return Intent{}, false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return Intent{}, false
			case tcell.KeyUp:
				cursor--
			case tcell.KeyDown:
				cursor++
			case tcell.KeyEnter:
				if len(names) == 0 {
					continue
				}
				if drop {
					return DropItem(cursor), true
				}
				return UseItem(cursor), true
			case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
				if len(names) > 0 {
					return DropItem(cursor), true
				}
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'i', 'I', 'd', 'D':
					return Intent{}, false
				case '8':
					cursor--
				case '2':
					cursor++
				}
			}
		}
	}
}

// runPause blocks until p or Esc is pressed.
func (g *Game) runPause() {
	for {
		g.draw(nil)
		g.renderer.DrawBanner("PAUSED")
		g.renderer.Show()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'p' || ev.Rune() == 'P' {
				return
			}
		}
	}
}
