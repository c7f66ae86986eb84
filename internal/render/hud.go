package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"crab-roguelike/internal/component"
	"crab-roguelike/internal/message"
	"crab-roguelike/internal/session"
)

// HUDRows returns the rows DrawHUD needs to show n messages.
func HUDRows(n int) int { return n + 2 }

// DrawHUD renders the status line and the most recent messages at the
// bottom of the screen.
func (r *Renderer) DrawHUD(s *session.Session) {
	_, screenH := r.screen.Size()
	hudY := screenH - r.hudRows

	r.drawHLine(hudY, colorHUDRule)
	r.drawText(0, hudY+1, statusLine(s), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for i, m := range s.Messages.Recent(r.hudRows - 2) {
		style := tcell.StyleDefault.Foreground(m.FG).Background(m.BG)
		r.drawText(0, hudY+2+i, m.Text, style)
	}
}

func statusLine(s *session.Session) string {
	hp := "HP: ?"
	if cr := component.CreatureOf(s.World, s.Player); cr != nil {
		hp = fmt.Sprintf("HP: %d/%d", cr.HP, cr.MaxHP)
	}
	name := s.Config.Player.Name
	if r := component.RenderableOf(s.World, s.Player); r != nil {
		name = fmt.Sprintf("%s the %s", name, r.Name)
	}
	line := fmt.Sprintf("%s  %s  Turn: %d", name, hp, s.Turn)
	if s.Over {
		line += "  [dead, q to quit]"
	}
	return line
}

// DrawMenu renders a boxed list centred on the screen with the cursor row
// shown in reverse video.
func (r *Renderer) DrawMenu(title string, lines []string, cursor int) {
	width := runewidth.StringWidth(title)
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width += 2
	screenW, screenH := r.screen.Size()
	x0 := max((screenW-width)/2, 0)
	y0 := max((screenH-len(lines)-1)/2, 0)

	base := tcell.StyleDefault.Foreground(message.ColorWhite).Background(message.ColorBlack)
	r.fill(x0, y0, width, len(lines)+1, base)
	r.drawText(x0+1, y0, title, base.Bold(true))
	for i, l := range lines {
		style := base
		if i == cursor {
			style = base.Reverse(true)
		}
		r.drawText(x0+1, y0+1+i, l, style)
	}
}

// DrawBanner writes text centred on the map view.
func (r *Renderer) DrawBanner(text string) {
	screenW, screenH := r.screen.Size()
	x := max((screenW-runewidth.StringWidth(text))/2, 0)
	y := (screenH - r.hudRows) / 2
	style := tcell.StyleDefault.Foreground(message.ColorWhite).Background(message.ColorBlack)
	r.drawText(x, y, text, style)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) fill(x0, y0, w, h int, style tcell.Style) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes text from column x, clipped at the right edge.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	screenW, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if col+w > screenW {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
}
