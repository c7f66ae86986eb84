package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveN},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveW},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"keypad 9", tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModNone), ActionMoveNE},
		{"b", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), ActionMoveSW},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPass},
		{"g", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), ActionPickup},
		{"i", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), ActionInventory},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionDrop},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), ActionLightning},
		{"f", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), ActionFireball},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionInspect},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPause},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyToAction(tc.ev); got != tc.want {
				t.Errorf("keyToAction = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestDirectIntent(t *testing.T) {
	cases := []struct {
		a      Action
		want   Intent
		direct bool
	}{
		{ActionMoveSE, Move(1, 1), true},
		{ActionPass, Pass(), true},
		{ActionPickup, Pickup(), true},
		{ActionInspect, Inspect(), true},
		{ActionQuit, Quit(), true},
		{ActionInventory, Intent{}, false},
		{ActionLightning, Intent{}, false},
		{ActionNone, Intent{}, false},
	}
	for _, tc := range cases {
		got, ok := directIntent(tc.a)
		if ok != tc.direct || got.Kind != tc.want.Kind || got.DX != tc.want.DX || got.DY != tc.want.DY {
			t.Errorf("directIntent(%v) = %+v, %v; want %+v, %v", tc.a, got, ok, tc.want, tc.direct)
		}
	}
}
