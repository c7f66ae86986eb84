package game

import "github.com/gdamore/tcell/v2"

// Action is a key press interpreted in the main map view. Some actions map
// directly to an intent; others open an overlay that produces one.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionPass
	ActionPickup
	ActionInventory
	ActionDrop
	ActionLightning
	ActionFireball
	ActionInspect
	ActionPause
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys. Digits follow the numeric keypad layout.
	switch ev.Rune() {
	case '8':
		return ActionMoveN
	case '2':
		return ActionMoveS
	case '6':
		return ActionMoveE
	case '4':
		return ActionMoveW
	case '7', 'y', 'Y':
		return ActionMoveNW
	case '9', 'u', 'U':
		return ActionMoveNE
	case '1', 'b', 'B':
		return ActionMoveSW
	case '3', 'n', 'N':
		return ActionMoveSE
	case '5', ' ', '.':
		return ActionPass
	case 'g', 'G':
		return ActionPickup
	case 'i', 'I':
		return ActionInventory
	case 'd', 'D':
		return ActionDrop
	case 'l', 'L':
		return ActionLightning
	case 'f', 'F':
		return ActionFireball
	case 'h', 'H':
		return ActionInspect
	case 'p', 'P':
		return ActionPause
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}

// directIntent returns the intent for actions that need no overlay.
func directIntent(a Action) (Intent, bool) {
	if dx, dy := actionToDelta(a); dx != 0 || dy != 0 {
		return Move(dx, dy), true
	}
	switch a {
	case ActionPass:
		return Pass(), true
	case ActionPickup:
		return Pickup(), true
	case ActionInspect:
		return Inspect(), true
	case ActionQuit:
		return Quit(), true
	}
	return Intent{}, false
}
