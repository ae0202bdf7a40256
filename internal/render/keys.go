package render

import (
	"dungeon-kernel/internal/game"

	"github.com/gdamore/tcell/v2"
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) game.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.ActionMoveN
	case tcell.KeyDown:
		return game.ActionMoveS
	case tcell.KeyRight:
		return game.ActionMoveE
	case tcell.KeyLeft:
		return game.ActionMoveW
	case tcell.KeyHome:
		return game.ActionMoveNW
	case tcell.KeyPgUp:
		return game.ActionMoveNE
	case tcell.KeyEnd:
		return game.ActionMoveSW
	case tcell.KeyPgDn:
		return game.ActionMoveSE
	case tcell.KeyEscape:
		return game.ActionSaveQuit
	case tcell.KeyRune:
	default:
		return game.ActionNone
	}
	switch ev.Rune() {
	case 'k', 'K', '8':
		return game.ActionMoveN
	case 'j', 'J', '2':
		return game.ActionMoveS
	case 'l', 'L', '6':
		return game.ActionMoveE
	case 'h', 'H', '4':
		return game.ActionMoveW
	case 'y', 'Y', '7':
		return game.ActionMoveNW
	case 'u', 'U', '9':
		return game.ActionMoveNE
	case 'b', 'B', '1':
		return game.ActionMoveSW
	case 'n', 'N', '3':
		return game.ActionMoveSE
	case '5', '.', ' ':
		return game.ActionWait
	case ',', 'g', 'G':
		return game.ActionPickup
	case 'i', 'I':
		return game.ActionInventory
	case 'd', 'D':
		return game.ActionDrop
	case 'R':
		return game.ActionRemove
	case '>':
		return game.ActionDescend
	}
	return game.ActionNone
}

// targetDelta maps cursor keys in targeting mode to a cursor step.
func targetDelta(ev *tcell.EventKey) (dx, dy int, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	case tcell.KeyRight:
		return 1, 0, true
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return 0, -1, true
		case 'j':
			return 0, 1, true
		case 'l':
			return 1, 0, true
		case 'h':
			return -1, 0, true
		case 'y':
			return -1, -1, true
		case 'u':
			return 1, -1, true
		case 'b':
			return -1, 1, true
		case 'n':
			return 1, 1, true
		}
	}
	return 0, 0, false
}
