package term

import (
	"dungeoncore/internal/game"

	"github.com/gdamore/tcell/v2"
)

// Action represents a decoded key press.
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
	ActionWait
	ActionUse
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
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
	case tcell.KeyHome:
		return ActionMoveNW
	case tcell.KeyPgUp:
		return ActionMoveNE
	case tcell.KeyEnd:
		return ActionMoveSW
	case tcell.KeyPgDn:
		return ActionMoveSE
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys: vi keys and the numeric keypad.
	switch ev.Rune() {
	case 'k', 'K', '8':
		return ActionMoveN
	case 'j', 'J', '2':
		return ActionMoveS
	case 'l', 'L', '6':
		return ActionMoveE
	case 'h', 'H', '4':
		return ActionMoveW
	case 'y', 'Y', '7':
		return ActionMoveNW
	case 'u', 'U', '9':
		return ActionMoveNE
	case 'b', 'B', '1':
		return ActionMoveSW
	case 'n', 'N', '3':
		return ActionMoveSE
	case '.', '5', ' ':
		return ActionWait
	case 'g', 'G', ',':
		return ActionUse
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

// actionToIntent converts an action into the intent the simulation reads.
func actionToIntent(a Action) game.Intent {
	switch a {
	case ActionWait:
		return game.Wait()
	case ActionUse:
		return game.Use()
	}
	if dx, dy := actionToDelta(a); dx != 0 || dy != 0 {
		return game.Move(dx, dy)
	}
	return game.Intent{}
}
