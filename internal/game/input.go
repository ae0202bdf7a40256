package game

import "dungeon-kernel/internal/gamemap"

// Action is one decision read from the player while AwaitingInput.
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
	ActionPickup
	ActionInventory
	ActionDrop
	ActionRemove
	ActionDescend
	ActionSaveQuit
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionMoveN:     "MoveN",
	ActionMoveS:     "MoveS",
	ActionMoveE:     "MoveE",
	ActionMoveW:     "MoveW",
	ActionMoveNE:    "MoveNE",
	ActionMoveNW:    "MoveNW",
	ActionMoveSE:    "MoveSE",
	ActionMoveSW:    "MoveSW",
	ActionWait:      "Wait",
	ActionPickup:    "Pickup",
	ActionInventory: "Inventory",
	ActionDrop:      "Drop",
	ActionRemove:    "Remove",
	ActionDescend:   "Descend",
	ActionSaveQuit:  "SaveQuit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// moveDeltas holds the step for each of the eight movement actions.
var moveDeltas = map[Action]gamemap.Point{
	ActionMoveN:  {X: 0, Y: -1},
	ActionMoveS:  {X: 0, Y: 1},
	ActionMoveE:  {X: 1, Y: 0},
	ActionMoveW:  {X: -1, Y: 0},
	ActionMoveNE: {X: 1, Y: -1},
	ActionMoveNW: {X: -1, Y: -1},
	ActionMoveSE: {X: 1, Y: 1},
	ActionMoveSW: {X: -1, Y: 1},
}

// actionToDelta converts a movement action to (dx, dy); any other action
// yields (0, 0).
func actionToDelta(a Action) (int, int) {
	d := moveDeltas[a]
	return d.X, d.Y
}
