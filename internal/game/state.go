package game

import "dungeon-kernel/internal/ecs"

// StateKind names a state of the turn state machine.
type StateKind uint8

const (
	StatePreRun StateKind = iota
	StateAwaitingInput
	StatePlayerTurn
	StateMonsterTurn
	StateShowInventory
	StateShowDropItem
	StateShowRemoveItem
	StateShowTargeting
	StateNextLevel
	StateMainMenu
	StateSaveGame
	StateGameOver
)

var stateNames = [...]string{
	StatePreRun:         "PreRun",
	StateAwaitingInput:  "AwaitingInput",
	StatePlayerTurn:     "PlayerTurn",
	StateMonsterTurn:    "MonsterTurn",
	StateShowInventory:  "ShowInventory",
	StateShowDropItem:   "ShowDropItem",
	StateShowRemoveItem: "ShowRemoveItem",
	StateShowTargeting:  "ShowTargeting",
	StateNextLevel:      "NextLevel",
	StateMainMenu:       "MainMenu",
	StateSaveGame:       "SaveGame",
	StateGameOver:       "GameOver",
}

func (k StateKind) String() string {
	if int(k) < len(stateNames) {
		return stateNames[k]
	}
	return "Unknown"
}

// RunState is the current state plus the payload some states carry.
// Range, Radius and Item are set only for StateShowTargeting; Menu only for
// StateMainMenu.
type RunState struct {
	Kind   StateKind
	Range  int
	Radius int
	Item   ecs.EntityID
	Menu   MainMenuSelection
}

// Is reports whether s is in state k.
func (s RunState) Is(k StateKind) bool { return s.Kind == k }

func (s RunState) String() string {
	switch s.Kind {
	case StateShowTargeting:
		return s.Kind.String() + "{item " + s.Item.String() + "}"
	case StateMainMenu:
		return s.Kind.String() + "{" + s.Menu.String() + "}"
	}
	return s.Kind.String()
}

func stateOf(k StateKind) RunState { return RunState{Kind: k} }

func targetingState(rng, radius int, item ecs.EntityID) RunState {
	return RunState{Kind: StateShowTargeting, Range: rng, Radius: radius, Item: item}
}

func mainMenuState(sel MainMenuSelection) RunState {
	return RunState{Kind: StateMainMenu, Menu: sel}
}
