package game

import (
	"context"
	"math/rand"

	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamelog"
	"dungeon-kernel/internal/gamemap"
)

// MenuResult is the outcome of one poll of a menu or targeting screen.
type MenuResult uint8

const (
	// MenuNoResponse means the player has not decided yet; the state
	// machine stays put and asks again next tick.
	MenuNoResponse MenuResult = iota
	MenuCancel
	MenuSelected
)

// MainMenuSelection is the highlighted main-menu entry.
type MainMenuSelection uint8

const (
	MenuNewGame MainMenuSelection = iota
	MenuLoadGame
	MenuQuit
)

func (s MainMenuSelection) String() string {
	switch s {
	case MenuNewGame:
		return "NewGame"
	case MenuLoadGame:
		return "LoadGame"
	case MenuQuit:
		return "Quit"
	}
	return "Unknown"
}

// MenuItem is one selectable line of an item menu.
type MenuItem struct {
	ID   ecs.EntityID
	Name string
}

// View is the read-only game state handed to the UI for drawing.
type View struct {
	World  *ecs.World
	Map    *gamemap.GameMap
	Player ecs.EntityID
	Log    *gamelog.Log
	State  RunState
}

// UI draws the game and collects player decisions. Every method returns
// promptly: menus report MenuNoResponse rather than blocking forever, so
// the state machine can be driven one tick at a time.
type UI interface {
	Draw(View)
	PlayerInput() Action
	ItemMenu(title string, items []MenuItem) (MenuResult, ecs.EntityID)
	// Targeting asks for a tile; valid lists the tiles the player may pick.
	Targeting(v View, valid []gamemap.Point) (MenuResult, gamemap.Point)
	MainMenu(sel MainMenuSelection, saveExists bool) (MenuResult, MainMenuSelection)
	GameOver() MenuResult
}

// SaveStore persists one saved game.
type SaveStore interface {
	Save(ctx context.Context, s Snapshot) error
	Load(ctx context.Context) (Snapshot, error)
	Exists(ctx context.Context) bool
	Delete(ctx context.Context) error
}

// Generator builds the level at a given depth.
type Generator interface {
	Generate(depth int, rng *rand.Rand) *gamemap.GameMap
}
