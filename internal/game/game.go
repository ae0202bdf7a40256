// Package game sequences player input, world simulation and the menu and
// targeting sub-interactions as a turn state machine.
package game

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamelog"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/system"
)

// Options tunes a Game. The zero value is usable.
type Options struct {
	// ViewRange is the player's sight radius; 0 means 8.
	ViewRange int
	// Rand drives level generation and spawning; nil seeds from the clock.
	Rand *rand.Rand
	// FOV overrides the field-of-view function; nil uses shadowcasting.
	FOV    system.FOVFunc
	Logger *slog.Logger
}

// Game is the top-level orchestrator: one player, one world, one state
// machine. A Game is not safe for concurrent use.
type Game struct {
	ui     UI
	saves  SaveStore
	gen    Generator
	rng    *rand.Rand
	logger *slog.Logger
	fov    system.FOVFunc

	viewRange int

	world    *ecs.World
	gmap     *gamemap.GameMap
	playerID ecs.EntityID
	log      *gamelog.Log
	res      *system.Resources
	state    RunState
}

// New returns a Game sitting on the main menu.
func New(ui UI, saves SaveStore, gen Generator, opts Options) *Game {
	g := &Game{
		ui:        ui,
		saves:     saves,
		gen:       gen,
		rng:       opts.Rand,
		logger:    opts.Logger,
		fov:       opts.FOV,
		viewRange: opts.ViewRange,
		state:     mainMenuState(MenuNewGame),
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.viewRange <= 0 {
		g.viewRange = 8
	}
	return g
}

// State returns the current run state.
func (g *Game) State() RunState { return g.state }

// Run ticks until the player quits from the main menu or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.Tick(ctx) {
			return nil
		}
	}
}

// Tick advances the state machine by one step and reports whether the
// player chose Quit. Dead entities are purged at the end of every tick
// that has a world.
func (g *Game) Tick(ctx context.Context) (quit bool) {
	switch g.state.Kind {
	case StateMainMenu:
		return g.mainMenu(ctx)
	case StateGameOver:
		if g.ui.GameOver() != MenuNoResponse {
			g.endRun()
			g.setState(mainMenuState(MenuNewGame))
		}
		return false
	}

	g.ui.Draw(g.view())

	next := g.state
	switch g.state.Kind {
	case StatePreRun:
		g.runSystems()
		next = stateOf(StateAwaitingInput)
	case StateAwaitingInput:
		next = g.playerInput()
	case StatePlayerTurn:
		g.runSystems()
		next = stateOf(StateMonsterTurn)
	case StateMonsterTurn:
		g.res.MonstersAct = true
		g.runSystems()
		g.res.MonstersAct = false
		next = stateOf(StateAwaitingInput)
	case StateShowInventory:
		next = g.showInventory()
	case StateShowDropItem:
		next = g.showItemIntent("Drop Which Item?", g.backpack(), func(id ecs.EntityID) ecs.Component {
			return component.WantsToDropItem{Item: id}
		})
	case StateShowRemoveItem:
		next = g.showItemIntent("Remove Which Item?", g.equipped(), func(id ecs.EntityID) ecs.Component {
			return component.WantsToRemoveItem{Item: id}
		})
	case StateShowTargeting:
		next = g.showTargeting()
	case StateNextLevel:
		g.nextLevel()
		next = stateOf(StatePreRun)
	case StateSaveGame:
		next = g.saveGame(ctx)
	}
	g.setState(next)
	g.endTick()
	return false
}

func (g *Game) setState(s RunState) {
	if s != g.state {
		g.logger.Debug("state change", "from", g.state.String(), "to", s.String())
	}
	g.state = s
}

// endTick runs the dead-entity pass, switches to GameOver when the player
// died, and sweeps deleted entities.
func (g *Game) endTick() {
	if g.world == nil || g.state.Is(StateMainMenu) {
		return
	}
	if system.DeleteTheDead(g.res) {
		g.setState(stateOf(StateGameOver))
	}
	g.world.Maintain()
}

func (g *Game) runSystems() {
	system.RunPipeline(g.res)
}

func (g *Game) view() View {
	return View{World: g.world, Map: g.gmap, Player: g.playerID, Log: g.log, State: g.state}
}

// playerInput turns one player action into the next state.
func (g *Game) playerInput() RunState {
	action := g.ui.PlayerInput()
	switch action {
	case ActionNone:
		return g.state
	case ActionWait:
		return stateOf(StatePlayerTurn)
	case ActionPickup:
		return g.pickup()
	case ActionDescend:
		if pos, ok := g.playerPos(); ok && g.gmap.At(pos.X, pos.Y).Kind == gamemap.TileStairsDown {
			return stateOf(StateNextLevel)
		}
		g.log.Add("There is no way down from here.")
		return g.state
	case ActionInventory:
		return stateOf(StateShowInventory)
	case ActionDrop:
		return stateOf(StateShowDropItem)
	case ActionRemove:
		return stateOf(StateShowRemoveItem)
	case ActionSaveQuit:
		return stateOf(StateSaveGame)
	}

	dx, dy := actionToDelta(action)
	if dx == 0 && dy == 0 {
		return g.state
	}
	if result, _ := system.TryMove(g.res, g.playerID, dx, dy); result == system.MoveBlocked {
		return g.state
	}
	return stateOf(StatePlayerTurn)
}

// pickup queues a WantsToPickupItem for the first item on the player's tile.
func (g *Game) pickup() RunState {
	pos, ok := g.playerPos()
	if !ok {
		return g.state
	}
	for _, id := range g.world.Query(component.CItem, component.CPosition) {
		ipos := g.world.Get(id, component.CPosition).(component.Position)
		if ipos == pos {
			g.world.Add(g.playerID, component.WantsToPickupItem{CollectedBy: g.playerID, Item: id})
			return stateOf(StatePlayerTurn)
		}
	}
	g.log.Add("There is nothing here to pick up.")
	return g.state
}

func (g *Game) playerPos() (component.Position, bool) {
	c := g.world.Get(g.playerID, component.CPosition)
	if c == nil {
		return component.Position{}, false
	}
	return c.(component.Position), true
}

func (g *Game) mainMenu(ctx context.Context) bool {
	exists := g.saves != nil && g.saves.Exists(ctx)
	result, sel := g.ui.MainMenu(g.state.Menu, exists)
	switch result {
	case MenuNoResponse:
		g.setState(mainMenuState(sel))
		return false
	case MenuCancel:
		return false
	}

	switch sel {
	case MenuNewGame:
		g.newGame()
		g.setState(stateOf(StatePreRun))
	case MenuLoadGame:
		if !exists {
			return false
		}
		if err := g.loadGame(ctx); err != nil {
			g.logger.Warn("load game failed", "error", err)
			g.setState(mainMenuState(MenuNewGame))
			return false
		}
		g.setState(stateOf(StateAwaitingInput))
	case MenuQuit:
		return true
	}
	return false
}

func (g *Game) saveGame(ctx context.Context) RunState {
	if g.saves == nil {
		return mainMenuState(MenuNewGame)
	}
	if err := g.saves.Save(ctx, Capture(g.world, g.gmap, g.playerID, g.log)); err != nil {
		g.logger.Warn("save game failed", "error", err)
		return mainMenuState(MenuNewGame)
	}
	g.logger.Info("game saved", "depth", g.gmap.Depth)
	return mainMenuState(MenuLoadGame)
}

// loadGame restores the saved game and deletes the save.
func (g *Game) loadGame(ctx context.Context) error {
	snap, err := g.saves.Load(ctx)
	if err != nil {
		return err
	}
	world, gmap, player, log, err := snap.Restore()
	if err != nil {
		return err
	}
	g.setWorld(world, gmap, player, log)
	system.MapIndexing(g.res)
	system.Visibility(g.res)
	if err := g.saves.Delete(ctx); err != nil {
		g.logger.Warn("delete save failed", "error", err)
	}
	g.logger.Info("game loaded", "depth", gmap.Depth)
	return nil
}

func (g *Game) setWorld(w *ecs.World, m *gamemap.GameMap, player ecs.EntityID, log *gamelog.Log) {
	g.world, g.gmap, g.playerID, g.log = w, m, player, log
	g.res = &system.Resources{
		World:  w,
		Map:    m,
		Player: player,
		Log:    log,
		FOV:    g.fov,
		Logger: g.logger,
	}
}

func (g *Game) endRun() {
	g.world, g.gmap, g.res, g.log = nil, nil, nil, nil
	g.playerID = ecs.NilEntity
}
