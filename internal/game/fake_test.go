package game

import (
	"context"
	"errors"
	"math/rand"

	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
)

type menuReply struct {
	result MenuResult
	id     ecs.EntityID
}

type targetReply struct {
	result MenuResult
	p      gamemap.Point
}

type mainReply struct {
	result MenuResult
	sel    MainMenuSelection
}

// fakeUI replays scripted answers; an empty queue means no response.
type fakeUI struct {
	actions  []Action
	menus    []menuReply
	targets  []targetReply
	main     []mainReply
	gameOver []MenuResult

	draws      int
	lastTitle  string
	lastItems  []MenuItem
	lastValid  []gamemap.Point
	saveOffers []bool
}

func (u *fakeUI) Draw(View) { u.draws++ }

func (u *fakeUI) PlayerInput() Action {
	if len(u.actions) == 0 {
		return ActionNone
	}
	a := u.actions[0]
	u.actions = u.actions[1:]
	return a
}

func (u *fakeUI) ItemMenu(title string, items []MenuItem) (MenuResult, ecs.EntityID) {
	u.lastTitle, u.lastItems = title, items
	if len(u.menus) == 0 {
		return MenuNoResponse, ecs.NilEntity
	}
	r := u.menus[0]
	u.menus = u.menus[1:]
	return r.result, r.id
}

func (u *fakeUI) Targeting(_ View, valid []gamemap.Point) (MenuResult, gamemap.Point) {
	u.lastValid = valid
	if len(u.targets) == 0 {
		return MenuNoResponse, gamemap.Point{}
	}
	r := u.targets[0]
	u.targets = u.targets[1:]
	return r.result, r.p
}

func (u *fakeUI) MainMenu(sel MainMenuSelection, saveExists bool) (MenuResult, MainMenuSelection) {
	u.saveOffers = append(u.saveOffers, saveExists)
	if len(u.main) == 0 {
		return MenuNoResponse, sel
	}
	r := u.main[0]
	u.main = u.main[1:]
	return r.result, r.sel
}

func (u *fakeUI) GameOver() MenuResult {
	if len(u.gameOver) == 0 {
		return MenuNoResponse
	}
	r := u.gameOver[0]
	u.gameOver = u.gameOver[1:]
	return r
}

// memStore keeps one snapshot in memory.
type memStore struct {
	snap    *Snapshot
	loadErr error
	saveErr error
	saves   int
}

func (s *memStore) Save(_ context.Context, snap Snapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.snap = &snap
	return nil
}

func (s *memStore) Load(context.Context) (Snapshot, error) {
	if s.loadErr != nil {
		return Snapshot{}, s.loadErr
	}
	if s.snap == nil {
		return Snapshot{}, errors.New("no save")
	}
	return *s.snap, nil
}

func (s *memStore) Exists(context.Context) bool { return s.snap != nil || s.loadErr != nil }

func (s *memStore) Delete(context.Context) error {
	s.snap = nil
	return nil
}

// arenaGen builds one open 20x20 room with stairs at (10,10). A single room
// means nothing is spawned, so tests place every entity themselves.
type arenaGen struct {
	calls []int
}

func (a *arenaGen) Generate(depth int, _ *rand.Rand) *gamemap.GameMap {
	a.calls = append(a.calls, depth)
	m := gamemap.New(20, 20)
	m.Depth = depth
	room := gamemap.Rect{X1: 1, Y1: 1, X2: 18, Y2: 18}
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
	m.Rooms = []gamemap.Rect{room}
	m.Set(10, 10, gamemap.MakeStairsDown())
	return m
}
