package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamelog"
	"dungeon-kernel/internal/gamemap"
)

// fixture is a 20x20 walled arena with the player standing at (5,5).
type fixture struct {
	res    *Resources
	w      *ecs.World
	m      *gamemap.GameMap
	log    *gamelog.Log
	player ecs.EntityID
}

func newFixture() *fixture {
	w := ecs.NewWorld()
	m := gamemap.New(20, 20)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
	log := &gamelog.Log{}

	player := w.CreateEntity()
	w.Add(player, component.Player{})
	w.Add(player, component.Name{Name: "Player"})
	w.Add(player, component.Position{X: 5, Y: 5})
	w.Add(player, component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5})
	w.Add(player, component.Viewshed{Range: 8, Dirty: true})
	w.Add(player, component.BlocksTile{})

	return &fixture{
		res:    &Resources{World: w, Map: m, Player: player, Log: log},
		w:      w,
		m:      m,
		log:    log,
		player: player,
	}
}

func (f *fixture) spawnMonster(name string, x, y int) ecs.EntityID {
	id := f.w.CreateEntity()
	f.w.Add(id, component.Monster{})
	f.w.Add(id, component.Name{Name: name})
	f.w.Add(id, component.Position{X: x, Y: y})
	f.w.Add(id, component.CombatStats{MaxHP: 10, HP: 10, Defense: 1, Power: 3})
	f.w.Add(id, component.Viewshed{Range: 8, Dirty: true})
	f.w.Add(id, component.BlocksTile{})
	return id
}

// giveItem creates a named item in owner's backpack carrying comps.
func (f *fixture) giveItem(owner ecs.EntityID, name string, comps ...ecs.Component) ecs.EntityID {
	id := f.w.CreateEntity()
	f.w.Add(id, component.Item{})
	f.w.Add(id, component.Name{Name: name})
	f.w.Add(id, component.InBackpack{Owner: owner})
	for _, c := range comps {
		f.w.Add(id, c)
	}
	return id
}

func (f *fixture) dropItemAt(name string, x, y int) ecs.EntityID {
	id := f.w.CreateEntity()
	f.w.Add(id, component.Item{})
	f.w.Add(id, component.Name{Name: name})
	f.w.Add(id, component.Position{X: x, Y: y})
	return id
}

func (f *fixture) hp(id ecs.EntityID) int {
	return f.w.Get(id, component.CCombatStats).(component.CombatStats).HP
}

func (f *fixture) pending(id ecs.EntityID) []int {
	c := f.w.Get(id, component.CSufferDamage)
	if c == nil {
		return nil
	}
	return c.(component.SufferDamage).Amounts
}

func (f *fixture) use(actor, item ecs.EntityID, target *gamemap.Point) {
	f.w.Add(actor, component.WantsToUseItem{Item: item, Target: target})
	MapIndexing(f.res)
	ItemUse(f.res)
}

func ptr(p gamemap.Point) *gamemap.Point { return &p }
