package game

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/factory"
	"dungeon-kernel/internal/gamelog"
	"dungeon-kernel/internal/generate"
)

// newGame builds a fresh world on depth 1 with the player in the first room.
func (g *Game) newGame() {
	world := ecs.NewWorld()
	gmap := g.gen.Generate(1, g.rng)
	px, py := gmap.Rooms[0].Center()
	player := factory.NewPlayer(world, px, py, g.viewRange)

	log := &gamelog.Log{}
	log.Add("Welcome to the dungeon.")
	g.setWorld(world, gmap, player, log)
	g.populate()
	g.logger.Info("new game", "rooms", len(gmap.Rooms))
}

// populate spawns the current level's monsters and items.
func (g *Game) populate() {
	depth := g.gmap.Depth
	spawns := generate.Populate(g.gmap, factory.SpawnTable(depth), factory.MaxSpawnsPerRoom, g.rng)
	factory.SpawnAll(g.world, spawns)
}

// ownedByPlayer reports whether id is the player or something the player
// carries or wears.
func (g *Game) ownedByPlayer(id ecs.EntityID) bool {
	if id == g.playerID {
		return true
	}
	if c := g.world.Get(id, component.CInBackpack); c != nil && c.(component.InBackpack).Owner == g.playerID {
		return true
	}
	if c := g.world.Get(id, component.CEquipped); c != nil && c.(component.Equipped).Owner == g.playerID {
		return true
	}
	return false
}

// nextLevel discards everything the player does not own, builds the next
// depth and drops the player in its first room with at least half health.
func (g *Game) nextLevel() {
	for _, id := range g.world.Entities() {
		if !g.ownedByPlayer(id) {
			g.world.Delete(id)
		}
	}
	g.world.Maintain()

	depth := g.gmap.Depth + 1
	gmap := g.gen.Generate(depth, g.rng)
	g.setWorld(g.world, gmap, g.playerID, g.log)
	g.populate()

	px, py := gmap.Rooms[0].Center()
	g.world.Add(g.playerID, component.Position{X: px, Y: py})
	if c := g.world.Get(g.playerID, component.CViewshed); c != nil {
		vs := c.(component.Viewshed)
		vs.Dirty = true
		g.world.Add(g.playerID, vs)
	}
	if c := g.world.Get(g.playerID, component.CCombatStats); c != nil {
		stats := c.(component.CombatStats)
		stats.HP = max(stats.HP, stats.MaxHP/2)
		g.world.Add(g.playerID, stats)
	}
	g.log.Add("You descend to the next level, and take a moment to heal.")
	g.logger.Info("descended", "depth", depth)
}
