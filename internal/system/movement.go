package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, out-of-bounds or occupied
	MoveAttack                    // bumped something with CombatStats
)

// TryMove attempts to move entity id by (dx, dy).
// Bumping an entity with CombatStats queues a WantsToMelee against it instead
// of moving. Returns the outcome and, for MoveAttack, the target.
func TryMove(res *Resources, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	w, m := res.World, res.Map
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy
	if !m.InBounds(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	for _, other := range m.ContentAt(nx, ny) {
		if other == id || !w.Alive(other) || !w.Has(other, component.CCombatStats) {
			continue
		}
		w.Add(id, component.WantsToMelee{Target: other})
		return MoveAttack, other
	}

	if m.IsBlocked(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}
	moveTo(res, id, pos, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// moveTo relocates id, keeps the blocked index in step so later movers this
// turn see the new occupancy, and dirties the mover's viewshed.
func moveTo(res *Resources, id ecs.EntityID, from, to component.Position) {
	w, m := res.World, res.Map
	if w.Has(id, component.CBlocksTile) {
		m.Blocked[m.XYIdx(from.X, from.Y)] = false
		m.Blocked[m.XYIdx(to.X, to.Y)] = true
	}
	w.Add(id, to)
	if c := w.Get(id, component.CViewshed); c != nil {
		vs := c.(component.Viewshed)
		vs.Dirty = true
		w.Add(id, vs)
	}
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
