package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
)

// MonsterAI runs one turn for every monster: confused monsters lose the
// turn, adjacent monsters attack the player, and monsters that can see the
// player step toward it. It does nothing outside the monster half of a turn.
func MonsterAI(res *Resources) {
	if !res.MonstersAct {
		return
	}
	w := res.World
	pc := w.Get(res.Player, component.CPosition)
	if pc == nil || !w.Alive(res.Player) {
		return
	}
	ppos := pc.(component.Position)
	target := gamemap.Point{X: ppos.X, Y: ppos.Y}

	for _, id := range w.Query(component.CMonster, component.CViewshed, component.CPosition) {
		if c := w.Get(id, component.CConfusion); c != nil {
			conf := c.(component.Confusion)
			conf.Turns--
			if conf.Turns <= 0 {
				w.Remove(id, component.CConfusion)
			} else {
				w.Add(id, conf)
			}
			continue
		}

		pos := w.Get(id, component.CPosition).(component.Position)
		here := gamemap.Point{X: pos.X, Y: pos.Y}
		if here.Distance(target) < 1.5 {
			w.Add(id, component.WantsToMelee{Target: res.Player})
			continue
		}

		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if vs.CanSee(target) {
			chaseStep(res, id, pos, ppos)
		}
	}
}

// chaseStep moves one tile toward the target, trying the diagonal first and
// then each axis alone.
func chaseStep(res *Resources, id ecs.EntityID, pos, target component.Position) {
	sx, sy := sign(target.X-pos.X), sign(target.Y-pos.Y)
	for _, d := range [][2]int{{sx, sy}, {sx, 0}, {0, sy}} {
		if d[0] == 0 && d[1] == 0 {
			continue
		}
		nx, ny := pos.X+d[0], pos.Y+d[1]
		if res.Map.IsBlocked(nx, ny) {
			continue
		}
		moveTo(res, id, pos, component.Position{X: nx, Y: ny})
		return
	}
}
