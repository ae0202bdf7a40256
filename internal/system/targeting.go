package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
)

// ResolveTargets returns the entities affected when actor uses item aimed at
// target, de-duplicated in first-seen order. It reads the tile content index
// and never mutates anything.
//
//   - nil target: the actor alone.
//   - target without AreaOfEffect: everything on that tile.
//   - AreaOfEffect: everything on the tiles lit by FOV from target within
//     the radius, skipping the map's border ring.
func ResolveTargets(res *Resources, actor, item ecs.EntityID, target *gamemap.Point) []ecs.EntityID {
	if target == nil {
		return []ecs.EntityID{actor}
	}
	w, m := res.World, res.Map

	var tiles []gamemap.Point
	if c := w.Get(item, component.CAreaOfEffect); c != nil {
		radius := c.(component.AreaOfEffect).Radius
		for _, p := range res.fov()(*target, radius, m) {
			if m.OnBorder(p.X, p.Y) {
				continue
			}
			tiles = append(tiles, p)
		}
	} else if m.InBounds(target.X, target.Y) {
		tiles = []gamemap.Point{*target}
	}

	var out []ecs.EntityID
	seen := make(map[ecs.EntityID]bool)
	for _, p := range tiles {
		for _, id := range m.ContentAt(p.X, p.Y) {
			if seen[id] || !w.Alive(id) {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
