package component

import (
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
)

const CViewshed ecs.ComponentType = 11

// Viewshed caches the tiles an entity can see. Dirty forces a recompute on
// the next visibility pass.
type Viewshed struct {
	Visible []gamemap.Point
	Range   int
	Dirty   bool
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// CanSee reports whether p is in the cached visible set.
func (v Viewshed) CanSee(p gamemap.Point) bool {
	for _, q := range v.Visible {
		if q == p {
			return true
		}
	}
	return false
}
