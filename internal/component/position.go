package component

import "dungeon-kernel/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is the tile an entity occupies. Carried items have none.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
