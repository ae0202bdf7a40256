package component

import "dungeon-kernel/internal/ecs"

const (
	CPlayer     ecs.ComponentType = 8
	CBlocksTile ecs.ComponentType = 9
	CItem       ecs.ComponentType = 10
)

// Player marks the player-controlled entity.
type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }

// BlocksTile marks an entity that occupies its tile (blocks movement).
type BlocksTile struct{}

func (BlocksTile) Type() ecs.ComponentType { return CBlocksTile }

// Item marks an entity that can be picked up.
type Item struct{}

func (Item) Type() ecs.ComponentType { return CItem }
