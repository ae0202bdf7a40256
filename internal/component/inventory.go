package component

import "dungeon-kernel/internal/ecs"

const CInBackpack ecs.ComponentType = 6

// InBackpack places an item in Owner's pack. An item with InBackpack has
// neither Position nor Equipped.
type InBackpack struct {
	Owner ecs.EntityID
}

func (InBackpack) Type() ecs.ComponentType { return CInBackpack }
