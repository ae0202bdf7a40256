package component

import (
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
)

// Intent components are attached to the acting entity by input handling or
// AI and removed by the system that processes them, in the same turn.
const (
	CWantsToMelee      ecs.ComponentType = 22
	CWantsToPickupItem ecs.ComponentType = 23
	CWantsToUseItem    ecs.ComponentType = 24
	CWantsToDropItem   ecs.ComponentType = 25
	CWantsToRemoveItem ecs.ComponentType = 26
)

type WantsToMelee struct {
	Target ecs.EntityID
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }

type WantsToPickupItem struct {
	CollectedBy ecs.EntityID
	Item        ecs.EntityID
}

func (WantsToPickupItem) Type() ecs.ComponentType { return CWantsToPickupItem }

// WantsToUseItem uses Item. A nil Target means the user targets itself.
type WantsToUseItem struct {
	Item   ecs.EntityID
	Target *gamemap.Point
}

func (WantsToUseItem) Type() ecs.ComponentType { return CWantsToUseItem }

type WantsToDropItem struct {
	Item ecs.EntityID
}

func (WantsToDropItem) Type() ecs.ComponentType { return CWantsToDropItem }

type WantsToRemoveItem struct {
	Item ecs.EntityID
}

func (WantsToRemoveItem) Type() ecs.ComponentType { return CWantsToRemoveItem }
