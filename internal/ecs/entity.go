package ecs

import "strconv"

// EntityID identifies an entity. It carries no data of its own; everything
// about an entity lives in the components attached to it.
type EntityID uint64

// NilEntity is never handed out by CreateEntity.
const NilEntity EntityID = 0

func (id EntityID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// ComponentType keys one component store in the World.
type ComponentType uint8

// Component is implemented by every value struct stored in the World.
type Component interface {
	Type() ComponentType
}
