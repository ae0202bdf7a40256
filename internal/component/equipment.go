package component

import "dungeon-kernel/internal/ecs"

const (
	CEquippable      ecs.ComponentType = 17
	CEquipped        ecs.ComponentType = 18
	CMeleePowerBonus ecs.ComponentType = 19
	CDefenseBonus    ecs.ComponentType = 20
)

// EquipmentSlot is where an equippable item goes. An owner holds at most one
// item per slot.
type EquipmentSlot uint8

const (
	SlotMelee EquipmentSlot = iota
	SlotShield
)

func (s EquipmentSlot) String() string {
	switch s {
	case SlotMelee:
		return "melee"
	case SlotShield:
		return "shield"
	default:
		return "unknown"
	}
}

type Equippable struct {
	Slot EquipmentSlot
}

func (Equippable) Type() ecs.ComponentType { return CEquippable }

// Equipped records who wears an item and in which slot.
type Equipped struct {
	Owner ecs.EntityID
	Slot  EquipmentSlot
}

func (Equipped) Type() ecs.ComponentType { return CEquipped }

type MeleePowerBonus struct {
	Power int
}

func (MeleePowerBonus) Type() ecs.ComponentType { return CMeleePowerBonus }

type DefenseBonus struct {
	Defense int
}

func (DefenseBonus) Type() ecs.ComponentType { return CDefenseBonus }
