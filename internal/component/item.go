package component

import "dungeon-kernel/internal/ecs"

// Item capability components. An item may carry any combination of them;
// the item-use pass checks each one independently.
const (
	CConsumable      ecs.ComponentType = 12
	CProvidesHealing ecs.ComponentType = 13
	CInflictsDamage  ecs.ComponentType = 14
	CRanged          ecs.ComponentType = 15
	CAreaOfEffect    ecs.ComponentType = 16
)

// Consumable items are destroyed when a use brings Uses to zero.
type Consumable struct {
	Uses int
}

func (Consumable) Type() ecs.ComponentType { return CConsumable }

type ProvidesHealing struct {
	Amount int
}

func (ProvidesHealing) Type() ecs.ComponentType { return CProvidesHealing }

type InflictsDamage struct {
	Amount int
}

func (InflictsDamage) Type() ecs.ComponentType { return CInflictsDamage }

// Ranged items ask for a target tile within Range of the user.
type Ranged struct {
	Range int
}

func (Ranged) Type() ecs.ComponentType { return CRanged }

type AreaOfEffect struct {
	Radius int
}

func (AreaOfEffect) Type() ecs.ComponentType { return CAreaOfEffect }
