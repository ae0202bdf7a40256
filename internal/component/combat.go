package component

import "dungeon-kernel/internal/ecs"

const (
	CCombatStats   ecs.ComponentType = 4
	CSufferDamage  ecs.ComponentType = 21
	CSlainByPlayer ecs.ComponentType = 28
)

// CombatStats holds hit points and the base melee modifiers.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }

// SufferDamage accumulates damage dealt to an entity this turn.
// The damage pass sums and commits it, then removes the component.
type SufferDamage struct {
	Amounts []int
	// ByPlayer is set when any of the amounts came from the player.
	ByPlayer bool
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }

// Total returns the sum of all pending amounts.
func (s SufferDamage) Total() int {
	total := 0
	for _, a := range s.Amounts {
		total += a
	}
	return total
}

// SlainByPlayer marks an entity the player's damage brought below 1 HP.
// It lives only until the dead pass removes the entity.
type SlainByPlayer struct{}

func (SlainByPlayer) Type() ecs.ComponentType { return CSlainByPlayer }
