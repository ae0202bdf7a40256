package component

import "dungeon-kernel/internal/ecs"

const (
	CConfusion ecs.ComponentType = 7
	CConfuses  ecs.ComponentType = 27
)

// Confusion is the status effect: the turns a monster still loses.
type Confusion struct {
	Turns int
}

func (Confusion) Type() ecs.ComponentType { return CConfusion }

// Confuses tags an item that inflicts Confusion on its targets.
type Confuses struct {
	Turns int
}

func (Confuses) Type() ecs.ComponentType { return CConfuses }
