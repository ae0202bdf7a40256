package component

import "dungeon-kernel/internal/ecs"

const CMonster ecs.ComponentType = 5

// Monster marks an entity driven by the monster AI pass.
type Monster struct{}

func (Monster) Type() ecs.ComponentType { return CMonster }
