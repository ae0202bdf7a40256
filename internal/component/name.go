package component

import "dungeon-kernel/internal/ecs"

const CName ecs.ComponentType = 2

// Name is a display string used in log lines and menus.
type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }

// NameOf returns the entity's display name, or "something" when it has none.
func NameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, CName); c != nil {
		return c.(Name).Name
	}
	return "something"
}
