package factory

import (
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/generate"
)

// MaxSpawnsPerRoom caps the per-room roll before the depth bonus.
const MaxSpawnsPerRoom = 4

// constructors maps spawn-table names to their archetype.
var constructors = map[string]func(*ecs.World, int, int) ecs.EntityID{
	"Goblin":               NewGoblin,
	"Orc":                  NewOrc,
	"Health Potion":        NewHealthPotion,
	"Magic Missile Scroll": NewMagicMissileScroll,
	"Fireball Scroll":      NewFireballScroll,
	"Confusion Scroll":     NewConfusionScroll,
	"Dagger":               NewDagger,
	"Shield":               NewShield,
	"Longsword":            NewLongsword,
	"Tower Shield":         NewTowerShield,
}

// SpawnTable returns the weighted spawn table for depth. Stronger monsters,
// offensive scrolls and better gear become more common deeper down.
func SpawnTable(depth int) []generate.SpawnEntry {
	return []generate.SpawnEntry{
		{Name: "Goblin", Weight: 10},
		{Name: "Orc", Weight: 1 + depth},
		{Name: "Health Potion", Weight: 7},
		{Name: "Fireball Scroll", Weight: 2 + depth},
		{Name: "Confusion Scroll", Weight: 2 + depth},
		{Name: "Magic Missile Scroll", Weight: 4},
		{Name: "Dagger", Weight: 3},
		{Name: "Shield", Weight: 3},
		{Name: "Longsword", Weight: depth - 1},
		{Name: "Tower Shield", Weight: depth - 1},
	}
}

// Spawn creates the archetype called name at (x, y). It reports false for
// unknown names.
func Spawn(w *ecs.World, name string, x, y int) (ecs.EntityID, bool) {
	ctor, ok := constructors[name]
	if !ok {
		return ecs.NilEntity, false
	}
	return ctor(w, x, y), true
}

// SpawnAll creates every spawn, skipping unknown names, and returns the new
// entities in spawn order.
func SpawnAll(w *ecs.World, spawns []generate.Spawn) []ecs.EntityID {
	out := make([]ecs.EntityID, 0, len(spawns))
	for _, s := range spawns {
		if id, ok := Spawn(w, s.Name, s.X, s.Y); ok {
			out = append(out, id)
		}
	}
	return out
}
