// Package factory builds the player, monsters and items from fixed
// archetypes.
package factory

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Render orders: lower draws first.
const (
	orderItem    = 2
	orderMonster = 5
	orderPlayer  = 10
)

// NewPlayer creates the player at (x, y) seeing viewRange tiles.
func NewPlayer(w *ecs.World, x, y, viewRange int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       '@',
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderPlayer,
	})
	w.Add(id, component.Player{})
	w.Add(id, component.Name{Name: "Player"})
	w.Add(id, component.Viewshed{Range: viewRange, Dirty: true})
	w.Add(id, component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5})
	w.Add(id, component.BlocksTile{})
	return id
}

// NewOrc creates an orc at (x, y).
func NewOrc(w *ecs.World, x, y int) ecs.EntityID {
	return newMonster(w, x, y, 'o', "Orc")
}

// NewGoblin creates a goblin at (x, y).
func NewGoblin(w *ecs.World, x, y int) ecs.EntityID {
	return newMonster(w, x, y, 'g', "Goblin")
}

func newMonster(w *ecs.World, x, y int, glyph rune, name string) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       glyph,
		FGColor:     tcell.ColorRed,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderMonster,
	})
	w.Add(id, component.Viewshed{Range: 8, Dirty: true})
	w.Add(id, component.Monster{})
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.BlocksTile{})
	w.Add(id, component.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 4})
	return id
}
