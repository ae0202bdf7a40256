package factory

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// newItem creates a floor item at (x, y) carrying comps.
func newItem(w *ecs.World, x, y int, glyph rune, fg tcell.Color, name string, comps ...ecs.Component) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       glyph,
		FGColor:     fg,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderItem,
	})
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.Item{})
	for _, c := range comps {
		w.Add(id, c)
	}
	return id
}

func NewHealthPotion(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, x, y, '¡', tcell.ColorFuchsia, "Health Potion",
		component.Consumable{Uses: 1},
		component.ProvidesHealing{Amount: 8},
	)
}

func NewMagicMissileScroll(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, x, y, ')', tcell.ColorAqua, "Magic Missile Scroll",
		component.Consumable{Uses: 1},
		component.Ranged{Range: 6},
		component.InflictsDamage{Amount: 8},
	)
}

func NewFireballScroll(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, x, y, ')', tcell.ColorOrange, "Fireball Scroll",
		component.Consumable{Uses: 1},
		component.Ranged{Range: 6},
		component.InflictsDamage{Amount: 20},
		component.AreaOfEffect{Radius: 3},
	)
}

func NewConfusionScroll(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, x, y, ')', tcell.ColorPink, "Confusion Scroll",
		component.Consumable{Uses: 1},
		component.Ranged{Range: 6},
		component.Confuses{Turns: 4},
	)
}

func NewDagger(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, x, y, '/', tcell.ColorAqua, "Dagger",
		component.Equippable{Slot: component.SlotMelee},
		component.MeleePowerBonus{Power: 2},
	)
}

func NewShield(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, x, y, '(', tcell.ColorAqua, "Shield",
		component.Equippable{Slot: component.SlotShield},
		component.DefenseBonus{Defense: 1},
	)
}

func NewLongsword(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, x, y, '/', tcell.ColorYellow, "Longsword",
		component.Equippable{Slot: component.SlotMelee},
		component.MeleePowerBonus{Power: 4},
	)
}

func NewTowerShield(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, x, y, '(', tcell.ColorYellow, "Tower Shield",
		component.Equippable{Slot: component.SlotShield},
		component.DefenseBonus{Defense: 3},
	)
}
