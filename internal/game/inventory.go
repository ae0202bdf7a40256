package game

import (
	"slices"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
)

// backpack lists the player's carried items in creation order.
func (g *Game) backpack() []MenuItem {
	var items []MenuItem
	for _, id := range g.world.Query(component.CInBackpack, component.CItem) {
		if g.world.Get(id, component.CInBackpack).(component.InBackpack).Owner == g.playerID {
			items = append(items, MenuItem{ID: id, Name: component.NameOf(g.world, id)})
		}
	}
	return items
}

// equipped lists the items the player is wearing.
func (g *Game) equipped() []MenuItem {
	var items []MenuItem
	for _, id := range g.world.Query(component.CEquipped) {
		if g.world.Get(id, component.CEquipped).(component.Equipped).Owner == g.playerID {
			items = append(items, MenuItem{ID: id, Name: component.NameOf(g.world, id)})
		}
	}
	return items
}

func contains(items []MenuItem, id ecs.EntityID) bool {
	return slices.ContainsFunc(items, func(it MenuItem) bool { return it.ID == id })
}

// showInventory lets the player pick an item to use. Ranged items go to
// targeting first; everything else is used on the player at once.
func (g *Game) showInventory() RunState {
	items := g.backpack()
	result, id := g.ui.ItemMenu("Inventory", items)
	switch result {
	case MenuCancel:
		return stateOf(StateAwaitingInput)
	case MenuNoResponse:
		return g.state
	}
	if !contains(items, id) {
		return g.state
	}

	if c := g.world.Get(id, component.CRanged); c != nil {
		radius := 0
		if aoe := g.world.Get(id, component.CAreaOfEffect); aoe != nil {
			radius = aoe.(component.AreaOfEffect).Radius
		}
		return targetingState(c.(component.Ranged).Range, radius, id)
	}
	g.world.Add(g.playerID, component.WantsToUseItem{Item: id})
	return stateOf(StatePlayerTurn)
}

// showItemIntent runs a drop or remove menu; a selection attaches the
// intent built by mk to the player.
func (g *Game) showItemIntent(title string, items []MenuItem, mk func(ecs.EntityID) ecs.Component) RunState {
	result, id := g.ui.ItemMenu(title, items)
	switch result {
	case MenuCancel:
		return stateOf(StateAwaitingInput)
	case MenuNoResponse:
		return g.state
	}
	if !contains(items, id) {
		return g.state
	}
	g.world.Add(g.playerID, mk(id))
	return stateOf(StatePlayerTurn)
}

// targetTiles returns the tiles the player can see within rng tiles.
func (g *Game) targetTiles(rng int) []gamemap.Point {
	pos, ok := g.playerPos()
	if !ok {
		return nil
	}
	vc := g.world.Get(g.playerID, component.CViewshed)
	if vc == nil {
		return nil
	}
	center := gamemap.Pt(pos.X, pos.Y)
	var out []gamemap.Point
	for _, p := range vc.(component.Viewshed).Visible {
		if center.Distance(p) <= float64(rng) {
			out = append(out, p)
		}
	}
	return out
}

// showTargeting asks for a target tile. A pick outside the valid set
// counts as no pick yet.
func (g *Game) showTargeting() RunState {
	valid := g.targetTiles(g.state.Range)
	result, p := g.ui.Targeting(g.view(), valid)
	switch result {
	case MenuCancel:
		return stateOf(StateAwaitingInput)
	case MenuNoResponse:
		return g.state
	}
	if !slices.Contains(valid, p) || !g.world.Alive(g.state.Item) {
		return g.state
	}
	g.world.Add(g.playerID, component.WantsToUseItem{Item: g.state.Item, Target: &p})
	return stateOf(StatePlayerTurn)
}
