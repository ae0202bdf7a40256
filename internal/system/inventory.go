package system

import "dungeon-kernel/internal/component"

// ItemCollection moves every item named by a WantsToPickupItem from the map
// into the collector's backpack, then clears the intents.
func ItemCollection(res *Resources) {
	w := res.World
	for _, id := range w.Query(component.CWantsToPickupItem) {
		pickup := w.Get(id, component.CWantsToPickupItem).(component.WantsToPickupItem)
		if !w.Alive(pickup.Item) {
			continue
		}
		w.Remove(pickup.Item, component.CPosition)
		w.Remove(pickup.Item, component.CEquipped)
		w.Add(pickup.Item, component.InBackpack{Owner: pickup.CollectedBy})
		res.playerLog(pickup.CollectedBy, "You pick up the %s.", component.NameOf(w, pickup.Item))
	}
	w.Clear(component.CWantsToPickupItem)
}

// ItemDrop places dropped items on the dropper's tile. A drop onto a tile
// that already holds someone besides the dropper is refused and the item
// stays in the backpack.
func ItemDrop(res *Resources) {
	w, m := res.World, res.Map
	for _, id := range w.Query(component.CWantsToDropItem, component.CPosition) {
		drop := w.Get(id, component.CWantsToDropItem).(component.WantsToDropItem)
		if !w.Alive(drop.Item) {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		name := component.NameOf(w, drop.Item)
		if len(m.ContentAt(pos.X, pos.Y)) > 1 {
			res.playerLog(id, "You can not drop %s here.", name)
			continue
		}
		w.Remove(drop.Item, component.CInBackpack)
		w.Remove(drop.Item, component.CEquipped)
		w.Add(drop.Item, component.Position{X: pos.X, Y: pos.Y})
		res.playerLog(id, "You drop the %s.", name)
	}
	w.Clear(component.CWantsToDropItem)
}

// ItemRemove unequips items back into the acting entity's backpack.
func ItemRemove(res *Resources) {
	w := res.World
	for _, id := range w.Query(component.CWantsToRemoveItem) {
		remove := w.Get(id, component.CWantsToRemoveItem).(component.WantsToRemoveItem)
		if !w.Alive(remove.Item) {
			continue
		}
		w.Remove(remove.Item, component.CEquipped)
		w.Add(remove.Item, component.InBackpack{Owner: id})
		res.playerLog(id, "You unequip %s.", component.NameOf(w, remove.Item))
	}
	w.Clear(component.CWantsToRemoveItem)
}
