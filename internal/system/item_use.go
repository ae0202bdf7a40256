package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
)

// ItemUse resolves every WantsToUseItem intent: targets are resolved, each
// effect the item carries is applied, and a used consumable is spent.
// All intents are cleared afterwards, including ones that did nothing.
func ItemUse(res *Resources) {
	w := res.World
	for _, actor := range w.Query(component.CWantsToUseItem) {
		intent := w.Get(actor, component.CWantsToUseItem).(component.WantsToUseItem)
		if !w.Alive(intent.Item) {
			continue
		}
		targets := ResolveTargets(res, actor, intent.Item, intent.Target)
		if ApplyItem(res, actor, intent.Item, targets) {
			consume(res, intent.Item)
		}
	}
	w.Clear(component.CWantsToUseItem)
}

// ApplyItem applies every effect item carries to targets and reports whether
// the item counts as used. Each effect is independent: an item that both
// damages and confuses does both. An effect that runs but finds no valid
// target does not count; an item with no effects at all is used vacuously.
func ApplyItem(res *Resources, actor, item ecs.EntityID, targets []ecs.EntityID) bool {
	w := res.World
	itemName := component.NameOf(w, item)
	ran, hit := false, false

	if c := w.Get(item, component.CEquippable); c != nil {
		ran = true
		if len(targets) > 0 {
			equip(res, item, targets[0], c.(component.Equippable).Slot)
			hit = true
		}
	}

	if c := w.Get(item, component.CProvidesHealing); c != nil {
		ran = true
		amount := c.(component.ProvidesHealing).Amount
		for _, t := range targets {
			sc := w.Get(t, component.CCombatStats)
			if sc == nil {
				continue
			}
			stats := sc.(component.CombatStats)
			stats.HP = min(stats.MaxHP, stats.HP+amount)
			w.Add(t, stats)
			res.playerLog(actor, "You use the %s, healing %d hp.", itemName, amount)
			hit = true
		}
	}

	if c := w.Get(item, component.CConfuses); c != nil {
		ran = true
		turns := c.(component.Confuses).Turns
		for _, t := range targets {
			res.playerLog(actor, "You use %s on %s, confusing them.", itemName, component.NameOf(w, t))
			w.Add(t, component.Confusion{Turns: turns})
			hit = true
		}
	}

	if c := w.Get(item, component.CInflictsDamage); c != nil {
		ran = true
		amount := c.(component.InflictsDamage).Amount
		for _, t := range targets {
			AddDamage(w, t, amount, res.IsPlayer(actor))
			if w.Has(t, component.CCombatStats) {
				res.playerLog(actor, "You use %s on %s, inflicting %d hp.", itemName, component.NameOf(w, t), amount)
			}
			hit = true
		}
	}

	return !ran || hit
}

// equip moves whatever target wears in slot back to its backpack and puts
// item in the slot, all within one call.
func equip(res *Resources, item, target ecs.EntityID, slot component.EquipmentSlot) {
	w := res.World
	for _, other := range w.Query(component.CEquipped) {
		if other == item {
			continue
		}
		eq := w.Get(other, component.CEquipped).(component.Equipped)
		if eq.Owner != target || eq.Slot != slot {
			continue
		}
		w.Remove(other, component.CEquipped)
		w.Add(other, component.InBackpack{Owner: target})
		res.playerLog(target, "You unequip %s.", component.NameOf(w, other))
	}

	w.Remove(item, component.CInBackpack)
	w.Remove(item, component.CPosition)
	w.Add(item, component.Equipped{Owner: target, Slot: slot})
	res.playerLog(target, "You equip %s.", component.NameOf(w, item))
}

// consume spends one use of a consumable item, deleting it on the last use.
// Items without Consumable are untouched.
func consume(res *Resources, item ecs.EntityID) {
	w := res.World
	c := w.Get(item, component.CConsumable)
	if c == nil {
		return
	}
	cons := c.(component.Consumable)
	if cons.Uses <= 1 {
		w.Delete(item)
		return
	}
	cons.Uses--
	w.Add(item, cons)
}
