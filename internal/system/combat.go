package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
)

// equipBonus sums a bonus component across every item owner has equipped.
func equipBonus(w *ecs.World, owner ecs.EntityID, bonus ecs.ComponentType) int {
	total := 0
	for _, item := range w.Query(component.CEquipped, bonus) {
		if w.Get(item, component.CEquipped).(component.Equipped).Owner != owner {
			continue
		}
		switch b := w.Get(item, bonus).(type) {
		case component.MeleePowerBonus:
			total += b.Power
		case component.DefenseBonus:
			total += b.Defense
		}
	}
	return total
}

// MeleeCombat resolves every WantsToMelee intent into queued damage, then
// clears the intents.
// Damage formula: max(0, power+weapon bonus - (defense+armor bonus)).
func MeleeCombat(res *Resources) {
	w := res.World
	for _, id := range w.Query(component.CWantsToMelee, component.CCombatStats) {
		wants := w.Get(id, component.CWantsToMelee).(component.WantsToMelee)
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		if stats.HP <= 0 || !w.Alive(wants.Target) {
			continue
		}
		tc := w.Get(wants.Target, component.CCombatStats)
		if tc == nil {
			continue
		}
		target := tc.(component.CombatStats)
		if target.HP <= 0 {
			continue
		}

		power := stats.Power + equipBonus(w, id, component.CMeleePowerBonus)
		defense := target.Defense + equipBonus(w, wants.Target, component.CDefenseBonus)
		damage := max(0, power-defense)

		attacker := component.NameOf(w, id)
		victim := component.NameOf(w, wants.Target)
		involvesPlayer := res.IsPlayer(id) || res.IsPlayer(wants.Target)
		if damage == 0 {
			if involvesPlayer && res.Log != nil {
				res.Log.Addf("%s is unable to hurt %s.", attacker, victim)
			}
			continue
		}
		if involvesPlayer && res.Log != nil {
			res.Log.Addf("%s hits %s, for %d hp.", attacker, victim, damage)
		}
		AddDamage(w, wants.Target, damage, res.IsPlayer(id))
	}
	w.Clear(component.CWantsToMelee)
}

// AddDamage queues amount against victim, merging with any damage already
// pending this turn. byPlayer records that the player dealt it.
func AddDamage(w *ecs.World, victim ecs.EntityID, amount int, byPlayer bool) {
	if !w.Alive(victim) {
		return
	}
	sd := component.SufferDamage{}
	if c := w.Get(victim, component.CSufferDamage); c != nil {
		sd = c.(component.SufferDamage)
	}
	sd.Amounts = append(append([]int(nil), sd.Amounts...), amount)
	sd.ByPlayer = sd.ByPlayer || byPlayer
	w.Add(victim, sd)
}

// Damage commits all pending damage to CombatStats and clears the queue.
func Damage(res *Resources) {
	w := res.World
	for _, id := range w.Query(component.CSufferDamage, component.CCombatStats) {
		sd := w.Get(id, component.CSufferDamage).(component.SufferDamage)
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		stats.HP -= sd.Total()
		w.Add(id, stats)
		if stats.HP < 1 && sd.ByPlayer {
			w.Add(id, component.SlainByPlayer{})
		}
	}
	w.Clear(component.CSufferDamage)
}

// DeleteTheDead deletes every non-player entity whose HP fell below 1 and
// reports whether the player is dead. Only deaths the player caused are
// written to the game log.
func DeleteTheDead(res *Resources) (playerDead bool) {
	w := res.World
	for _, id := range w.Query(component.CCombatStats) {
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		if stats.HP >= 1 {
			continue
		}
		if res.IsPlayer(id) {
			playerDead = true
			continue
		}
		if res.Log != nil && w.Has(id, component.CSlainByPlayer) && w.Has(id, component.CName) {
			res.Log.Addf("%s is dead", component.NameOf(w, id))
		}
		res.logger().Debug("entity died", "entity", id.String())
		w.Delete(id)
	}
	return playerDead
}
