package system

import (
	"slices"
	"strings"
	"testing"

	"dungeon-kernel/internal/component"
)

func TestMeleeCombatQueuesDamage(t *testing.T) {
	f := newFixture()
	orc := f.spawnMonster("Orc", 6, 5)
	f.w.Add(f.player, component.WantsToMelee{Target: orc})

	MeleeCombat(f.res)

	// Power 5 - Defense 1 = 4.
	if got := f.pending(orc); !slices.Equal(got, []int{4}) {
		t.Fatalf("pending damage = %v; want [4]", got)
	}
	if f.w.Count(component.CWantsToMelee) != 0 {
		t.Error("melee intents should be cleared")
	}
	if !strings.Contains(strings.Join(f.log.Entries(), "\n"), "Player hits Orc, for 4 hp.") {
		t.Errorf("missing hit log line; got %v", f.log.Entries())
	}
}

func TestMeleeCombatAppliesEquipmentBonuses(t *testing.T) {
	f := newFixture()
	orc := f.spawnMonster("Orc", 6, 5)
	sword := f.giveItem(f.player, "Longsword", component.MeleePowerBonus{Power: 4})
	f.w.Remove(sword, component.CInBackpack)
	f.w.Add(sword, component.Equipped{Owner: f.player, Slot: component.SlotMelee})
	shield := f.giveItem(orc, "Shield", component.DefenseBonus{Defense: 2})
	f.w.Remove(shield, component.CInBackpack)
	f.w.Add(shield, component.Equipped{Owner: orc, Slot: component.SlotShield})

	f.w.Add(f.player, component.WantsToMelee{Target: orc})
	MeleeCombat(f.res)

	// (5+4) - (1+2) = 6.
	if got := f.pending(orc); !slices.Equal(got, []int{6}) {
		t.Fatalf("pending damage = %v; want [6]", got)
	}
}

func TestMeleeCombatUnableToHurt(t *testing.T) {
	f := newFixture()
	orc := f.spawnMonster("Orc", 6, 5)
	f.w.Add(orc, component.CombatStats{MaxHP: 10, HP: 10, Defense: 9, Power: 1})
	f.w.Add(f.player, component.WantsToMelee{Target: orc})

	MeleeCombat(f.res)

	if f.pending(orc) != nil {
		t.Fatal("no damage should be queued")
	}
	if got := f.log.Entries(); len(got) != 1 || got[0] != "Player is unable to hurt Orc." {
		t.Fatalf("log = %v", got)
	}
}

func TestMonsterOnMonsterMeleeNotLogged(t *testing.T) {
	f := newFixture()
	a := f.spawnMonster("Orc", 6, 5)
	b := f.spawnMonster("Goblin", 7, 5)
	f.w.Add(a, component.WantsToMelee{Target: b})

	MeleeCombat(f.res)

	if f.log.Len() != 0 {
		t.Fatalf("monster-on-monster fights should not reach the log: %v", f.log.Entries())
	}
	if f.pending(b) == nil {
		t.Fatal("damage should still be queued")
	}
}

func TestAddDamageMerges(t *testing.T) {
	f := newFixture()
	orc := f.spawnMonster("Orc", 6, 5)
	AddDamage(f.w, orc, 3, false)
	AddDamage(f.w, orc, 5, false)
	if got := f.pending(orc); !slices.Equal(got, []int{3, 5}) {
		t.Fatalf("pending = %v; want [3 5]", got)
	}
}

func TestDamageCommitsAndClears(t *testing.T) {
	f := newFixture()
	orc := f.spawnMonster("Orc", 6, 5)
	AddDamage(f.w, orc, 3, false)
	AddDamage(f.w, orc, 4, false)
	item := f.dropItemAt("Potion", 9, 9)
	AddDamage(f.w, item, 2, false)

	Damage(f.res)

	if got := f.hp(orc); got != 3 {
		t.Fatalf("orc HP = %d; want 3", got)
	}
	if f.w.Count(component.CSufferDamage) != 0 {
		t.Fatal("SufferDamage should be cleared, including on entities without stats")
	}
}

func TestDeleteTheDead(t *testing.T) {
	f := newFixture()
	orc := f.spawnMonster("Orc", 6, 5)
	goblin := f.spawnMonster("Goblin", 7, 5)
	f.w.Add(orc, component.CombatStats{MaxHP: 10, HP: 0})
	f.w.Add(orc, component.SlainByPlayer{})

	if DeleteTheDead(f.res) {
		t.Fatal("player is alive")
	}
	if f.w.Alive(orc) {
		t.Error("dead orc should be deleted")
	}
	if !f.w.Alive(goblin) {
		t.Error("healthy goblin should survive")
	}
	if got := f.log.Entries(); len(got) != 1 || got[0] != "Orc is dead" {
		t.Errorf("log = %v", got)
	}

	f.w.Add(f.player, component.CombatStats{MaxHP: 30, HP: -2})
	if !DeleteTheDead(f.res) {
		t.Fatal("expected player death to be reported")
	}
	if !f.w.Alive(f.player) {
		t.Fatal("the player entity is never deleted by the dead pass")
	}
}

func TestDamageMarksPlayerKills(t *testing.T) {
	f := newFixture()
	orc := f.spawnMonster("Orc", 6, 5)
	goblin := f.spawnMonster("Goblin", 7, 5)
	AddDamage(f.w, orc, 3, false)
	AddDamage(f.w, orc, 100, true)
	AddDamage(f.w, goblin, 100, false)

	Damage(f.res)

	if !f.w.Has(orc, component.CSlainByPlayer) {
		t.Error("orc killed with player damage should be marked")
	}
	if f.w.Has(goblin, component.CSlainByPlayer) {
		t.Error("goblin killed by others should not be marked")
	}
}

func TestDeleteTheDeadLogsOnlyPlayerKills(t *testing.T) {
	f := newFixture()
	orc := f.spawnMonster("Orc", 6, 5)
	f.w.Add(orc, component.CombatStats{MaxHP: 10, HP: 0})

	DeleteTheDead(f.res)

	if f.w.Alive(orc) {
		t.Fatal("dead orc should be deleted")
	}
	if got := f.log.Entries(); len(got) != 0 {
		t.Errorf("log = %v; a death the player did not cause is not logged", got)
	}
}
