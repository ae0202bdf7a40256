package factory

import (
	"math/rand"
	"testing"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/generate"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 5, 3, 8)

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}
	if p := w.Get(id, component.CPosition).(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}
	stats := w.Get(id, component.CCombatStats).(component.CombatStats)
	if stats.HP != stats.MaxHP || stats.MaxHP <= 0 {
		t.Errorf("player should start at full health, got %d/%d", stats.HP, stats.MaxHP)
	}
	vs := w.Get(id, component.CViewshed).(component.Viewshed)
	if vs.Range != 8 || !vs.Dirty {
		t.Errorf("viewshed = %+v; want range 8 and dirty", vs)
	}
	for _, ct := range []ecs.ComponentType{component.CPlayer, component.CBlocksTile, component.CName, component.CRenderable} {
		if !w.Has(id, ct) {
			t.Errorf("player missing component %d", ct)
		}
	}
}

func TestMonsters(t *testing.T) {
	tests := []struct {
		name  string
		ctor  func(*ecs.World, int, int) ecs.EntityID
		glyph rune
	}{
		{"Orc", NewOrc, 'o'},
		{"Goblin", NewGoblin, 'g'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			id := tt.ctor(w, 7, 9)
			if got := component.NameOf(w, id); got != tt.name {
				t.Errorf("name = %q; want %q", got, tt.name)
			}
			if r := w.Get(id, component.CRenderable).(component.Renderable); r.Glyph != tt.glyph {
				t.Errorf("glyph = %q; want %q", r.Glyph, tt.glyph)
			}
			for _, ct := range []ecs.ComponentType{component.CMonster, component.CBlocksTile, component.CCombatStats, component.CViewshed} {
				if !w.Has(id, ct) {
					t.Errorf("%s missing component %d", tt.name, ct)
				}
			}
		})
	}
}

func TestItems(t *testing.T) {
	tests := []struct {
		name string
		want []ecs.ComponentType
		not  []ecs.ComponentType
	}{
		{"Health Potion", []ecs.ComponentType{component.CConsumable, component.CProvidesHealing}, []ecs.ComponentType{component.CRanged}},
		{"Magic Missile Scroll", []ecs.ComponentType{component.CConsumable, component.CRanged, component.CInflictsDamage}, []ecs.ComponentType{component.CAreaOfEffect}},
		{"Fireball Scroll", []ecs.ComponentType{component.CConsumable, component.CRanged, component.CInflictsDamage, component.CAreaOfEffect}, nil},
		{"Confusion Scroll", []ecs.ComponentType{component.CConsumable, component.CRanged, component.CConfuses}, nil},
		{"Dagger", []ecs.ComponentType{component.CEquippable, component.CMeleePowerBonus}, []ecs.ComponentType{component.CConsumable}},
		{"Shield", []ecs.ComponentType{component.CEquippable, component.CDefenseBonus}, []ecs.ComponentType{component.CConsumable}},
		{"Longsword", []ecs.ComponentType{component.CEquippable, component.CMeleePowerBonus}, []ecs.ComponentType{component.CConsumable}},
		{"Tower Shield", []ecs.ComponentType{component.CEquippable, component.CDefenseBonus}, []ecs.ComponentType{component.CConsumable}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			id, ok := Spawn(w, tt.name, 4, 6)
			if !ok {
				t.Fatalf("Spawn(%q) failed", tt.name)
			}
			if !w.Has(id, component.CItem) || !w.Has(id, component.CPosition) {
				t.Fatal("items spawn on the floor with the Item tag")
			}
			if w.Has(id, component.CBlocksTile) {
				t.Error("items must not block their tile")
			}
			for _, ct := range tt.want {
				if !w.Has(id, ct) {
					t.Errorf("missing component %d", ct)
				}
			}
			for _, ct := range tt.not {
				if w.Has(id, ct) {
					t.Errorf("unexpected component %d", ct)
				}
			}
		})
	}
}

func TestEquipmentSlots(t *testing.T) {
	w := ecs.NewWorld()
	slot := func(id ecs.EntityID) component.EquipmentSlot {
		return w.Get(id, component.CEquippable).(component.Equippable).Slot
	}
	if slot(NewDagger(w, 0, 0)) != slot(NewLongsword(w, 0, 0)) {
		t.Error("dagger and longsword should share a slot")
	}
	if slot(NewShield(w, 0, 0)) != slot(NewTowerShield(w, 0, 0)) {
		t.Error("shield and tower shield should share a slot")
	}
	if slot(NewDagger(w, 0, 0)) == slot(NewShield(w, 0, 0)) {
		t.Error("weapons and shields use different slots")
	}
}

func TestSpawnTableCoversConstructors(t *testing.T) {
	table := SpawnTable(1)
	if len(table) != len(constructors) {
		t.Fatalf("table has %d rows, %d constructors", len(table), len(constructors))
	}
	for _, e := range table {
		if _, ok := constructors[e.Name]; !ok {
			t.Errorf("no constructor for %q", e.Name)
		}
	}
}

func TestSpawnTableDeepensWithDepth(t *testing.T) {
	weight := func(depth int, name string) int {
		for _, e := range SpawnTable(depth) {
			if e.Name == name {
				return e.Weight
			}
		}
		return 0
	}
	if weight(1, "Longsword") > 0 {
		t.Error("longswords should not spawn on the first level")
	}
	if weight(5, "Orc") <= weight(1, "Orc") {
		t.Error("orcs should become more common with depth")
	}
}

func TestSpawnUnknown(t *testing.T) {
	w := ecs.NewWorld()
	if _, ok := Spawn(w, "Dragon", 1, 1); ok {
		t.Fatal("unknown archetype should not spawn")
	}
	if len(w.Entities()) != 0 {
		t.Fatal("failed spawn must not create an entity")
	}
}

func TestSpawnAllFromGeneratedLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	gmap := generate.NewBSP(80, 43).Generate(4, rng)
	spawns := generate.Populate(gmap, SpawnTable(4), MaxSpawnsPerRoom, rng)
	if len(spawns) == 0 {
		t.Fatal("expected spawns on a depth-4 level")
	}

	w := ecs.NewWorld()
	ids := SpawnAll(w, append(spawns, generate.Spawn{Name: "Dragon"}))
	if len(ids) != len(spawns) {
		t.Fatalf("spawned %d entities; want %d", len(ids), len(spawns))
	}
	for i, id := range ids {
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X != spawns[i].X || p.Y != spawns[i].Y {
			t.Errorf("entity %v at (%d,%d); want (%d,%d)", id, p.X, p.Y, spawns[i].X, spawns[i].Y)
		}
		if !gmap.IsWalkable(p.X, p.Y) {
			t.Errorf("entity %v spawned on a wall", id)
		}
	}
}
