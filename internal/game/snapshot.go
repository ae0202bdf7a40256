package game

import (
	"fmt"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamelog"
	"dungeon-kernel/internal/gamemap"
)

// Snapshot is a serializable copy of a game between turns. Intents and
// pending damage are never present between turns and are not captured.
type Snapshot struct {
	Map      MapSnapshot      `json:"map"`
	Player   ecs.EntityID     `json:"player"`
	Entities []EntitySnapshot `json:"entities"`
	Log      []string         `json:"log"`
}

// MapSnapshot keeps the tile layout and what the player has explored.
// Blocked and TileContent are rebuilt on restore.
type MapSnapshot struct {
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	Depth    int                `json:"depth"`
	Kinds    []gamemap.TileKind `json:"kinds"`
	Revealed []bool             `json:"revealed"`
	Rooms    []gamemap.Rect     `json:"rooms"`
}

// EntitySnapshot holds one entity's components; nil fields are absent.
type EntitySnapshot struct {
	ID              ecs.EntityID               `json:"id"`
	Position        *component.Position        `json:"position,omitempty"`
	Name            *component.Name            `json:"name,omitempty"`
	Renderable      *component.Renderable      `json:"renderable,omitempty"`
	CombatStats     *component.CombatStats     `json:"combat_stats,omitempty"`
	ViewRange       *int                       `json:"view_range,omitempty"`
	Player          bool                       `json:"player,omitempty"`
	Monster         bool                       `json:"monster,omitempty"`
	Item            bool                       `json:"item,omitempty"`
	BlocksTile      bool                       `json:"blocks_tile,omitempty"`
	Confusion       *component.Confusion       `json:"confusion,omitempty"`
	Confuses        *component.Confuses        `json:"confuses,omitempty"`
	Consumable      *component.Consumable      `json:"consumable,omitempty"`
	ProvidesHealing *component.ProvidesHealing `json:"provides_healing,omitempty"`
	InflictsDamage  *component.InflictsDamage  `json:"inflicts_damage,omitempty"`
	Ranged          *component.Ranged          `json:"ranged,omitempty"`
	AreaOfEffect    *component.AreaOfEffect    `json:"area_of_effect,omitempty"`
	Equippable      *component.Equippable      `json:"equippable,omitempty"`
	Equipped        *component.Equipped        `json:"equipped,omitempty"`
	InBackpack      *component.InBackpack      `json:"in_backpack,omitempty"`
	MeleePowerBonus *component.MeleePowerBonus `json:"melee_power_bonus,omitempty"`
	DefenseBonus    *component.DefenseBonus    `json:"defense_bonus,omitempty"`
}

// get returns a copy of component t on id, or nil.
func get[T ecs.Component](w *ecs.World, id ecs.EntityID, t ecs.ComponentType) *T {
	c := w.Get(id, t)
	if c == nil {
		return nil
	}
	v := c.(T)
	return &v
}

// Capture copies the live entities, map and log.
func Capture(w *ecs.World, m *gamemap.GameMap, player ecs.EntityID, log *gamelog.Log) Snapshot {
	s := Snapshot{
		Map: MapSnapshot{
			Width:  m.Width,
			Height: m.Height,
			Depth:  m.Depth,
			Rooms:  append([]gamemap.Rect(nil), m.Rooms...),
		},
		Player: player,
		Log:    log.Entries(),
	}
	for y := range m.Height {
		for x := range m.Width {
			t := m.At(x, y)
			s.Map.Kinds = append(s.Map.Kinds, t.Kind)
			s.Map.Revealed = append(s.Map.Revealed, t.Revealed)
		}
	}

	for _, id := range w.Entities() {
		e := EntitySnapshot{
			ID:              id,
			Position:        get[component.Position](w, id, component.CPosition),
			Name:            get[component.Name](w, id, component.CName),
			Renderable:      get[component.Renderable](w, id, component.CRenderable),
			CombatStats:     get[component.CombatStats](w, id, component.CCombatStats),
			Player:          w.Has(id, component.CPlayer),
			Monster:         w.Has(id, component.CMonster),
			Item:            w.Has(id, component.CItem),
			BlocksTile:      w.Has(id, component.CBlocksTile),
			Confusion:       get[component.Confusion](w, id, component.CConfusion),
			Confuses:        get[component.Confuses](w, id, component.CConfuses),
			Consumable:      get[component.Consumable](w, id, component.CConsumable),
			ProvidesHealing: get[component.ProvidesHealing](w, id, component.CProvidesHealing),
			InflictsDamage:  get[component.InflictsDamage](w, id, component.CInflictsDamage),
			Ranged:          get[component.Ranged](w, id, component.CRanged),
			AreaOfEffect:    get[component.AreaOfEffect](w, id, component.CAreaOfEffect),
			Equippable:      get[component.Equippable](w, id, component.CEquippable),
			Equipped:        get[component.Equipped](w, id, component.CEquipped),
			InBackpack:      get[component.InBackpack](w, id, component.CInBackpack),
			MeleePowerBonus: get[component.MeleePowerBonus](w, id, component.CMeleePowerBonus),
			DefenseBonus:    get[component.DefenseBonus](w, id, component.CDefenseBonus),
		}
		if vs := get[component.Viewshed](w, id, component.CViewshed); vs != nil {
			e.ViewRange = &vs.Range
		}
		s.Entities = append(s.Entities, e)
	}
	return s
}

// Restore rebuilds a world from the snapshot. Entity ids are reassigned;
// owner references are remapped to the new ids.
func (s Snapshot) Restore() (*ecs.World, *gamemap.GameMap, ecs.EntityID, *gamelog.Log, error) {
	ms := s.Map
	if ms.Width <= 0 || ms.Height <= 0 || len(ms.Kinds) != ms.Width*ms.Height || len(ms.Revealed) != len(ms.Kinds) {
		return nil, nil, ecs.NilEntity, nil, fmt.Errorf("restore snapshot: bad map %dx%d with %d tiles", ms.Width, ms.Height, len(ms.Kinds))
	}
	m := gamemap.New(ms.Width, ms.Height)
	m.Depth = ms.Depth
	m.Rooms = append([]gamemap.Rect(nil), ms.Rooms...)
	for i, kind := range ms.Kinds {
		p := m.IdxPoint(i)
		var t gamemap.Tile
		switch kind {
		case gamemap.TileFloor:
			t = gamemap.MakeFloor()
		case gamemap.TileStairsDown:
			t = gamemap.MakeStairsDown()
		default:
			t = gamemap.MakeWall()
		}
		t.Revealed = ms.Revealed[i]
		m.Set(p.X, p.Y, t)
	}

	w := ecs.NewWorld()
	ids := make(map[ecs.EntityID]ecs.EntityID, len(s.Entities))
	for _, e := range s.Entities {
		ids[e.ID] = w.CreateEntity()
	}
	player, ok := ids[s.Player]
	if !ok {
		return nil, nil, ecs.NilEntity, nil, fmt.Errorf("restore snapshot: player %s not in snapshot", s.Player)
	}
	remap := func(old ecs.EntityID) (ecs.EntityID, error) {
		id, ok := ids[old]
		if !ok {
			return ecs.NilEntity, fmt.Errorf("restore snapshot: dangling owner %s", old)
		}
		return id, nil
	}

	for _, e := range s.Entities {
		id := ids[e.ID]
		addIf(w, id, e.Position)
		addIf(w, id, e.Name)
		addIf(w, id, e.Renderable)
		addIf(w, id, e.CombatStats)
		addIf(w, id, e.Confusion)
		addIf(w, id, e.Confuses)
		addIf(w, id, e.Consumable)
		addIf(w, id, e.ProvidesHealing)
		addIf(w, id, e.InflictsDamage)
		addIf(w, id, e.Ranged)
		addIf(w, id, e.AreaOfEffect)
		addIf(w, id, e.Equippable)
		addIf(w, id, e.MeleePowerBonus)
		addIf(w, id, e.DefenseBonus)
		if e.ViewRange != nil {
			w.Add(id, component.Viewshed{Range: *e.ViewRange, Dirty: true})
		}
		if e.Player {
			w.Add(id, component.Player{})
		}
		if e.Monster {
			w.Add(id, component.Monster{})
		}
		if e.Item {
			w.Add(id, component.Item{})
		}
		if e.BlocksTile {
			w.Add(id, component.BlocksTile{})
		}
		if e.Equipped != nil {
			owner, err := remap(e.Equipped.Owner)
			if err != nil {
				return nil, nil, ecs.NilEntity, nil, err
			}
			w.Add(id, component.Equipped{Owner: owner, Slot: e.Equipped.Slot})
		}
		if e.InBackpack != nil {
			owner, err := remap(e.InBackpack.Owner)
			if err != nil {
				return nil, nil, ecs.NilEntity, nil, err
			}
			w.Add(id, component.InBackpack{Owner: owner})
		}
	}

	log := &gamelog.Log{}
	for _, line := range s.Log {
		log.Add(line)
	}
	return w, m, player, log, nil
}

func addIf[T ecs.Component](w *ecs.World, id ecs.EntityID, c *T) {
	if c != nil {
		w.Add(id, *c)
	}
}
