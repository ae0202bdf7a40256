package system

// Stage is one named system in the per-turn pipeline.
type Stage struct {
	Name string
	Run  func(*Resources)
}

// Pipeline is the fixed system order for one turn. Each stage sees every
// write made by the stages before it.
var Pipeline = []Stage{
	{"visibility", Visibility},
	{"monster_ai", MonsterAI},
	{"map_indexing", MapIndexing},
	{"melee_combat", MeleeCombat},
	{"damage", Damage},
	{"item_collection", ItemCollection},
	{"item_use", ItemUse},
	{"item_drop", ItemDrop},
	{"item_remove", ItemRemove},
}

// RunPipeline runs every stage once, in order. Deleted entities are not
// swept here; the caller does that once per tick.
func RunPipeline(res *Resources) {
	log := res.logger()
	for _, s := range Pipeline {
		s.Run(res)
		log.Debug("system ran", "system", s.Name)
	}
}
