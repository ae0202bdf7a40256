package generate

import (
	"math/rand"

	"dungeon-kernel/internal/gamemap"
)

// SpawnEntry is one row of a weighted spawn table. Entries with a weight
// below 1 never spawn.
type SpawnEntry struct {
	Name   string
	Weight int
}

// Spawn asks for one named entity at (X, Y).
type Spawn struct {
	Name string
	X, Y int
}

// Populate rolls the contents of every room except the first (the player's
// start). Each room gets up to maxPerRoom+depth-1 spawns drawn from table,
// never two on the same tile and never on the stairs.
func Populate(gmap *gamemap.GameMap, table []SpawnEntry, maxPerRoom int, rng *rand.Rand) []Spawn {
	total := 0
	for _, e := range table {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total == 0 || len(gmap.Rooms) < 2 {
		return nil
	}

	// occupied tracks every tile already claimed this pass.
	occupied := make(map[gamemap.Point]bool)
	for i, t := range gmap.Tiles {
		for x := range t {
			if t[x].Kind == gamemap.TileStairsDown {
				occupied[gamemap.Pt(x, i)] = true
			}
		}
	}

	var out []Spawn
	for _, room := range gmap.Rooms[1:] {
		n := rng.Intn(maxPerRoom+3) + gmap.Depth - 3
		for range n {
			p, ok := pickFreeInRoom(room, rng, occupied)
			if !ok {
				break
			}
			occupied[p] = true
			out = append(out, Spawn{Name: roll(table, total, rng), X: p.X, Y: p.Y})
		}
	}
	return out
}

// roll picks one entry name with probability proportional to its weight.
func roll(table []SpawnEntry, total int, rng *rand.Rand) string {
	r := rng.Intn(total)
	for _, e := range table {
		if e.Weight <= 0 {
			continue
		}
		if r < e.Weight {
			return e.Name
		}
		r -= e.Weight
	}
	return table[len(table)-1].Name
}

// pickFreeInRoom tries up to 20 times to find an unclaimed tile inside room.
func pickFreeInRoom(room gamemap.Rect, rng *rand.Rand, occupied map[gamemap.Point]bool) (gamemap.Point, bool) {
	const maxAttempts = 20
	for range maxAttempts {
		p := randomInRoom(room, rng)
		if !occupied[p] {
			return p, true
		}
	}
	return gamemap.Point{}, false
}

func randomInRoom(room gamemap.Rect, rng *rand.Rand) gamemap.Point {
	w := room.X2 - room.X1 + 1
	h := room.Y2 - room.Y1 + 1
	return gamemap.Pt(room.X1+rng.Intn(max(1, w)), room.Y1+rng.Intn(max(1, h)))
}
