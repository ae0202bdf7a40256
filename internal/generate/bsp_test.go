package generate

import (
	"math/rand"
	"testing"

	"dungeon-kernel/internal/gamemap"
)

func generate(seed int64, depth int) *gamemap.GameMap {
	return NewBSP(80, 43).Generate(depth, rand.New(rand.NewSource(seed)))
}

// TestGenerateAllRoomsConnected verifies that every walkable tile is
// reachable from the first room via flood fill.
func TestGenerateAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap := generate(seed, 1)
		sx, sy := gmap.Rooms[0].Center()

		visited := make([]bool, gmap.Width*gmap.Height)
		queue := []gamemap.Point{gamemap.Pt(sx, sy)}
		visited[gmap.XYIdx(sx, sy)] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := cur.X+d[0], cur.Y+d[1]
				if !gmap.IsWalkable(nx, ny) || visited[gmap.XYIdx(nx, ny)] {
					continue
				}
				visited[gmap.XYIdx(nx, ny)] = true
				queue = append(queue, gamemap.Pt(nx, ny))
			}
		}

		for y := 0; y < gmap.Height; y++ {
			for x := 0; x < gmap.Width; x++ {
				if gmap.IsWalkable(x, y) && !visited[gmap.XYIdx(x, y)] {
					t.Errorf("seed=%d: unreachable tile at (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rooms := generate(seed, 1).Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v", seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap := generate(seed, 1)
		for y := 0; y < gmap.Height; y++ {
			for x := 0; x < gmap.Width; x++ {
				if gmap.OnBorder(x, y) && gmap.IsWalkable(x, y) {
					t.Fatalf("seed=%d: border tile (%d,%d) is walkable", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateStairsInLastRoom(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap := generate(seed, 3)
		if gmap.Depth != 3 {
			t.Fatalf("depth = %d; want 3", gmap.Depth)
		}
		if len(gmap.Rooms) < 2 {
			t.Fatalf("seed=%d: only %d rooms", seed, len(gmap.Rooms))
		}
		sx, sy := gmap.Rooms[len(gmap.Rooms)-1].Center()
		if gmap.At(sx, sy).Kind != gamemap.TileStairsDown {
			t.Errorf("seed=%d: no stairs at last room centre (%d,%d)", seed, sx, sy)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, b := generate(7, 1), generate(7, 1)
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatal("same seed produced different room counts")
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Fatalf("room %d differs: %v vs %v", i, a.Rooms[i], b.Rooms[i])
		}
	}
}

func TestGenerateTinyMapFallsBackToOneRoom(t *testing.T) {
	gmap := NewBSP(8, 8).Generate(1, rand.New(rand.NewSource(1)))
	if len(gmap.Rooms) == 0 {
		t.Fatal("expected a fallback room")
	}
	sx, sy := gmap.Rooms[0].Center()
	if !gmap.IsWalkable(sx, sy) {
		t.Fatal("start tile should be walkable")
	}
}
