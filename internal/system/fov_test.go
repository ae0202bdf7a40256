package system

import (
	"slices"
	"testing"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/gamemap"
)

// openMapFOV creates a fully-open (all floor) map for FOV tests.
func openMapFOV(width, height int) *gamemap.GameMap {
	gmap := gamemap.New(width, height)
	for y := range height {
		for x := range width {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	return gmap
}

func TestFieldOfViewIncludesOrigin(t *testing.T) {
	gmap := openMapFOV(20, 20)
	pts := FieldOfView(gamemap.Pt(5, 5), 5, gmap)
	if !slices.Contains(pts, gamemap.Pt(5, 5)) {
		t.Error("origin must always be visible")
	}
}

func TestFieldOfViewRespectsRadius(t *testing.T) {
	gmap := openMapFOV(30, 30)
	center := gamemap.Pt(15, 15)
	pts := FieldOfView(center, 4, gmap)
	for _, p := range pts {
		if p.Distance(center) > 4.0001 {
			t.Errorf("%v is %.2f tiles away; radius is 4", p, p.Distance(center))
		}
	}
	if !slices.Contains(pts, gamemap.Pt(19, 15)) {
		t.Error("tile exactly at the radius should be lit")
	}
}

func TestFieldOfViewWallBlocksSight(t *testing.T) {
	gmap := openMapFOV(20, 20)
	// Vertical wall at x=7 from y=0..19.
	for y := range 20 {
		gmap.Set(7, y, gamemap.MakeWall())
	}
	pts := FieldOfView(gamemap.Pt(5, 5), 10, gmap)
	if !slices.Contains(pts, gamemap.Pt(7, 5)) {
		t.Error("the wall itself should be lit")
	}
	if slices.Contains(pts, gamemap.Pt(9, 5)) {
		t.Error("tile behind the wall must not be visible")
	}
}

func TestFieldOfViewOutOfBoundsCenter(t *testing.T) {
	gmap := openMapFOV(5, 5)
	if pts := FieldOfView(gamemap.Pt(-1, 2), 3, gmap); pts != nil {
		t.Errorf("expected nil for off-map center, got %v", pts)
	}
}

func TestFieldOfViewDeterministic(t *testing.T) {
	gmap := openMapFOV(20, 20)
	a := FieldOfView(gamemap.Pt(9, 9), 6, gmap)
	b := FieldOfView(gamemap.Pt(9, 9), 6, gmap)
	if !slices.Equal(a, b) {
		t.Fatal("FieldOfView should return the same ordered result for the same input")
	}
}

func TestVisibilityUpdatesPlayerTiles(t *testing.T) {
	f := newFixture()
	// Pre-mark a far tile visible; the pass must clear it.
	f.m.At(18, 18).Visible = true

	Visibility(f.res)

	if !f.m.At(5, 5).Visible || !f.m.At(5, 5).Revealed {
		t.Error("player's tile must be visible and revealed")
	}
	if f.m.At(18, 18).Visible {
		t.Error("stale visibility should be cleared")
	}
	vs := f.w.Get(f.player, component.CViewshed).(component.Viewshed)
	if vs.Dirty {
		t.Error("viewshed should be clean after the pass")
	}
	if !vs.CanSee(gamemap.Pt(6, 5)) {
		t.Error("player should see the adjacent tile")
	}
}

func TestVisibilitySkipsCleanViewsheds(t *testing.T) {
	f := newFixture()
	f.w.Add(f.player, component.Viewshed{Range: 8, Dirty: false})
	Visibility(f.res)
	vs := f.w.Get(f.player, component.CViewshed).(component.Viewshed)
	if len(vs.Visible) != 0 {
		t.Error("clean viewshed should not be recomputed")
	}
}

func TestVisibilityUsesInjectedFOV(t *testing.T) {
	f := newFixture()
	calls := 0
	f.res.FOV = func(c gamemap.Point, r int, m *gamemap.GameMap) []gamemap.Point {
		calls++
		return []gamemap.Point{c}
	}
	f.spawnMonster("Orc", 8, 8)
	Visibility(f.res)
	if calls != 2 {
		t.Fatalf("FOV called %d times; want 2 (player and orc)", calls)
	}
}
