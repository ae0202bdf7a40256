package system

import (
	"slices"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/gamemap"
)

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FieldOfView runs recursive shadowcasting from center and returns every
// in-bounds tile within radius that is lit, sorted row by row. Opaque tiles
// that stop the light are included; tiles behind them are not.
func FieldOfView(center gamemap.Point, radius int, m *gamemap.GameMap) []gamemap.Point {
	if !m.InBounds(center.X, center.Y) {
		return nil
	}
	seen := map[gamemap.Point]bool{center: true}
	visit := func(x, y int) {
		seen[gamemap.Point{X: x, Y: y}] = true
	}
	for _, o := range octants {
		castLight(m, visit, center.X, center.Y, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}

	out := make([]gamemap.Point, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b gamemap.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// castLight casts light for one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(m *gamemap.GameMap, visit func(x, y int), cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && m.InBounds(wx, wy) {
				visit(wx, wy)
			}

			opaque := !m.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(m, visit, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// Visibility recomputes every dirty viewshed. The player's viewshed also
// drives the map's visible and revealed flags.
func Visibility(res *Resources) {
	w, m := res.World, res.Map
	fov := res.fov()
	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		vs.Visible = fov(gamemap.Point{X: pos.X, Y: pos.Y}, vs.Range, m)
		vs.Dirty = false
		w.Add(id, vs)

		if res.IsPlayer(id) {
			m.ClearVisible()
			for _, p := range vs.Visible {
				t := m.At(p.X, p.Y)
				t.Visible = true
				t.Revealed = true
			}
		}
	}
}
