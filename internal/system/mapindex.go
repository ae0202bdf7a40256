package system

import "dungeon-kernel/internal/component"

// MapIndexing rebuilds the map's blocked flags and per-tile entity lists
// from current positions.
func MapIndexing(res *Resources) {
	w, m := res.World, res.Map
	m.PopulateBlocked()
	m.ClearContentIndex()
	for _, id := range w.Query(component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.InBounds(pos.X, pos.Y) {
			continue
		}
		idx := m.XYIdx(pos.X, pos.Y)
		if w.Has(id, component.CBlocksTile) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], id)
	}
}
