package gamemap

import "dungeon-kernel/internal/ecs"

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the tile grid, room list and per-turn spatial index for one
// dungeon level.
//
// Blocked and TileContent are indexed by XYIdx and rebuilt every turn by the
// map indexing pass; nothing else should write them.
type GameMap struct {
	Width, Height int
	Depth         int
	Tiles         [][]Tile
	Rooms         []Rect
	Blocked       []bool
	TileContent   [][]ecs.EntityID
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{
		Width:       width,
		Height:      height,
		Depth:       1,
		Tiles:       tiles,
		Blocked:     make([]bool, width*height),
		TileContent: make([][]ecs.EntityID, width*height),
	}
}

// XYIdx converts (x, y) to a flat tile index.
func (m *GameMap) XYIdx(x, y int) int {
	return y*m.Width + x
}

// IdxPoint converts a flat tile index back to a Point.
func (m *GameMap) IdxPoint(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// OnBorder reports whether (x, y) lies on the outermost ring of the map.
func (m *GameMap) OnBorder(x, y int) bool {
	return x <= 0 || y <= 0 || x >= m.Width-1 || y >= m.Height-1
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}

// IsBlocked reports whether (x, y) is off-map, a wall, or occupied by a
// blocking entity as of the last indexing pass.
func (m *GameMap) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[m.XYIdx(x, y)]
}

// PopulateBlocked marks every non-walkable tile blocked and clears the rest.
func (m *GameMap) PopulateBlocked() {
	for y := range m.Height {
		for x := range m.Width {
			m.Blocked[m.XYIdx(x, y)] = !m.Tiles[y][x].Walkable
		}
	}
}

// ClearContentIndex empties every tile's entity list.
func (m *GameMap) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ContentAt returns the entities indexed on (x, y), or nil when out of bounds.
func (m *GameMap) ContentAt(x, y int) []ecs.EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.TileContent[m.XYIdx(x, y)]
}

// ClearVisible hides every tile; revealed tiles stay revealed.
func (m *GameMap) ClearVisible() {
	for y := range m.Height {
		for x := range m.Width {
			m.Tiles[y][x].Visible = false
		}
	}
}
