// Package generate builds dungeon levels and decides where their contents
// spawn.
package generate

import (
	"math/rand"

	"dungeon-kernel/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// BSP generates levels by binary space partitioning: the map is split into
// leaves, one room is carved per leaf, and sibling leaves are joined by
// corridors. The first room is the player's start and the last room holds
// the stairs down.
type BSP struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	Corridors     CorridorStyle
}

// NewBSP returns a generator with the default leaf and room sizes for a
// width x height map.
func NewBSP(width, height int) BSP {
	return BSP{
		Width:       width,
		Height:      height,
		MinLeafSize: 8,
		MaxLeafSize: 20,
		MinRoomSize: 4,
		RoomPadding: 1,
	}
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

// builder carries the generator settings and rng through one Generate call.
type builder struct {
	BSP
	rng  *rand.Rand
	gmap *gamemap.GameMap
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(b *builder) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Prefer cutting across the long axis.
	splitH := b.rng.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo, hi := b.MinLeafSize, size-b.MinLeafSize
	if size <= b.MinLeafSize*2 || lo >= hi {
		return false
	}
	cut := lo + b.rng.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: cut}
		l.right = &bspLeaf{X: l.X, Y: l.Y + cut, W: l.W, H: l.H - cut}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: cut, H: l.H}
		l.right = &bspLeaf{X: l.X + cut, Y: l.Y, W: l.W - cut, H: l.H}
	}
	return true
}

// createRooms carves one room inside every terminal leaf.
func (l *bspLeaf) createRooms(b *builder) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(b)
		}
		if l.right != nil {
			l.right.createRooms(b)
		}
		return
	}
	pad := b.RoomPadding
	minSize := b.MinRoomSize
	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := minSize + b.rng.Intn(max(1, availW-minSize+1))
	rh := minSize + b.rng.Intn(max(1, availH-minSize+1))
	rw = max(min(rw, l.W-2*pad), 3)
	rh = max(min(rh, l.H-2*pad), 3)

	rx := l.X + pad + b.rng.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + b.rng.Intn(max(1, l.H-rh-2*pad+1))

	// Keep a one-tile wall ring around the map.
	rx, ry = max(rx, 1), max(ry, 1)
	gmap := b.gmap
	if rx+rw >= gmap.Width {
		rw = gmap.Width - rx - 1
	}
	if ry+rh >= gmap.Height {
		rh = gmap.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	carveRoom(gmap, room)
}

// getRoom returns a room from this leaf or its descendants.
func (l *bspLeaf) getRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.getRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.getRoom()
	}
	return nil
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(b *builder) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(b)
	l.right.connectChildren(b)

	lRoom, rRoom := l.left.getRoom(), l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lx, ly := lRoom.Center()
	rx, ry := rRoom.Center()
	b.carveCorridor(lx, ly, rx, ry)
}

func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	gmap.Rooms = append(gmap.Rooms, room)
}

// Generate builds the level at depth. Rooms are listed in carve order; the
// player starts in Rooms[0] and the stairs down sit in the last room.
func (g BSP) Generate(depth int, rng *rand.Rand) *gamemap.GameMap {
	gmap := gamemap.New(g.Width, g.Height)
	gmap.Depth = depth
	b := &builder{BSP: g, rng: rng, gmap: gmap}

	root := &bspLeaf{W: g.Width, H: g.Height}
	leaves := []*bspLeaf{root}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > g.MaxLeafSize || leaf.H > g.MaxLeafSize || rng.Float64() > 0.25 {
				if leaf.split(b) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(b)
	root.connectChildren(b)

	if len(gmap.Rooms) == 0 {
		// Map too small for the leaf sizes: fall back to one room.
		carveRoom(gmap, gamemap.Rect{X1: 1, Y1: 1, X2: g.Width - 2, Y2: g.Height - 2})
	}

	last := gmap.Rooms[len(gmap.Rooms)-1]
	sx, sy := last.Center()
	if len(gmap.Rooms) == 1 {
		sx, sy = last.X2, last.Y2
	}
	gmap.Set(sx, sy, gamemap.MakeStairsDown())
	return gmap
}
