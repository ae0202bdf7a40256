package generate

import "dungeon-kernel/internal/gamemap"

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2) in the
// configured style.
func (b *builder) carveCorridor(x1, y1, x2, y2 int) {
	gmap := b.gmap
	switch b.Corridors {
	case CorridorZShaped:
		carveZShaped(gmap, x1, y1, x2, y2)
	case CorridorStraight:
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	default:
		if b.rng.Intn(2) == 0 {
			carveH(gmap, x1, x2, y1)
			carveV(gmap, y1, y2, x2)
		} else {
			carveV(gmap, y1, y2, x1)
			carveH(gmap, x1, x2, y2)
		}
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		carveTile(gmap, x, y)
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		carveTile(gmap, x, y)
	}
}

// carveTile turns one wall into floor, leaving stairs and the border ring
// alone.
func carveTile(gmap *gamemap.GameMap, x, y int) {
	if !gmap.InBounds(x, y) || gmap.OnBorder(x, y) {
		return
	}
	if gmap.At(x, y).Kind == gamemap.TileWall {
		gmap.Set(x, y, gamemap.MakeFloor())
	}
}

func carveZShaped(gmap *gamemap.GameMap, x1, y1, x2, y2 int) {
	midY := (y1 + y2) / 2
	carveV(gmap, y1, midY, x1)
	carveH(gmap, x1, x2, midY)
	carveV(gmap, midY, y2, x2)
}
