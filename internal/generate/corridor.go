package generate

import "dungeoncore/internal/gamemap"

// carveCorridor digs an L-shaped tunnel from (x1,y1) to (x2,y2), picking
// horizontal-then-vertical or vertical-then-horizontal with equal odds.
func carveCorridor(gmap *gamemap.Map, x1, y1, x2, y2 int, cfg *Config) {
	if cfg.Rand.Range(0, 1) == 1 {
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	} else {
		carveV(gmap, y1, y2, x1)
		carveH(gmap, x1, x2, y2)
	}
}

func carveH(gmap *gamemap.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		carveIdx(gmap, y*gmap.Width+x)
	}
}

func carveV(gmap *gamemap.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		carveIdx(gmap, y*gmap.Width+x)
	}
}

// carveIdx turns one cell into floor. Indices outside [1, w*h-2] are
// skipped so a tunnel can never write to the first or last cell.
func carveIdx(gmap *gamemap.Map, idx int) {
	if idx < 1 || idx > len(gmap.Tiles)-2 {
		return
	}
	gmap.Tiles[idx] = gamemap.TileFloor
}
