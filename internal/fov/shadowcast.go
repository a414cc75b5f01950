// Package fov computes fields of view by recursive shadowcasting.
package fov

// Opaque reports whether the cell at (x, y) blocks sight. It is called for
// coordinates outside the map too and should report true for them.
type Opaque func(x, y int) bool

// Point is a cell reached by a light ray.
type Point struct {
	X, Y int
}

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

// Compute returns every cell visible from (cx, cy) within radius, origin
// included. Each cell appears once. Points are not clipped to any map;
// callers filter them.
func Compute(cx, cy, radius int, opaque Opaque) []Point {
	seen := map[Point]bool{{cx, cy}: true}
	out := []Point{{cx, cy}}
	light := func(x, y int) {
		p := Point{x, y}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	if radius <= 0 {
		return out
	}
	for _, m := range octants {
		castLight(cx, cy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3], opaque, light)
	}
	return out
}

// castLight scans one octant row by row, recursing past each run of
// opaque cells with a narrowed slope window.
func castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, opaque Opaque, light func(x, y int)) {
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

			// dy is negative, so both slopes are positive for dx < 0 and
			// shrink toward 0 as dx moves right.
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq {
				light(wx, wy)
			}

			wall := opaque(wx, wy)
			if blocked {
				if wall {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if wall && j < radius {
				blocked = true
				castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, opaque, light)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
