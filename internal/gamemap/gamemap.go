package gamemap

import (
	"fmt"
	"math"

	"dungeoncore/internal/ecs"
	"dungeoncore/internal/pathfind"
)

// Rect is an axis-aligned rectangle used for rooms.
// The carved interior of a room spans X1+1..X2 and Y1+1..Y2.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other. Rectangles that only share
// an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 < other.X2 && r.X2 > other.X1 &&
		r.Y1 < other.Y2 && r.Y2 > other.Y1
}

// Map holds the tile grid, the room list and the per-cell state arrays for
// one dungeon level. Every per-cell slice has Width*Height entries indexed
// by XYIdx.
type Map struct {
	Width, Height int
	Tiles         []TileType
	Rooms         []Rect
	Revealed      []bool
	Visible       []bool
	Blocked       []bool
	TileContent   [][]ecs.EntityID
}

// New creates a Map filled with walls.
func New(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gamemap: invalid dimensions %dx%d", width, height))
	}
	n := width * height
	m := &Map{
		Width:       width,
		Height:      height,
		Tiles:       make([]TileType, n),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]ecs.EntityID, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	m.PopulateBlocked()
	return m
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// XYIdx returns the cell index of (x, y). Panics if out of bounds.
func (m *Map) XYIdx(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// IdxXY is the inverse of XYIdx. Panics if idx is out of range.
func (m *Map) IdxXY(idx int) (int, int) {
	if idx < 0 || idx >= len(m.Tiles) {
		panic(fmt.Sprintf("gamemap: index %d outside %dx%d map", idx, m.Width, m.Height))
	}
	return idx % m.Width, idx / m.Width
}

// IdxPoint is IdxXY returning a Point.
func (m *Map) IdxPoint(idx int) Point {
	x, y := m.IdxXY(idx)
	return Point{X: x, Y: y}
}

// ApplyRoom carves the interior of r into floor.
func (m *Map) ApplyRoom(r Rect) {
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			m.Tiles[m.XYIdx(x, y)] = TileFloor
		}
	}
}

// IsOpaque reports whether the cell at idx blocks sight.
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// IsExitValid reports whether an entity may step onto (x, y).
func (m *Map) IsExitValid(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return !m.Blocked[y*m.Width+x]
}

var exitDirs = [8]struct {
	dx, dy int
	cost   float64
}{
	{-1, 0, 1.0}, {1, 0, 1.0}, {0, -1, 1.0}, {0, 1, 1.0},
	{-1, -1, 1.45}, {1, -1, 1.45}, {-1, 1, 1.45}, {1, 1, 1.45},
}

// Exits lists the neighbouring cells of idx that are not blocked, with the
// cost of stepping into each. Diagonals cost slightly more.
func (m *Map) Exits(idx int) []pathfind.Exit {
	x, y := m.IdxXY(idx)
	exits := make([]pathfind.Exit, 0, len(exitDirs))
	for _, d := range exitDirs {
		if m.IsExitValid(x+d.dx, y+d.dy) {
			exits = append(exits, pathfind.Exit{Idx: idx + d.dy*m.Width + d.dx, Cost: d.cost})
		}
	}
	return exits
}

// PathingDistance is the straight-line distance between two cells.
func (m *Map) PathingDistance(a, b int) float64 {
	ax, ay := a%m.Width, a/m.Width
	bx, by := b%m.Width, b/m.Width
	return math.Hypot(float64(ax-bx), float64(ay-by))
}

// PopulateBlocked resets Blocked to exactly the wall layout.
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContentIndex empties every TileContent list.
func (m *Map) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ClearVisible marks every cell not currently visible.
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}
