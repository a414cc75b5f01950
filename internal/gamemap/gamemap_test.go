package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestXYIdxRoundTrip(t *testing.T) {
	m := New(13, 7)
	seen := make(map[int]bool)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.XYIdx(x, y)
			if idx < 0 || idx >= m.Width*m.Height {
				t.Fatalf("XYIdx(%d,%d)=%d out of range", x, y, idx)
			}
			if seen[idx] {
				t.Fatalf("XYIdx(%d,%d)=%d already produced by another cell", x, y, idx)
			}
			seen[idx] = true
		}
	}
	for idx := 0; idx < m.Width*m.Height; idx++ {
		x, y := m.IdxXY(idx)
		if back := m.XYIdx(x, y); back != idx {
			t.Errorf("idx %d -> (%d,%d) -> %d", idx, x, y, back)
		}
	}
}

func TestXYIdxPanicsOutOfBounds(t *testing.T) {
	m := New(5, 5)
	cases := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 5, 0},
		{"y at height", 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("XYIdx(%d,%d) should panic", tc.x, tc.y)
				}
			}()
			m.XYIdx(tc.x, tc.y)
		})
	}
}

func TestPerCellArraysShareLength(t *testing.T) {
	m := New(80, 50)
	n := 80 * 50
	if len(m.Tiles) != n || len(m.Revealed) != n || len(m.Visible) != n ||
		len(m.Blocked) != n || len(m.TileContent) != n {
		t.Fatal("every per-cell array must have width*height entries")
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 6, 6)
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(3, 3, 6, 6), true},
		{"contained", NewRect(1, 1, 2, 2), true},
		{"shares right edge", NewRect(6, 0, 6, 6), false},
		{"shares bottom edge", NewRect(0, 6, 6, 6), false},
		{"far away", NewRect(20, 20, 6, 6), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects = %v, want %v", got, tc.want)
			}
			if got := tc.other.Intersects(a); got != tc.want {
				t.Errorf("Intersects is not symmetric: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApplyRoomCarvesInterior(t *testing.T) {
	m := New(20, 20)
	r := NewRect(2, 3, 6, 6)
	m.ApplyRoom(r)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			inside := x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
			got := m.Tiles[m.XYIdx(x, y)] == TileFloor
			if got != inside {
				t.Fatalf("(%d,%d): floor=%v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestIsOpaque(t *testing.T) {
	m := New(5, 5)
	idx := m.XYIdx(2, 2)
	if !m.IsOpaque(idx) {
		t.Error("wall tile should be opaque")
	}
	m.Tiles[idx] = TileFloor
	if m.IsOpaque(idx) {
		t.Error("floor tile should be transparent")
	}
}

func TestExitsSkipBlockedCells(t *testing.T) {
	m := New(5, 5)
	m.ApplyRoom(NewRect(0, 0, 3, 3)) // floor at 1..3 x 1..3
	m.PopulateBlocked()

	center := m.XYIdx(2, 2)
	if got := len(m.Exits(center)); got != 8 {
		t.Fatalf("open cell should have 8 exits, got %d", got)
	}

	m.Blocked[m.XYIdx(3, 3)] = true
	for _, e := range m.Exits(center) {
		if e.Idx == m.XYIdx(3, 3) {
			t.Fatal("blocked neighbour must not be offered as an exit")
		}
		x, y := m.IdxXY(e.Idx)
		diagonal := x != 2 && y != 2
		if diagonal && e.Cost <= 1.0 {
			t.Errorf("diagonal exit to (%d,%d) should cost more than 1, got %v", x, y, e.Cost)
		}
	}

	corner := m.XYIdx(1, 1)
	if got := len(m.Exits(corner)); got != 3 {
		t.Errorf("corner floor cell should have 3 exits, got %d", got)
	}
}

func TestPopulateBlockedResetsToWalls(t *testing.T) {
	m := New(6, 6)
	m.ApplyRoom(NewRect(0, 0, 4, 4))
	m.Blocked[m.XYIdx(2, 2)] = true
	m.PopulateBlocked()
	for i, tile := range m.Tiles {
		if m.Blocked[i] != (tile == TileWall) {
			t.Fatalf("cell %d: blocked=%v for %v tile", i, m.Blocked[i], tile)
		}
	}
}

func TestPathingDistance(t *testing.T) {
	m := New(10, 10)
	if d := m.PathingDistance(m.XYIdx(0, 0), m.XYIdx(3, 4)); d != 5 {
		t.Errorf("expected distance 5, got %v", d)
	}
}
