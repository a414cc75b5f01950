package generate

import (
	"testing"

	"dungeoncore/internal/gamemap"
	"dungeoncore/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how many numbers the generator draws.
type countingSource struct {
	rng.Source
	ranges int
}

func (c *countingSource) Range(lo, hi int) int {
	c.ranges++
	return c.Source.Range(lo, hi)
}

// reachable flood-fills floor cells from (x, y) through orthogonal steps.
func reachable(gmap *gamemap.Map, x, y int) []bool {
	seen := make([]bool, len(gmap.Tiles))
	start := gmap.XYIdx(x, y)
	seen[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cx, cy := gmap.IdxXY(cur)
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := cx+d[0], cy+d[1]
			if !gmap.InBounds(nx, ny) {
				continue
			}
			n := gmap.XYIdx(nx, ny)
			if seen[n] || gmap.Tiles[n] != gamemap.TileFloor {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func TestRoomsAndCorridorsAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		gmap := RoomsAndCorridors(DefaultConfig(rng.New(seed)))
		require.NotEmpty(t, gmap.Rooms, "seed=%d", seed)

		cx, cy := gmap.Rooms[0].Center()
		seen := reachable(gmap, cx, cy)

		for i, room := range gmap.Rooms {
			for y := room.Y1 + 1; y <= room.Y2; y++ {
				for x := room.X1 + 1; x <= room.X2; x++ {
					if !seen[gmap.XYIdx(x, y)] {
						t.Fatalf("seed=%d: room %d cell (%d,%d) unreachable from room 0", seed, i, x, y)
					}
				}
			}
		}
		for idx, tile := range gmap.Tiles {
			if tile == gamemap.TileFloor && !seen[idx] {
				x, y := gmap.IdxXY(idx)
				t.Fatalf("seed=%d: isolated floor tile at (%d,%d)", seed, x, y)
			}
		}
	}
}

func TestRoomsAndCorridorsRoomShape(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		cfg := DefaultConfig(rng.New(seed))
		gmap := RoomsAndCorridors(cfg)

		assert.LessOrEqual(t, len(gmap.Rooms), cfg.MaxRooms)
		for i, a := range gmap.Rooms {
			w, h := a.X2-a.X1, a.Y2-a.Y1
			assert.GreaterOrEqual(t, w, cfg.MinSize)
			assert.LessOrEqual(t, w, cfg.MaxSize)
			assert.GreaterOrEqual(t, h, cfg.MinSize)
			assert.LessOrEqual(t, h, cfg.MaxSize)
			assert.GreaterOrEqual(t, a.X1, 0)
			assert.GreaterOrEqual(t, a.Y1, 0)
			assert.Less(t, a.X2, cfg.MapWidth-1, "room must leave the right border wall")
			assert.Less(t, a.Y2, cfg.MapHeight-1, "room must leave the bottom border wall")
			for j, b := range gmap.Rooms {
				if i != j {
					assert.False(t, a.Intersects(b), "seed=%d: rooms %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestRoomsAndCorridorsDrawsExactlyMaxRoomsCandidates(t *testing.T) {
	src := &countingSource{Source: rng.New(3)}
	cfg := DefaultConfig(src)
	gmap := RoomsAndCorridors(cfg)

	// Four draws per candidate plus one coin flip per corridor.
	want := 4*cfg.MaxRooms + len(gmap.Rooms) - 1
	assert.Equal(t, want, src.ranges)
}

func TestRoomsAndCorridorsDeterministic(t *testing.T) {
	a := RoomsAndCorridors(DefaultConfig(rng.New(99)))
	b := RoomsAndCorridors(DefaultConfig(rng.New(99)))
	assert.Equal(t, a.Rooms, b.Rooms)
	assert.Equal(t, a.Tiles, b.Tiles)
}

func TestRoomsAndCorridorsBlockedMatchesWalls(t *testing.T) {
	gmap := RoomsAndCorridors(DefaultConfig(rng.New(11)))
	for i, tile := range gmap.Tiles {
		assert.Equal(t, tile == gamemap.TileWall, gmap.Blocked[i])
	}
}
