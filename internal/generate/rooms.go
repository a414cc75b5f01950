package generate

import (
	"dungeoncore/internal/gamemap"
	"dungeoncore/internal/rng"
)

// Default generation parameters.
const (
	DefaultWidth    = 80
	DefaultHeight   = 50
	DefaultMaxRooms = 30
	DefaultMinSize  = 6
	DefaultMaxSize  = 10
)

// Config drives procedural generation for one map.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int
	MinSize, MaxSize    int
	Rand                rng.Source
}

// DefaultConfig returns the standard 80x50 layout parameters.
func DefaultConfig(r rng.Source) *Config {
	return &Config{
		MapWidth:  DefaultWidth,
		MapHeight: DefaultHeight,
		MaxRooms:  DefaultMaxRooms,
		MinSize:   DefaultMinSize,
		MaxSize:   DefaultMaxSize,
		Rand:      r,
	}
}

// RoomsAndCorridors places up to cfg.MaxRooms non-overlapping rooms and
// joins each new room to the previously placed one.
//
// Exactly MaxRooms candidates are drawn. A candidate that intersects an
// existing room is discarded, so the final count may be lower; callers
// may rely only on there being at least one room in practice.
func RoomsAndCorridors(cfg *Config) *gamemap.Map {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.Rand.Range(cfg.MinSize, cfg.MaxSize)
		h := cfg.Rand.Range(cfg.MinSize, cfg.MaxSize)
		x := cfg.Rand.Range(0, cfg.MapWidth-w-2)
		y := cfg.Rand.Range(0, cfg.MapHeight-h-2)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, gmap.Rooms) {
			continue
		}
		gmap.ApplyRoom(room)

		if n := len(gmap.Rooms); n > 0 {
			newX, newY := room.Center()
			prevX, prevY := gmap.Rooms[n-1].Center()
			carveCorridor(gmap, prevX, prevY, newX, newY, cfg)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}

	gmap.PopulateBlocked()
	return gmap
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}
