// Package config loads the tunables of a run from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Stats are the combat numbers and sight range of a creature.
type Stats struct {
	MaxHP   int `yaml:"max_hp"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
	Sight   int `yaml:"sight"`
}

// Monster describes one kind of monster the spawner may place.
type Monster struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Stats `yaml:",inline"`
}

type MapConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MaxRooms    int `yaml:"max_rooms"`
	MinRoomSize int `yaml:"min_room_size"`
	MaxRoomSize int `yaml:"max_room_size"`
}

type SpawnConfig struct {
	MaxMonstersPerRoom int `yaml:"max_monsters_per_room"`
	MaxItemsPerRoom    int `yaml:"max_items_per_room"`
	PotionHeal         int `yaml:"potion_heal"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// Window is how many narration lines the front end shows.
	Window int `yaml:"window"`
}

type Config struct {
	// Seed is any phrase; the same phrase always yields the same dungeon.
	// Empty means a fresh seed per run.
	Seed     string      `yaml:"seed"`
	Map      MapConfig   `yaml:"map"`
	Player   Stats       `yaml:"player"`
	Monsters []Monster   `yaml:"monsters"`
	Spawn    SpawnConfig `yaml:"spawn"`
	Log      LogConfig   `yaml:"log"`
}

// Default returns the stock 80×50 dungeon with orcs and goblins.
func Default() Config {
	return Config{
		Map: MapConfig{
			Width:       80,
			Height:      50,
			MaxRooms:    30,
			MinRoomSize: 6,
			MaxRoomSize: 10,
		},
		Player: Stats{MaxHP: 30, Defense: 2, Power: 5, Sight: 8},
		Monsters: []Monster{
			{Name: "Orc", Glyph: "o", Stats: Stats{MaxHP: 16, Defense: 1, Power: 4, Sight: 8}},
			{Name: "Goblin", Glyph: "g", Stats: Stats{MaxHP: 16, Defense: 1, Power: 4, Sight: 8}},
		},
		Spawn: SpawnConfig{MaxMonstersPerRoom: 4, MaxItemsPerRoom: 2, PotionHeal: 8},
		Log:   LogConfig{Level: "info", Format: "console", Window: 5},
	}
}

// Load reads YAML from r over the defaults. Keys absent from the document
// keep their default value; unknown keys are an error.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs error
	add := func(format string, args ...any) {
		errs = errors.Join(errs, fmt.Errorf(format, args...))
	}

	m := c.Map
	if m.MinRoomSize < 1 {
		add("map.min_room_size must be at least 1, got %d", m.MinRoomSize)
	}
	if m.MaxRoomSize < m.MinRoomSize {
		add("map.max_room_size %d is below min_room_size %d", m.MaxRoomSize, m.MinRoomSize)
	}
	if m.Width < m.MaxRoomSize+2 || m.Height < m.MaxRoomSize+2 {
		add("map %dx%d cannot hold a room of size %d", m.Width, m.Height, m.MaxRoomSize)
	}
	if m.MaxRooms < 1 {
		add("map.max_rooms must be at least 1, got %d", m.MaxRooms)
	}
	if c.Player.MaxHP < 1 {
		add("player.max_hp must be positive, got %d", c.Player.MaxHP)
	}
	if c.Player.Sight < 0 {
		add("player.sight must not be negative, got %d", c.Player.Sight)
	}
	if len(c.Monsters) == 0 {
		add("at least one monster is required")
	}
	for i, mon := range c.Monsters {
		if mon.Name == "" {
			add("monsters[%d]: name is required", i)
		}
		if len([]rune(mon.Glyph)) != 1 {
			add("monsters[%d]: glyph must be a single character, got %q", i, mon.Glyph)
		}
		if mon.MaxHP < 1 {
			add("monsters[%d]: max_hp must be positive, got %d", i, mon.MaxHP)
		}
	}
	if c.Spawn.MaxMonstersPerRoom < 0 || c.Spawn.MaxItemsPerRoom < 0 {
		add("spawn limits must not be negative")
	}
	if c.Log.Window < 0 {
		add("log.window must not be negative, got %d", c.Log.Window)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		add("log.level: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		add("log.format must be console or json, got %q", c.Log.Format)
	}
	return errs
}

// SeedValue turns Seed into a generator seed. An empty phrase falls back
// to the clock.
func (c Config) SeedValue() int64 {
	if c.Seed == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(c.Seed))
}
