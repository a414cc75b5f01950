// Package spawner creates the player, monsters and items and places them
// in generated rooms.
package spawner

import (
	"fmt"

	"dungeoncore/internal/component"
	"dungeoncore/internal/config"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamemap"
	"dungeoncore/internal/rng"

	"github.com/gdamore/tcell/v2"
)

// Render orders, lowest drawn first.
const (
	orderItem    = 2
	orderMonster = 5
	orderPlayer  = 10
)

// Spawner builds entities from the configured templates.
type Spawner struct {
	cfg     config.Config
	rand    rng.Source
	spawned int
}

func New(cfg config.Config, r rng.Source) *Spawner {
	return &Spawner{cfg: cfg, rand: r}
}

// build creates an entity carrying comps. Listing the same component type
// twice panics.
func build(w *ecs.World, comps ...ecs.Component) ecs.EntityID {
	id := w.CreateEntity()
	for _, c := range comps {
		w.Insert(id, c)
	}
	return id
}

// Player creates the player entity at (x, y). The player does not block
// its tile, so monsters can path right up to it.
func (s *Spawner) Player(w *ecs.World, x, y int) ecs.EntityID {
	st := s.cfg.Player
	return build(w,
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:       '@',
			FGColor:     tcell.ColorYellow,
			BGColor:     tcell.ColorBlack,
			RenderOrder: orderPlayer,
		},
		component.TagPlayer{},
		component.Name{Name: "Player"},
		component.NewViewshed(st.Sight),
		component.CombatStats{MaxHP: st.MaxHP, HP: st.MaxHP, Defense: st.Defense, Power: st.Power},
	)
}

// RandomMonster rolls one of the configured monster kinds and creates it.
func (s *Spawner) RandomMonster(w *ecs.World, x, y int) ecs.EntityID {
	roll := s.rand.RollDice(1, len(s.cfg.Monsters))
	return s.Monster(w, s.cfg.Monsters[roll-1], x, y)
}

// Monster creates one monster from tmpl. Each monster gets a serial number
// in its name so the log can tell them apart.
func (s *Spawner) Monster(w *ecs.World, tmpl config.Monster, x, y int) ecs.EntityID {
	s.spawned++
	glyph := []rune(tmpl.Glyph)[0]
	return build(w,
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:       glyph,
			FGColor:     tcell.ColorRed,
			BGColor:     tcell.ColorBlack,
			RenderOrder: orderMonster,
		},
		component.NewViewshed(tmpl.Sight),
		component.TagMonster{},
		component.Name{Name: fmt.Sprintf("%s #%d", tmpl.Name, s.spawned)},
		component.TagBlocking{},
		component.CombatStats{MaxHP: tmpl.MaxHP, HP: tmpl.MaxHP, Defense: tmpl.Defense, Power: tmpl.Power},
	)
}

// HealthPotion creates a potion lying at (x, y).
func (s *Spawner) HealthPotion(w *ecs.World, x, y int) ecs.EntityID {
	return build(w,
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:       '¡',
			FGColor:     tcell.ColorFuchsia,
			BGColor:     tcell.ColorBlack,
			RenderOrder: orderItem,
		},
		component.Name{Name: "Health Potion"},
		component.TagItem{},
		component.Consumable{HealAmount: s.cfg.Spawn.PotionHeal},
	)
}

// SpawnRoom fills the interior of room with up to MaxMonstersPerRoom
// monsters and MaxItemsPerRoom potions. No two spawns share a cell.
func (s *Spawner) SpawnRoom(w *ecs.World, room gamemap.Rect) {
	monsters := s.rand.Range(0, s.cfg.Spawn.MaxMonstersPerRoom)
	items := s.rand.Range(0, s.cfg.Spawn.MaxItemsPerRoom)

	width, height := room.X2-room.X1, room.Y2-room.Y1
	free := width * height
	occupied := make(map[gamemap.Point]bool)
	pick := func() gamemap.Point {
		for {
			p := gamemap.Point{
				X: room.X1 + s.rand.Range(1, width),
				Y: room.Y1 + s.rand.Range(1, height),
			}
			if !occupied[p] {
				occupied[p] = true
				free--
				return p
			}
		}
	}

	for i := 0; i < monsters && free > 0; i++ {
		p := pick()
		s.RandomMonster(w, p.X, p.Y)
	}
	for i := 0; i < items && free > 0; i++ {
		p := pick()
		s.HealthPotion(w, p.X, p.Y)
	}
}
