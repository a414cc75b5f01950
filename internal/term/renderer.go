// Package term is the tcell front end: it draws a simulation and turns key
// presses into intents.
package term

import (
	"sort"

	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/game"
	"dungeoncore/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 7

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen    tcell.Screen
	camera    *Camera
	theme     Theme
	logWindow int
}

// NewRenderer creates a Renderer for the given screen. logWindow is how
// many log lines the HUD shows.
func NewRenderer(screen tcell.Screen, logWindow int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:    screen,
		camera:    NewCamera(0, 0, w, max(h-hudRows, 1)),
		theme:     DefaultTheme,
		logWindow: logWindow,
	}
}

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 1)
}

// Draw renders the map, the entities in view and the HUD, then shows the
// frame.
func (r *Renderer) Draw(sim *game.Simulation) {
	r.screen.Clear()
	p := sim.PlayerPos()
	r.camera.Center(p.X, p.Y)
	r.camera.Fit(sim.Map().Width, sim.Map().Height)
	r.drawMap(sim.Map())
	r.drawEntities(sim.World(), sim.Map())
	r.drawHUD(sim)
	r.screen.Show()
}

// drawMap renders every revealed tile. Tiles out of sight are drawn in the
// remembered colour.
func (r *Renderer) drawMap(m *gamemap.Map) {
	for idx, tile := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		x, y := m.IdxXY(idx)
		sx, sy, onScreen := r.camera.WorldToScreen(x, y)
		if !onScreen {
			continue
		}
		glyph, fg := r.theme.Floor, r.theme.FloorColor
		if tile == gamemap.TileWall {
			glyph, fg = r.theme.Wall, r.theme.WallColor
		}
		if !m.Visible[idx] {
			fg = r.theme.Remembered
		}
		r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders all entities with Renderable + Position standing on
// visible tiles, ordered by RenderOrder.
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.Map) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		if !m.InBounds(pos.X, pos.Y) || !m.Visible[m.XYIdx(pos.X, pos.Y)] {
			continue
		}
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	// Lower render order is drawn first, so it ends up behind.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(e.rend.BGColor)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws one glyph at screen position (x, y), padding the second
// column of wide glyphs.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
