package system

import (
	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/fov"
	"dungeoncore/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
)

// Visibility recomputes the viewshed of every entity whose view is dirty.
// Points outside the map are dropped. Only the player's view is written
// back into the map's Visible and Revealed arrays.
func Visibility(w *ecs.World, m *gamemap.Map, logger *zap.Logger) {
	opaque := func(x, y int) bool {
		return !m.InBounds(x, y) || m.IsOpaque(y*m.Width+x)
	}
	for _, id := range w.Query(component.CPosition, component.CViewshed) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)

		seen := mapset.New[gamemap.Point]()
		for _, p := range fov.Compute(pos.X, pos.Y, vs.Range, opaque) {
			if m.InBounds(p.X, p.Y) {
				seen.Put(gamemap.Point{X: p.X, Y: p.Y})
			}
		}
		vs.VisibleTiles = seen
		vs.Dirty = false
		w.Add(id, vs)

		if !w.Has(id, component.CTagPlayer) {
			continue
		}
		m.ClearVisible()
		seen.Each(func(p gamemap.Point) {
			idx := m.XYIdx(p.X, p.Y)
			m.Visible[idx] = true
			m.Revealed[idx] = true
		})
		logger.Debug("player view recomputed",
			zap.Int("x", pos.X), zap.Int("y", pos.Y), zap.Int("tiles", seen.Size()))
	}
}
