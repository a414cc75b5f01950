package system

import (
	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamemap"
)

// IndexMap rebuilds Blocked and TileContent from scratch: walls block,
// blocking entities block their cell, and every positioned entity is
// listed in the content of the cell it stands on.
func IndexMap(w *ecs.World, m *gamemap.Map) {
	m.PopulateBlocked()
	m.ClearContentIndex()
	for _, id := range w.Query(component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		idx := m.XYIdx(pos.X, pos.Y)
		if w.Has(id, component.CTagBlocking) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], id)
	}
}
