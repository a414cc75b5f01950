package system

import (
	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamemap"
)

// MoveResult describes the outcome of a TryMovePlayer call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, blocking entity or out-of-bounds
	MoveAttack                    // bumped something that can fight
)

// TryMovePlayer attempts to move id by (dx, dy). Bumping into an entity
// with combat stats queues a melee attack on it instead of moving. A
// successful move marks the mover's viewshed dirty.
// Returns the outcome and, for MoveAttack, the target entity.
func TryMovePlayer(w *ecs.World, m *gamemap.Map, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy
	if !m.InBounds(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}
	dest := m.XYIdx(nx, ny)

	for _, other := range m.TileContent[dest] {
		if other == id || !w.Has(other, component.CCombatStats) {
			continue
		}
		w.Add(id, component.WantsToMelee{Target: other})
		return MoveAttack, other
	}

	if m.Blocked[dest] {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	if c := w.Get(id, component.CViewshed); c != nil {
		vs := c.(component.Viewshed)
		vs.Dirty = true
		w.Add(id, vs)
	}
	return MoveOK, ecs.NilEntity
}
