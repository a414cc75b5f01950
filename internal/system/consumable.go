package system

import (
	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamelog"
	"dungeoncore/internal/gamemap"
)

// ConsumableAt returns the first consumable listed on the cell at (x, y),
// or ecs.NilEntity.
func ConsumableAt(w *ecs.World, m *gamemap.Map, x, y int) ecs.EntityID {
	for _, id := range m.TileContent[m.XYIdx(x, y)] {
		if w.Has(id, component.CConsumable) {
			return id
		}
	}
	return ecs.NilEntity
}

// UseConsumable applies item to user and marks the item dead. Healing never
// raises HP above MaxHP. It reports whether anything was consumed.
func UseConsumable(w *ecs.World, log *gamelog.Log, user, item ecs.EntityID) bool {
	c := w.Get(item, component.CConsumable)
	if c == nil || w.MarkedDead(item) {
		return false
	}
	heal := c.(component.Consumable).HealAmount
	if sc := w.Get(user, component.CCombatStats); sc != nil {
		stats := sc.(component.CombatStats)
		before := stats.HP
		stats.HP = min(stats.HP+heal, stats.MaxHP)
		w.Add(user, stats)
		heal = stats.HP - before
	}
	log.Add(gamelog.MsgDrinks, NameOf(w, user), NameOf(w, item), heal)
	w.MarkDead(item)
	return true
}
