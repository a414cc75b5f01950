package system

import (
	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamelog"
)

// ApplyDamage subtracts each entity's summed pending damage from its HP,
// clamps HP into [0, MaxHP] and clears the pending list. Entities that end
// at 0 HP are marked dead; the player is never marked and onPlayerDeath is
// called instead.
func ApplyDamage(w *ecs.World, onPlayerDeath func(ecs.EntityID)) {
	for _, id := range w.Query(component.CSufferDamage) {
		pending := w.Get(id, component.CSufferDamage).(component.SufferDamage)
		w.Remove(id, component.CSufferDamage)

		c := w.Get(id, component.CCombatStats)
		if c == nil {
			continue
		}
		stats := c.(component.CombatStats)
		total := 0
		for _, amount := range pending.Amounts {
			total += amount
		}
		stats.HP = min(max(stats.HP-total, 0), stats.MaxHP)
		w.Add(id, stats)

		if stats.HP > 0 {
			continue
		}
		if w.Has(id, component.CTagPlayer) {
			if onPlayerDeath != nil {
				onPlayerDeath(id)
			}
			continue
		}
		w.MarkDead(id)
	}
}

// DeleteTheDead announces every entity with combat stats that is marked
// dead, then destroys everything marked. It returns the destroyed IDs.
func DeleteTheDead(w *ecs.World, log *gamelog.Log) []ecs.EntityID {
	for _, id := range w.Query(component.CCombatStats) {
		if w.MarkedDead(id) {
			log.Add(gamelog.MsgDead, NameOf(w, id))
		}
	}
	return w.Sweep()
}
