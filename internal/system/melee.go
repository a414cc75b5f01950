package system

import (
	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamelog"
)

// NameOf returns the display name of id, or "something" if it has none.
func NameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CName); c != nil {
		return c.(component.Name).Name
	}
	return "something"
}

// MeleeCombat resolves every queued melee attack in attacker creation
// order. Damage is the attacker's power minus the target's defense with no
// lower bound; it is queued on the target, not applied. All melee intents
// are gone afterwards.
func MeleeCombat(w *ecs.World, log *gamelog.Log) {
	for _, attacker := range w.Query(component.CWantsToMelee, component.CCombatStats) {
		stats := w.Get(attacker, component.CCombatStats).(component.CombatStats)
		if stats.HP <= 0 {
			continue
		}
		target := w.Get(attacker, component.CWantsToMelee).(component.WantsToMelee).Target
		tc := w.Get(target, component.CCombatStats)
		if tc == nil {
			continue
		}
		targetStats := tc.(component.CombatStats)
		if targetStats.HP <= 0 {
			continue
		}

		damage := stats.Power - targetStats.Defense
		component.AddDamage(w, target, damage)
		if damage <= 0 {
			log.Add(gamelog.MsgCannotHurt, NameOf(w, attacker), NameOf(w, target))
		} else {
			log.Add(gamelog.MsgHits, NameOf(w, attacker), NameOf(w, target), damage)
		}
	}
	for _, id := range w.Query(component.CWantsToMelee) {
		w.Remove(id, component.CWantsToMelee)
	}
}
