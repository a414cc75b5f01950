package component

import "dungeoncore/internal/ecs"

const (
	CWantsToMelee ecs.ComponentType = 10
	CSufferDamage ecs.ComponentType = 11
)

// WantsToMelee is a pending melee attack. An attacker holds at most one;
// adding another replaces it.
type WantsToMelee struct {
	Target ecs.EntityID
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }

// SufferDamage accumulates raw damage for one entity until the damage
// phase applies it.
type SufferDamage struct {
	Amounts []int
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }

// AddDamage appends amount to victim's pending damage.
func AddDamage(w *ecs.World, victim ecs.EntityID, amount int) {
	var pending SufferDamage
	if c := w.Get(victim, CSufferDamage); c != nil {
		pending = c.(SufferDamage)
	}
	pending.Amounts = append(pending.Amounts, amount)
	w.Add(victim, pending)
}
