package component

import "dungeoncore/internal/ecs"

const CConsumable ecs.ComponentType = 12

// Consumable is a single-use item. Using it heals the user by HealAmount.
type Consumable struct {
	HealAmount int
}

func (Consumable) Type() ecs.ComponentType { return CConsumable }
