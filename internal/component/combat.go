package component

import "dungeoncore/internal/ecs"

const CCombatStats ecs.ComponentType = 4

type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }
