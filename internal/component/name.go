package component

import "dungeoncore/internal/ecs"

const CName ecs.ComponentType = 5

type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }
