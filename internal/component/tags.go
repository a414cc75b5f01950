package component

import "dungeoncore/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 6
	CTagMonster  ecs.ComponentType = 7
	CTagBlocking ecs.ComponentType = 8
	CTagItem     ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagMonster marks an entity driven by the monster AI.
type TagMonster struct{}

func (TagMonster) Type() ecs.ComponentType { return CTagMonster }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }

// TagItem marks a pickup item on the map.
type TagItem struct{}

func (TagItem) Type() ecs.ComponentType { return CTagItem }
