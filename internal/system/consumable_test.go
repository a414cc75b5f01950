package system

import (
	"testing"

	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamelog"

	"github.com/stretchr/testify/assert"
)

func spawnPotion(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.TagItem{})
	w.Add(id, component.Name{Name: "Health Potion"})
	w.Add(id, component.Consumable{HealAmount: 8})
	return id
}

func TestConsumableAtFindsItemOnCell(t *testing.T) {
	m := arena(8, 8)
	w := ecs.NewWorld()
	spawnPlayer(w, 2, 2)
	potion := spawnPotion(w, 2, 2)
	IndexMap(w, m)

	assert.Equal(t, potion, ConsumableAt(w, m, 2, 2))
	assert.Equal(t, ecs.NilEntity, ConsumableAt(w, m, 3, 3))
}

func TestUseConsumableHealsUpToMax(t *testing.T) {
	w := ecs.NewWorld()
	log := gamelog.New()
	player := spawnPlayer(w, 2, 2)
	w.Add(player, component.CombatStats{MaxHP: 30, HP: 25, Defense: 2, Power: 5})
	potion := spawnPotion(w, 2, 2)

	assert.True(t, UseConsumable(w, log, player, potion))
	assert.Equal(t, 30, statsOf(w, player).HP)
	assert.True(t, w.MarkedDead(potion))
	assert.Equal(t, []string{"Player drinks the Health Potion, healing 5 hp."}, log.Entries())

	assert.False(t, UseConsumable(w, log, player, potion), "a potion is drunk once")
	w.Sweep()
	assert.False(t, w.Alive(potion))
}

func TestUseConsumableRejectsNonConsumables(t *testing.T) {
	w := ecs.NewWorld()
	log := gamelog.New()
	player := spawnPlayer(w, 2, 2)
	orc := spawnMonster(w, "Orc", 2, 3)

	assert.False(t, UseConsumable(w, log, player, orc))
	assert.False(t, w.MarkedDead(orc))
	assert.Zero(t, log.Len())
}
