package system

import (
	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamemap"
)

// arena returns a w×h map whose border is wall and everything else floor.
func arena(w, h int) *gamemap.Map {
	m := gamemap.New(w, h)
	m.ApplyRoom(gamemap.NewRect(0, 0, w-2, h-2))
	m.PopulateBlocked()
	return m
}

func spawnPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.Name{Name: "Player"})
	w.Add(id, component.NewViewshed(8))
	w.Add(id, component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5})
	return id
}

func spawnMonster(w *ecs.World, name string, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.TagMonster{})
	w.Add(id, component.TagBlocking{})
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.NewViewshed(8))
	w.Add(id, component.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 4})
	return id
}

func posOf(w *ecs.World, id ecs.EntityID) gamemap.Point {
	return w.Get(id, component.CPosition).(component.Position).Point()
}

func statsOf(w *ecs.World, id ecs.EntityID) component.CombatStats {
	return w.Get(id, component.CCombatStats).(component.CombatStats)
}
