package system

import (
	"dungeoncore/internal/component"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamemap"
	"dungeoncore/internal/pathfind"

	"go.uber.org/zap"
)

// MeleeRange is the distance below which a monster attacks instead of moving.
const MeleeRange = 1.5

func inMeleeRange(dist float64) bool { return dist < MeleeRange }

// DecisionKind is what a monster chose to do this turn.
type DecisionKind uint8

const (
	DecisionIdle  DecisionKind = iota // player not in view
	DecisionMelee                     // adjacent, attack queued
	DecisionPath                      // took one step toward the player
	DecisionShout                     // sees the player but has no step to take
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionMelee:
		return "melee"
	case DecisionPath:
		return "path"
	case DecisionShout:
		return "shout"
	default:
		return "idle"
	}
}

// Decision records one monster's choice. From and To are equal unless the
// monster moved.
type Decision struct {
	Monster ecs.EntityID
	Kind    DecisionKind
	From    gamemap.Point
	To      gamemap.Point
}

// AIContext is everything the monster AI reads and writes during one turn.
type AIContext struct {
	World     *ecs.World
	Map       *gamemap.Map
	Player    ecs.EntityID
	PlayerPos gamemap.Point
	// Active is true only during the monsters' turn.
	Active bool
	Logger *zap.Logger
}

// MonsterAI lets every monster act once, in creation order, and returns
// what each one decided. Nothing happens unless ctx.Active is set.
//
// Two monsters can step onto the same cell in one turn: a mover marks its
// new cell blocked, but an A* search already finished by a later monster is
// not revisited.
func MonsterAI(ctx AIContext) []Decision {
	if !ctx.Active {
		return nil
	}
	w, m := ctx.World, ctx.Map
	logger := ctx.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var decisions []Decision
	for _, id := range w.Query(component.CTagMonster, component.CPosition, component.CViewshed) {
		pos := w.Get(id, component.CPosition).(component.Position)
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		here := pos.Point()
		d := Decision{Monster: id, Kind: DecisionIdle, From: here, To: here}

		switch {
		case inMeleeRange(here.DistanceTo(ctx.PlayerPos)):
			w.Add(id, component.WantsToMelee{Target: ctx.Player})
			d.Kind = DecisionMelee

		case vs.CanSee(ctx.PlayerPos):
			path := pathfind.AStar(
				m.XYIdx(pos.X, pos.Y),
				m.XYIdx(ctx.PlayerPos.X, ctx.PlayerPos.Y),
				m,
			)
			if !path.Success || len(path.Steps) < 2 {
				d.Kind = DecisionShout
				logger.Debug("monster shouts",
					zap.String("name", NameOf(w, id)),
					zap.Bool("path_found", path.Success))
				break
			}
			m.Blocked[m.XYIdx(pos.X, pos.Y)] = false
			next := m.IdxPoint(path.Steps[1])
			m.Blocked[path.Steps[1]] = true
			w.Add(id, component.Position{X: next.X, Y: next.Y})
			vs.Dirty = true
			w.Add(id, vs)
			d.Kind = DecisionPath
			d.To = next
		}
		decisions = append(decisions, d)
	}
	return decisions
}
