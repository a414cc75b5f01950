// Package game drives the turn cycle: it owns the world, the map and the
// run state, and runs every system in a fixed order once per step.
package game

import (
	"errors"
	"fmt"

	"dungeoncore/internal/component"
	"dungeoncore/internal/config"
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamelog"
	"dungeoncore/internal/gamemap"
	"dungeoncore/internal/generate"
	"dungeoncore/internal/rng"
	"dungeoncore/internal/spawner"
	"dungeoncore/internal/system"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoRooms is returned when a map has nowhere to put the player.
var ErrNoRooms = errors.New("map has no rooms")

// Simulation is the whole state of one run. It is not safe for concurrent
// use; drive it from a single goroutine.
type Simulation struct {
	world     *ecs.World
	gmap      *gamemap.Map
	player    ecs.EntityID
	playerPos gamemap.Point
	state     RunState
	log       *gamelog.Log
	logger    *zap.Logger
	runID     uuid.UUID

	passes     int
	turns      int
	playerDead bool
	decisions  []system.Decision

	// OnPlayerDeath, when set, is called each time the player's HP is
	// brought to zero by the damage phase.
	OnPlayerDeath func()
}

// New generates a dungeon from cfg, populates it and returns a simulation
// in StatePreRun.
func New(cfg config.Config, logger *zap.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	seed := cfg.SeedValue()
	r := rng.New(seed)

	gmap := generate.RoomsAndCorridors(&generate.Config{
		MapWidth:  cfg.Map.Width,
		MapHeight: cfg.Map.Height,
		MaxRooms:  cfg.Map.MaxRooms,
		MinSize:   cfg.Map.MinRoomSize,
		MaxSize:   cfg.Map.MaxRoomSize,
		Rand:      r,
	})
	if len(gmap.Rooms) == 0 {
		return nil, fmt.Errorf("generate: %w", ErrNoRooms)
	}

	w := ecs.NewWorld()
	sp := spawner.New(cfg, r)
	for _, room := range gmap.Rooms[1:] {
		sp.SpawnRoom(w, room)
	}
	px, py := gmap.Rooms[0].Center()
	player := sp.Player(w, px, py)

	s, err := Attach(w, gmap, player, logger)
	if err != nil {
		return nil, err
	}
	s.logger.Info("dungeon generated",
		zap.Int64("seed", seed),
		zap.Int("width", gmap.Width),
		zap.Int("height", gmap.Height),
		zap.Int("rooms", len(gmap.Rooms)),
		zap.Int("monsters", len(w.Query(component.CTagMonster))),
		zap.Int("items", len(w.Query(component.CTagItem))))
	return s, nil
}

// Attach wraps an already populated world and map. The map must have at
// least one room and player must have a position.
func Attach(w *ecs.World, gmap *gamemap.Map, player ecs.EntityID, logger *zap.Logger) (*Simulation, error) {
	if len(gmap.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	pc := w.Get(player, component.CPosition)
	if pc == nil {
		return nil, fmt.Errorf("player %d has no position", player)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.New()

	s := &Simulation{
		world:     w,
		gmap:      gmap,
		player:    player,
		playerPos: pc.(component.Position).Point(),
		state:     StatePreRun,
		log:       gamelog.New(),
		logger:    logger.With(zap.String("run_id", runID.String())),
		runID:     runID,
	}
	s.log.Add(gamelog.MsgWelcome)
	return s, nil
}

func (s *Simulation) World() *ecs.World        { return s.world }
func (s *Simulation) Map() *gamemap.Map        { return s.gmap }
func (s *Simulation) Player() ecs.EntityID     { return s.player }
func (s *Simulation) PlayerPos() gamemap.Point { return s.playerPos }
func (s *Simulation) RunState() RunState       { return s.state }
func (s *Simulation) Log() *gamelog.Log        { return s.log }
func (s *Simulation) RunID() uuid.UUID         { return s.runID }

// Passes counts how many times the system pipeline has run.
func (s *Simulation) Passes() int { return s.passes }

// Turn counts completed rounds (player turn followed by monster turn).
func (s *Simulation) Turn() int { return s.turns }

// PlayerDead reports whether the player has been brought to zero HP.
func (s *Simulation) PlayerDead() bool { return s.playerDead }

// Decisions returns what each monster decided in the last pipeline pass.
func (s *Simulation) Decisions() []system.Decision { return s.decisions }

// Tick advances the simulation by one step. The intent is only read while
// awaiting input; other states ignore it. Dead entities are swept at the
// end of every tick.
func (s *Simulation) Tick(intent Intent) {
	prev := s.state
	switch s.state {
	case StatePreRun:
		s.runSystems()
		s.state = StateAwaitingInput
	case StateAwaitingInput:
		if s.applyIntent(intent) {
			s.state = StatePlayerTurn
		}
	case StatePlayerTurn:
		s.runSystems()
		s.state = StateMonsterTurn
	case StateMonsterTurn:
		s.runSystems()
		s.state = StateAwaitingInput
		s.turns++
	}
	s.deleteTheDead()

	if prev != s.state {
		s.logger.Debug("state change",
			zap.Stringer("from", prev),
			zap.Stringer("to", s.state),
			zap.Int("turn", s.turns))
	}
}

// runSystems is one pass of the pipeline. The order is fixed: sight before
// decisions, occupancy after movement, combat last.
func (s *Simulation) runSystems() {
	system.Visibility(s.world, s.gmap, s.logger)
	s.decisions = system.MonsterAI(system.AIContext{
		World:     s.world,
		Map:       s.gmap,
		Player:    s.player,
		PlayerPos: s.playerPos,
		Active:    s.state == StateMonsterTurn,
		Logger:    s.logger,
	})
	system.IndexMap(s.world, s.gmap)
	system.MeleeCombat(s.world, s.log)
	system.ApplyDamage(s.world, s.playerDied)
	s.passes++
}

func (s *Simulation) deleteTheDead() {
	for _, id := range system.DeleteTheDead(s.world, s.log) {
		s.logger.Debug("entity removed", zap.Uint64("entity", uint64(id)))
	}
}

func (s *Simulation) playerDied(id ecs.EntityID) {
	s.playerDead = true
	s.log.Add(gamelog.MsgPlayerDied)
	s.logger.Info("player died", zap.Int("turn", s.turns))
	if s.OnPlayerDeath != nil {
		s.OnPlayerDeath()
	}
}

// applyIntent carries out the player's action. It reports whether the
// action used the player's turn.
func (s *Simulation) applyIntent(in Intent) bool {
	switch in.Kind {
	case IntentMove:
		res, target := system.TryMovePlayer(s.world, s.gmap, s.player, in.DX, in.DY)
		switch res {
		case system.MoveOK:
			s.playerPos = gamemap.Point{X: s.playerPos.X + in.DX, Y: s.playerPos.Y + in.DY}
		case system.MoveAttack:
			s.logger.Debug("player attacks", zap.String("target", system.NameOf(s.world, target)))
		}
		return true
	case IntentWait:
		return true
	case IntentUse:
		item := system.ConsumableAt(s.world, s.gmap, s.playerPos.X, s.playerPos.Y)
		if item == ecs.NilEntity || !system.UseConsumable(s.world, s.log, s.player, item) {
			s.log.Add(gamelog.MsgNothing)
		}
		return true
	}
	return false
}
