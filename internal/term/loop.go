package term

import (
	"fmt"

	"dungeoncore/internal/game"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// UI drives a simulation from a tcell screen.
type UI struct {
	screen   tcell.Screen
	renderer *Renderer
	sim      *game.Simulation
	logger   *zap.Logger
}

func NewUI(screen tcell.Screen, sim *game.Simulation, logWindow int, logger *zap.Logger) *UI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UI{
		screen:   screen,
		renderer: NewRenderer(screen, logWindow),
		sim:      sim,
		logger:   logger,
	}
}

// Settle ticks the simulation until it waits for the player again.
func (u *UI) Settle() {
	for u.sim.RunState() != game.StateAwaitingInput {
		u.sim.Tick(game.Intent{})
	}
}

// HandleKey applies one key press. It returns false when the player asked
// to quit. Once the player is dead only quitting is possible.
func (u *UI) HandleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	if action == ActionQuit {
		return false
	}
	if u.sim.PlayerDead() {
		return true
	}
	intent := actionToIntent(action)
	if intent.Kind == game.IntentNone {
		return true
	}
	u.sim.Tick(intent)
	u.Settle()
	return true
}

// Run is the main loop. It returns when the player quits.
func (u *UI) Run() {
	u.Settle()
	for {
		u.renderer.Draw(u.sim)

		switch ev := u.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			u.renderer.Resize()
			u.screen.Sync()
		case *tcell.EventKey:
			if !u.HandleKey(ev) {
				u.logger.Info("player quit", zap.Int("turn", u.sim.Turn()))
				return
			}
		}
	}
}

// OpenScreen creates and initialises the terminal screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	return screen, nil
}
