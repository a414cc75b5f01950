package game

// RunState tracks where the simulation is in the turn cycle.
type RunState uint8

const (
	StatePreRun RunState = iota
	StateAwaitingInput
	StatePlayerTurn
	StateMonsterTurn
)

func (s RunState) String() string {
	switch s {
	case StatePreRun:
		return "pre-run"
	case StateAwaitingInput:
		return "awaiting-input"
	case StatePlayerTurn:
		return "player-turn"
	case StateMonsterTurn:
		return "monster-turn"
	}
	return "unknown"
}

// IntentKind is the kind of action the player asked for.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentWait
	IntentUse
)

// Intent is one decoded player input. DX and DY are only read for
// IntentMove and lie in -1..1.
type Intent struct {
	Kind   IntentKind
	DX, DY int
}

// Move returns a movement intent.
func Move(dx, dy int) Intent { return Intent{Kind: IntentMove, DX: dx, DY: dy} }

// Wait returns an intent that passes the turn.
func Wait() Intent { return Intent{Kind: IntentWait} }

// Use returns an intent to use the item on the player's cell.
func Use() Intent { return Intent{Kind: IntentUse} }
