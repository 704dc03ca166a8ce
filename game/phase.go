package game

// Phase represents a step in a turn
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRollDice
	PhaseProduction
	PhaseEvent
	PhaseAction
	PhaseReplenish
	PhaseExchange
	PhaseVictoryCheck
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseSetup:        "Setup",
	PhaseRollDice:     "Roll Dice",
	PhaseProduction:   "Production",
	PhaseEvent:        "Event",
	PhaseAction:       "Action",
	PhaseReplenish:    "Replenish",
	PhaseExchange:     "Exchange",
	PhaseVictoryCheck: "Victory Check",
	PhaseGameOver:     "Game Over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Next returns the phase that normally follows this one. The one
// exception is a Brigand Attack, which the engine runs before
// Production instead of after it.
func (p Phase) Next() Phase {
	switch p {
	case PhaseSetup:
		return PhaseRollDice
	case PhaseRollDice:
		return PhaseProduction
	case PhaseProduction:
		return PhaseEvent
	case PhaseEvent:
		return PhaseAction
	case PhaseAction:
		return PhaseReplenish
	case PhaseReplenish:
		return PhaseExchange
	case PhaseExchange:
		return PhaseVictoryCheck
	case PhaseVictoryCheck:
		return PhaseRollDice
	default:
		return PhaseGameOver
	}
}
