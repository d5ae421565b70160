package dog

import "github.com/vctt94/dogengine/internal/statemachine"

// Turn phase names, reported to the state machine callback for logging
// (§4.6 "added" turn state machine component).
const (
	turnWait           = "WAIT"
	turnChooseExchange = "CHOOSE_EXCHANGE"
	turnPlay           = "PLAY"
	turnSevenSplit     = "SEVEN_SPLIT"
	turnDone           = "DONE"
)

// TurnObserver classifies the current GameState into the WAIT ->
// CHOOSE_EXCHANGE -> PLAY -> SEVEN_SPLIT -> DONE lifecycle and reports each
// transition to a callback, following the teacher's Rob Pike state-function
// pattern (pkg/poker/game.go's stateNewHandDealing.. chain) applied to one
// seat's turn instead of one hand of poker. Unlike the teacher, the
// GameState here is mutated directly by ApplyAction; the observer exists
// purely to narrate that mutation for logging and UI, so every state
// function immediately re-dispatches into whichever state matches the
// state actually reached.
type TurnObserver struct {
	sm *statemachine.StateMachine[GameState]
}

// NewTurnObserver builds an observer bound to s. Call Observe after every
// ApplyAction to log the phase the engine just landed in.
func NewTurnObserver(s *GameState) *TurnObserver {
	return &TurnObserver{sm: statemachine.NewStateMachine(s, stateWait)}
}

// Observe re-classifies the bound state and dispatches through the state
// machine, invoking cb for every state entered.
func (o *TurnObserver) Observe(cb func(stateName string, event statemachine.StateEvent)) {
	// The stored state function was classified at the previous call; run it
	// silently first so the reported state is the one reached now.
	o.sm.Dispatch(nil)
	o.sm.Dispatch(cb)
}

// stateForGameState picks the StateFn matching the given state's current
// fields. It is also the implementation of each returned StateFn, since
// classification and transition are the same lookup here.
func stateForGameState(s *GameState) statemachine.StateFn[GameState] {
	switch {
	case s.Phase == PhaseFinished:
		return stateDone
	case !s.CardsExchanged:
		return stateChooseExchange
	case s.SevenRemaining > 0:
		return stateSevenSplit
	default:
		return statePlay
	}
}

func stateWait(s *GameState, cb func(string, statemachine.StateEvent)) statemachine.StateFn[GameState] {
	if cb != nil {
		cb(turnWait, statemachine.StateEntered)
	}
	return stateForGameState(s)
}

func stateChooseExchange(s *GameState, cb func(string, statemachine.StateEvent)) statemachine.StateFn[GameState] {
	if cb != nil {
		cb(turnChooseExchange, statemachine.StateEntered)
	}
	return stateForGameState(s)
}

func statePlay(s *GameState, cb func(string, statemachine.StateEvent)) statemachine.StateFn[GameState] {
	if cb != nil {
		cb(turnPlay, statemachine.StateEntered)
	}
	return stateForGameState(s)
}

func stateSevenSplit(s *GameState, cb func(string, statemachine.StateEvent)) statemachine.StateFn[GameState] {
	if cb != nil {
		cb(turnSevenSplit, statemachine.StateEntered)
	}
	return stateForGameState(s)
}

func stateDone(s *GameState, cb func(string, statemachine.StateEvent)) statemachine.StateFn[GameState] {
	if cb != nil {
		cb(turnDone, statemachine.StateEntered)
	}
	return stateDone
}
