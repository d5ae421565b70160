// Package dog implements the pure rules engine for the four-player,
// partner-based board game Dog: deck, board geometry, move generation,
// action application, and the masked wire view. Grounded throughout on the
// teacher's pkg/poker package (deck, game, player, state machine),
// generalized from poker's betting-round rules to Dog's marble-racing
// rules.
package dog

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/decred/slog"

	"github.com/vctt94/dogengine/internal/statemachine"
)

// GameConfig configures a new Engine, mirroring the teacher's
// poker.GameConfig (pkg/poker/game.go): a seed for determinism, and a
// required logger.
type GameConfig struct {
	Seed int64
	Log  slog.Logger
}

// Engine is the concurrency-safe wrapper around a GameState, mirroring the
// teacher's Game type: a mutex-guarded struct whose exported methods lock
// and delegate to the lock-free GameState methods (§5).
type Engine struct {
	mu    sync.RWMutex
	state *GameState
	log   slog.Logger
	obs   *TurnObserver
}

// NewGame creates a fresh Engine dealing the first round to starter seat
// Blue (§3, §4.2).
func NewGame(cfg GameConfig) (*Engine, error) {
	if cfg.Log == nil {
		return nil, fmt.Errorf("dog: log is required")
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &GameState{
		Phase:       PhaseRunning,
		RoundNo:     1,
		StarterSeat: Blue,
		ActiveSeat:  Blue,
		Deck:        NewDeck(rng),
	}
	for c := Color(0); c < NumColors; c++ {
		s.Players[c] = newStartingPlayer(c)
	}
	if err := s.dealRound(1); err != nil {
		return nil, err
	}

	e := &Engine{
		state: s,
		log:   cfg.Log,
		obs:   NewTurnObserver(s),
	}
	e.log.Debugf("new game: round=%d starter=%s", s.RoundNo, s.StarterSeat)
	return e, nil
}

// GetState returns a deep copy of the full, unmasked state (§5).
func (e *Engine) GetState() *GameState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.clone()
}

// SetState replaces the engine's state with a deep copy of s, for
// persistence/restore flows (§5).
func (e *Engine) SetState(s *GameState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = s.clone()
	e.obs = NewTurnObserver(e.state)
}

// PlayerView returns the masked wire view of the current state for
// viewerSeat (§5, §6).
func (e *Engine) PlayerView(viewerSeat Color) WireState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Wire(viewerSeat)
}

// ListActions returns every legal action for the active seat (§4.1, §5).
func (e *Engine) ListActions() []Action {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.ListActions()
}

// ApplyAction validates and applies a, advancing the game (§5).
func (e *Engine) ApplyAction(a Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	beforeSeat := e.state.ActiveSeat
	if err := e.state.ApplyAction(a); err != nil {
		e.log.Debugf("apply action rejected: %v", err)
		return err
	}

	e.obs.Observe(func(stateName string, event statemachine.StateEvent) {
		e.log.Tracef("turn state: %s", stateName)
	})
	e.log.Debugf("applied action card=%s seat=%s -> active=%s phase=%s",
		a.Card, beforeSeat, e.state.ActiveSeat, e.state.Phase)
	return nil
}
