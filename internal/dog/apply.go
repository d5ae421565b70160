package dog

// ActionFold is the sole legal action when a hand has no other playable
// card; it discards the whole hand without moving any marble (§4.6, §9
// Design Notes).
var ActionFold = Action{}

// ApplyAction validates a against the current legal action set and applies
// it, mutating s in place. Mirrors the teacher's HandlePlayerFold/Call split
// (validate against current state, then mutate) collapsed into one step
// since Dog's legality set is cheap to recompute.
func (s *GameState) ApplyAction(a Action) error {
	if s.SevenRemaining > 0 && a.Equal(ActionFold) {
		// Caller cancels a split 7 in progress: restore the pre-7 snapshot
		// (including the card, still in hand) and forfeit the rest of the
		// turn, same as a stuck split 7 rolling back on its own (§4.6, §7).
		*s = *s.PreSevenSnapshot
		return s.advanceTurn()
	}

	legal := s.ListActions()
	found := false
	for _, candidate := range legal {
		if candidate.Equal(a) {
			found = true
			break
		}
	}
	if !found {
		return ErrInvalidAction
	}

	if !s.CardsExchanged {
		return s.applyExchange(a)
	}
	if a.Equal(ActionFold) {
		return s.applyFold()
	}
	if s.SevenRemaining > 0 {
		return s.applySevenStep(a)
	}
	if s.ActiveCard != nil {
		return s.applySubstituteMove(a)
	}
	if a.CardSwap != nil && a.PosFrom == nil && a.PosTo == nil {
		return s.applyJokerNomination(a)
	}
	if a.Card.Rank == Rank7 {
		return s.startSeven(a)
	}
	if a.Card.Rank == RankJack {
		return s.applyJackSwap(a)
	}
	return s.applyOrdinaryMove(a)
}

// moverSeat is the seat whose marbles are being moved this action: the
// active seat, unless the active seat's own marbles are all home, in which
// case the active seat plays the partner's marbles instead (§4.5).
func (s *GameState) moverSeat() Color {
	active := s.activePlayer()
	if active.AllMarblesHome() {
		return s.ActiveSeat.Partner()
	}
	return s.ActiveSeat
}

func (s *GameState) applyExchange(a Action) error {
	active := s.activePlayer()
	if !active.removeCard(a.Card) {
		return ErrInternalInconsistency
	}
	s.pendingExchange[s.ActiveSeat] = &a.Card

	allSet := true
	for _, c := range s.pendingExchange {
		if c == nil {
			allSet = false
			break
		}
	}
	if !allSet {
		s.ActiveSeat = (s.ActiveSeat + 1) % NumColors
		return nil
	}

	for seat := Color(0); seat < NumColors; seat++ {
		given := s.pendingExchange[seat.Partner()]
		s.Players[seat].Hand = append(s.Players[seat].Hand, *given)
	}
	for seat := range s.pendingExchange {
		s.pendingExchange[seat] = nil
	}
	s.CardsExchanged = true
	s.ActiveSeat = (s.StarterSeat + 1) % NumColors
	return nil
}

func (s *GameState) applyFold() error {
	active := s.activePlayer()
	for _, c := range active.Hand {
		s.Deck.Discard(c)
	}
	active.Hand = nil
	return s.advanceTurn()
}

// applyJokerNomination discards the physical Joker and records the
// substitute card as the active card; the same seat must act again using
// the substitute's rules before the turn advances (§4.4).
func (s *GameState) applyJokerNomination(a Action) error {
	active := s.activePlayer()
	if !active.removeCard(a.Card) {
		return ErrInternalInconsistency
	}
	s.Deck.Discard(a.Card)
	sub := *a.CardSwap
	s.ActiveCard = &sub
	return nil
}

// applySubstituteMove applies a move made with a nominated Joker's
// substitute card. The physical card was already discarded at nomination
// time, so this only performs the move and clears ActiveCard.
func (s *GameState) applySubstituteMove(a Action) error {
	if a.Card.Rank == RankJack {
		if err := s.swapMarbles(a); err != nil {
			return err
		}
	} else if a.PosFrom != nil && a.PosTo != nil {
		if err := s.moveMarble(s.moverSeat(), *a.PosFrom, *a.PosTo); err != nil {
			return err
		}
	}
	s.ActiveCard = nil
	return s.advanceTurn()
}

func (s *GameState) applyJackSwap(a Action) error {
	active := s.activePlayer()
	if !active.removeCard(a.Card) {
		return ErrInternalInconsistency
	}
	if err := s.swapMarbles(a); err != nil {
		return err
	}
	s.Deck.Discard(a.Card)
	return s.advanceTurn()
}

// swapMarbles exchanges the marbles at PosFrom and PosTo in place. Neither
// marble is captured or becomes safe; a swap is not a landing (§4.4).
func (s *GameState) swapMarbles(a Action) error {
	_, fromMarble := s.findMarble(*a.PosFrom)
	_, toMarble := s.findMarble(*a.PosTo)
	if fromMarble == nil || toMarble == nil {
		return ErrInternalInconsistency
	}
	fromMarble.Pos, toMarble.Pos = toMarble.Pos, fromMarble.Pos
	return nil
}

func (s *GameState) applyOrdinaryMove(a Action) error {
	active := s.activePlayer()
	if !active.removeCard(a.Card) {
		return ErrInternalInconsistency
	}
	if a.PosFrom != nil && a.PosTo != nil {
		if err := s.moveMarble(s.moverSeat(), *a.PosFrom, *a.PosTo); err != nil {
			return err
		}
	}
	s.Deck.Discard(a.Card)
	return s.advanceTurn()
}

// startSeven begins a split-7 sequence: it snapshots the pre-move state for
// rollback, removes the card from hand, then applies the first sub-move
// (§4.4, §4.6, §9).
func (s *GameState) startSeven(a Action) error {
	active := s.activePlayer()
	snapshot := s.clone()
	if !active.removeCard(a.Card) {
		return ErrInternalInconsistency
	}
	card := a.Card
	s.ActiveCard = &card
	s.SevenRemaining = 7
	s.PreSevenSnapshot = snapshot
	return s.applySevenStep(a)
}

// applySevenStep applies one sub-move of a split-7 in progress: every ring
// cell traversed (not just the landing cell) captures an opponent marble
// there, since a 7 moves through intervening cells (§4.4, scenario in §8).
func (s *GameState) applySevenStep(a Action) error {
	mover := s.moverSeat()
	steps := stepsBetween(mover, *a.PosFrom, *a.PosTo)
	if err := s.traverseAndMove(mover, *a.PosFrom, *a.PosTo, steps); err != nil {
		return err
	}
	s.SevenRemaining -= steps

	if s.SevenRemaining > 0 {
		if len(sevenActions(s, mover, *s.ActiveCard, s.SevenRemaining)) == 0 {
			*s = *s.PreSevenSnapshot
			return s.advanceTurn()
		}
		return nil
	}

	s.Deck.Discard(*s.ActiveCard)
	s.ActiveCard = nil
	s.SevenRemaining = 0
	s.PreSevenSnapshot = nil
	return s.advanceTurn()
}

// traverseAndMove walks a marble forward through every intermediate ring
// cell, capturing any opponent marble found along the way, then places it on
// to. Used directly by split-7 moves; ordinary moves only ever capture at the
// landing cell, which this also handles correctly since the loop's final
// iteration is the landing cell. When to diverts into the endzone, only the
// ring cells up to and including the start cell are actually traversed —
// endzone cells are never shared, so nothing past the start cell can capture.
func (s *GameState) traverseAndMove(mover Color, from, to, steps int) error {
	player := &s.Players[mover]
	m := player.marbleAt(from)
	if m == nil {
		return ErrInternalInconsistency
	}
	wasKennel := IsKennel(mover, from)

	ringSteps := steps
	lastRingCell := to
	if !IsRing(to) {
		ringSteps = forwardDistance(from, StartCell(mover))
		lastRingCell = StartCell(mover)
	}
	for step := 1; step < ringSteps; step++ {
		cell := (from + step) % RingSize
		s.captureAt(cell)
	}
	if ringSteps >= 1 {
		s.captureAt(lastRingCell)
	}

	m.Pos = to
	m.IsSafe = wasKennel && to == StartCell(mover)
	return nil
}

// moveMarble relocates one of mover's marbles from a non-7 action, applying
// a capture if the destination is occupied.
func (s *GameState) moveMarble(mover Color, from, to int) error {
	player := &s.Players[mover]
	m := player.marbleAt(from)
	if m == nil {
		return ErrInternalInconsistency
	}
	wasKennel := IsKennel(mover, from)
	if IsRing(to) {
		s.captureAt(to)
	}
	m.Pos = to
	m.IsSafe = wasKennel && to == StartCell(mover)
	return nil
}

// captureAt sends whatever marble sits on a ring cell back to its owner's
// kennel, if any (§4.3). Never called for endzone cells, which are never
// shared.
func (s *GameState) captureAt(pos int) {
	owner, marble := s.findMarble(pos)
	if marble == nil {
		return
	}
	kennel := KennelCells(owner)
	for _, cell := range kennel {
		if s.Players[owner].marbleAt(cell) == nil {
			marble.Pos = cell
			marble.IsSafe = false
			return
		}
	}
}

// advanceTurn moves play to the next seat, clears per-turn scratch state,
// detects a team finish, and triggers end-of-round handling when every hand
// is empty.
func (s *GameState) advanceTurn() error {
	s.ActiveCard = nil
	s.SevenRemaining = 0
	s.PreSevenSnapshot = nil

	if s.anyTeamFinished() {
		s.Phase = PhaseFinished
		return nil
	}

	if s.allHandsEmpty() {
		return s.startNextRound()
	}

	next := s.ActiveSeat
	for {
		next = (next + 1) % NumColors
		if len(s.Players[next].Hand) > 0 {
			break
		}
	}
	s.ActiveSeat = next
	return nil
}

func (s *GameState) allHandsEmpty() bool {
	for i := range s.Players {
		if len(s.Players[i].Hand) > 0 {
			return false
		}
	}
	return true
}
