package dog

// ListActions enumerates every legal action for the active seat (§4.1,
// §4.5). The active seat always supplies the card; the marbles moved belong
// to the active seat, unless all four of the active seat's own marbles are
// already home, in which case every generated move targets the partner's
// marbles instead (§4.5 "all-four-finished" rule).
func (s *GameState) ListActions() []Action {
	active := s.activePlayer()

	if !s.CardsExchanged {
		return exchangeActions(active)
	}

	mover := s.ActiveSeat
	if active.AllMarblesHome() {
		mover = s.ActiveSeat.Partner()
	}

	if s.ActiveCard != nil && s.ActiveCard.Rank == Rank7 {
		return sevenActions(s, mover, *s.ActiveCard, s.SevenRemaining)
	}
	if s.ActiveCard != nil {
		// Mid Joker-nomination sequence: only the substitute's own moves
		// are offered, not the rest of the hand (§4.4 Joker row).
		return actionsForCard(s, mover, *s.ActiveCard, true)
	}

	var actions []Action
	for _, card := range active.Hand {
		actions = append(actions, actionsForCard(s, mover, card, false)...)
	}
	actions = dedupActions(actions)
	if len(actions) == 0 && len(active.Hand) > 0 {
		// No card in hand can do anything at all: the only legal action is
		// to fold the whole hand (§4.6, §9 Design Notes).
		return []Action{ActionFold}
	}
	return actions
}

// exchangeActions returns the one-per-card "pass to partner" actions offered
// before a round's card exchange has happened (§4.5).
func exchangeActions(p *PlayerState) []Action {
	actions := make([]Action, 0, len(p.Hand))
	for _, c := range p.Hand {
		actions = append(actions, Action{Card: c})
	}
	return actions
}

// actionsForCard generates every action family for a single card, in the
// order fixed by §4.5: start-unlock, ring move, endzone entry, intra-endzone
// move, Jack swap, Joker nominations, 7-split. substitute is true while
// replaying a nominated Joker card, in which case re-nominating or
// re-unlocking via the joker path makes no sense.
func actionsForCard(s *GameState, mover Color, card Card, substitute bool) []Action {
	if card.Rank == Rank7 {
		return sevenActions(s, mover, card, 7)
	}
	if card.Rank == RankJack {
		return jackActions(s, mover, card)
	}
	if card.Rank == RankJoker && !substitute {
		actions := kennelExitActions(s, mover, card)
		actions = append(actions, jokerNominationActions(s, mover, card)...)
		return actions
	}

	var actions []Action
	if card.IsUnlock() {
		actions = append(actions, kennelExitActions(s, mover, card)...)
	}
	steps, err := forwardSteps(card.Rank)
	if err != nil {
		return actions
	}
	ring, endzone := ringAndEndzoneActions(s, mover, card, steps)
	actions = append(actions, ring...)
	actions = append(actions, endzone...)
	actions = append(actions, intraEndzoneActions(s, mover, card, steps)...)
	return actions
}

// kennelExitActions offers moving one kennel marble to the start cell,
// provided the start cell is not already held by the mover's own safe
// marble (§4.3).
func kennelExitActions(s *GameState, mover Color, card Card) []Action {
	player := &s.Players[mover]
	start := StartCell(mover)
	if m := player.marbleAt(start); m != nil && m.IsSafe {
		return nil
	}
	kennel := KennelCells(mover)
	for _, cell := range kennel {
		if m := player.marbleAt(cell); m != nil {
			return []Action{{Card: card, PosFrom: intPtr(cell), PosTo: intPtr(start)}}
		}
	}
	return nil
}

// ringAndEndzoneActions enumerates forward moves for every marble of mover
// that sits on the ring, for every step count the card offers. Moves whose
// path crosses a safe marble are excluded (blockade, §4.3); landing on the
// mover's own non-safe marble is excluded (§4.4); landing on an opponent's
// non-safe marble is a capture and is offered normally.
func ringAndEndzoneActions(s *GameState, mover Color, card Card, steps []int) (ring, endzone []Action) {
	player := &s.Players[mover]
	for i := range player.Marbles {
		m := player.Marbles[i]
		if !IsRing(m.Pos) {
			continue
		}
		for _, step := range steps {
			for _, dest := range forwardDestinations(mover, m.Pos, step) {
				if dest.enteredEndzone {
					if pathClear(s, m.Pos, StartCell(mover)) && endzoneCellFree(s, mover, dest.pos) {
						endzone = append(endzone, Action{Card: card, PosFrom: intPtr(m.Pos), PosTo: intPtr(dest.pos)})
					}
					continue
				}
				if !pathClear(s, m.Pos, dest.pos) {
					continue
				}
				if blockedByOwn(player, dest.pos) {
					continue
				}
				ring = append(ring, Action{Card: card, PosFrom: intPtr(m.Pos), PosTo: intPtr(dest.pos)})
			}
		}
	}
	return ring, endzone
}

// intraEndzoneActions offers forward-only moves for marbles already inside
// the mover's endzone (§4.3: endzone marbles only move forward, never exit).
func intraEndzoneActions(s *GameState, mover Color, card Card, steps []int) []Action {
	player := &s.Players[mover]
	ez := EndzoneCells(mover)
	var actions []Action
	for i := range player.Marbles {
		pos := player.Marbles[i].Pos
		if !IsEndzone(mover, pos) {
			continue
		}
		idx := indexOf(ez, pos)
		for _, step := range steps {
			targetIdx := idx + step
			if targetIdx >= len(ez) {
				continue
			}
			target := ez[targetIdx]
			if endzoneCellFree(s, mover, target) {
				actions = append(actions, Action{Card: card, PosFrom: intPtr(pos), PosTo: intPtr(target)})
			}
		}
	}
	return actions
}

// jackActions swaps one mover marble with any opponent marble, falling back
// to swapping two of the mover's own marbles only when no opponent marble is
// swappable (§4.4, §9 Design Notes).
func jackActions(s *GameState, mover Color, card Card) []Action {
	player := &s.Players[mover]

	var ownRing []int
	for _, m := range player.Marbles {
		if IsRing(m.Pos) && !m.IsSafe {
			ownRing = append(ownRing, m.Pos)
		}
	}

	var opponentRing []int
	for c := Color(0); c < NumColors; c++ {
		if c == mover {
			continue
		}
		for _, m := range s.Players[c].Marbles {
			if IsRing(m.Pos) && !m.IsSafe {
				opponentRing = append(opponentRing, m.Pos)
			}
		}
	}

	var actions []Action
	if len(opponentRing) > 0 {
		for _, from := range ownRing {
			for _, to := range opponentRing {
				actions = append(actions, Action{Card: card, PosFrom: intPtr(from), PosTo: intPtr(to)})
			}
		}
		return actions
	}

	for i := 0; i < len(ownRing); i++ {
		for j := i + 1; j < len(ownRing); j++ {
			actions = append(actions,
				Action{Card: card, PosFrom: intPtr(ownRing[i]), PosTo: intPtr(ownRing[j])},
				Action{Card: card, PosFrom: intPtr(ownRing[j]), PosTo: intPtr(ownRing[i])},
			)
		}
	}
	return actions
}

// jokerNominationActions offers nominating the Joker as any concrete card;
// the nomination itself is the recorded action (§4.4).
func jokerNominationActions(s *GameState, mover Color, card Card) []Action {
	actions := make([]Action, 0, 52)
	for _, substitute := range nominableCards() {
		sub := substitute
		actions = append(actions, Action{Card: card, CardSwap: &sub})
	}
	return actions
}

// sevenActions enumerates every way to spend 1..remaining of a 7's steps on
// one marble in a single sub-action (§4.4, §4.6), offering the same
// ring-or-endzone-diversion choice as an ordinary forward move
// (forwardDestinations): a sub-step may finish a marble into the endzone, but
// never overshoot past its last endzone cell. Traversal captures are applied
// at ApplyAction time; here we only filter out sub-actions whose ring path
// crosses a safe marble (blockade, §4.3) or the mover's own non-safe marble,
// since a shorter split always remains available (§4.4, §9).
func sevenActions(s *GameState, mover Color, card Card, remaining int) []Action {
	if remaining <= 0 {
		return nil
	}
	player := &s.Players[mover]
	var actions []Action
	for i := range player.Marbles {
		m := player.Marbles[i]
		if !IsRing(m.Pos) {
			continue
		}
		for step := 1; step <= remaining; step++ {
			for _, dest := range forwardDestinations(mover, m.Pos, step) {
				if dest.enteredEndzone {
					start := StartCell(mover)
					if !pathHasSafeMarble(s, m.Pos, start) && !pathHasOwnMarble(player, m.Pos, start, i) &&
						endzoneCellFree(s, mover, dest.pos) {
						actions = append(actions, Action{Card: card, PosFrom: intPtr(m.Pos), PosTo: intPtr(dest.pos)})
					}
					continue
				}
				if pathHasSafeMarble(s, m.Pos, dest.pos) {
					continue
				}
				if pathHasOwnMarble(player, m.Pos, dest.pos, i) {
					continue
				}
				actions = append(actions, Action{Card: card, PosFrom: intPtr(m.Pos), PosTo: intPtr(dest.pos)})
			}
		}
	}
	return actions
}

func indexOf(arr [4]int, v int) int {
	for i, x := range arr {
		if x == v {
			return i
		}
	}
	return -1
}

func blockedByOwn(player *PlayerState, pos int) bool {
	for _, m := range player.Marbles {
		if m.Pos == pos {
			return true
		}
	}
	return false
}

func endzoneCellFree(s *GameState, mover Color, pos int) bool {
	return s.Players[mover].marbleAt(pos) == nil
}

// pathClear reports that no safe marble sits on any cell strictly between
// from and to (exclusive of from, inclusive of to), and that to itself is
// not a safe marble (§4.3 blockade).
func pathClear(s *GameState, from, to int) bool {
	return !pathHasSafeMarble(s, from, to)
}

func pathHasSafeMarble(s *GameState, from, to int) bool {
	steps := forwardDistance(from, to)
	for step := 1; step <= steps; step++ {
		cell := (from + step) % RingSize
		if _, m := s.findMarble(cell); m != nil && m.IsSafe {
			return true
		}
	}
	return false
}

// pathHasOwnMarble reports whether any cell strictly between from and to
// (inclusive of to) holds another of the mover's own marbles, skipping the
// mover's own marble at index `skip` (the one being moved).
func pathHasOwnMarble(player *PlayerState, from, to, skip int) bool {
	steps := forwardDistance(from, to)
	for step := 1; step <= steps; step++ {
		cell := (from + step) % RingSize
		for i, m := range player.Marbles {
			if i == skip {
				continue
			}
			if m.Pos == cell {
				return true
			}
		}
	}
	return false
}
