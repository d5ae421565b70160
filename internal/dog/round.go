package dog

// handSize returns the number of cards dealt per seat for a 1-indexed round
// number, following the repeating 6,5,4,3,2 schedule (§4.2).
func handSize(round int) int {
	return 6 - ((round - 1) % 5)
}

// dealRound deals a fresh hand to every seat for the given round number,
// drawing from the shared deck (§4.2).
func (s *GameState) dealRound(round int) error {
	n := handSize(round)
	for seat := Color(0); seat < NumColors; seat++ {
		cards, err := s.Deck.DrawN(n)
		if err != nil {
			return err
		}
		s.Players[seat].Hand = cards
	}
	return nil
}

// startNextRound rotates the starter seat, redeals, and resets the
// exchange flag for the next round (§4.2: "starter_seat+1, active_seat =
// starter_seat+1, cards_exchanged=false").
func (s *GameState) startNextRound() error {
	s.RoundNo++
	s.StarterSeat = (s.StarterSeat + 1) % NumColors
	s.ActiveSeat = (s.StarterSeat + 1) % NumColors
	s.CardsExchanged = false
	for i := range s.pendingExchange {
		s.pendingExchange[i] = nil
	}
	return s.dealRound(s.RoundNo)
}
