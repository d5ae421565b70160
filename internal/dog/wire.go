package dog

// WireState is the masked, JSON-serializable view of a GameState handed to
// one viewer, grounded in the teacher's CardJSON/GetStateSnapshot wire
// types (pkg/poker/deck.go, pkg/poker/game.go). Field names follow §6.
type WireState struct {
	Phase             string        `json:"phase"`
	CntRound          int           `json:"cnt_round"`
	BoolCardExchanged bool          `json:"bool_card_exchanged"`
	IdxPlayerStarted  int           `json:"idx_player_started"`
	IdxPlayerActive   int           `json:"idx_player_active"`
	ListPlayer        [4]WirePlayer `json:"list_player"`
	ListCardDraw      int           `json:"list_card_draw"`
	ListCardDiscard   []Card        `json:"list_card_discard"`
	CardActive        *Card         `json:"card_active"`
}

// WirePlayer is one seat's masked view: the viewer's own hand is revealed,
// every other seat's hand is replaced by face-down placeholders of the
// same length so hand size (and therefore who has already played) stays
// observable without revealing content (§6).
type WirePlayer struct {
	Name       string        `json:"name"`
	ListCard   []*Card       `json:"list_card"`
	ListMarble [4]WireMarble `json:"list_marble"`
	TeamMate   int           `json:"teamMate"`
}

type WireMarble struct {
	Pos    int  `json:"pos"`
	IsSafe bool `json:"is_save"`
}

// Wire builds the masked view of s for viewerSeat: viewerSeat's own hand is
// revealed in full; every other seat's hand is reported as a slice of nil
// placeholders so only its length is visible. The draw pile is reported by
// size only, never by content (§6).
func (s *GameState) Wire(viewerSeat Color) WireState {
	w := WireState{
		Phase:             s.Phase.String(),
		CntRound:          s.RoundNo,
		BoolCardExchanged: s.CardsExchanged,
		IdxPlayerStarted:  int(s.StarterSeat),
		IdxPlayerActive:   int(s.ActiveSeat),
		ListCardDraw:      s.Deck.Size(),
		ListCardDiscard:   append([]Card(nil), s.Deck.discard...),
		CardActive:        s.ActiveCard,
	}
	for seat := Color(0); seat < NumColors; seat++ {
		p := &s.Players[seat]
		wp := WirePlayer{Name: seat.String(), TeamMate: int(seat.Partner())}
		if seat == viewerSeat {
			for _, c := range p.Hand {
				card := c
				wp.ListCard = append(wp.ListCard, &card)
			}
		} else {
			wp.ListCard = make([]*Card, len(p.Hand))
		}
		for i, m := range p.Marbles {
			wp.ListMarble[i] = WireMarble{Pos: m.Pos, IsSafe: m.IsSafe}
		}
		w.ListPlayer[seat] = wp
	}
	return w
}
