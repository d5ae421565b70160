package dog

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// dumpOnFailure prints a full recursive dump of the game state if the test
// it's registered in fails, since testify's default output truncates
// nested slices/pointers like Marbles and Hand.
func dumpOnFailure(t *testing.T, s *GameState) {
	t.Helper()
	t.Cleanup(func() {
		if t.Failed() {
			t.Log(spew.Sdump(s))
		}
	})
}

// newTestState builds a running, post-exchange game with empty hands so
// each test can deal out exactly the cards its scenario needs.
func newTestState() *GameState {
	s := &GameState{
		Phase:          PhaseRunning,
		RoundNo:        1,
		StarterSeat:    Blue,
		ActiveSeat:     Blue,
		CardsExchanged: true,
		Deck:           NewDeck(testRNG()),
	}
	for c := Color(0); c < NumColors; c++ {
		s.Players[c] = newStartingPlayer(c)
	}
	return s
}

// fillOtherHands gives every non-active seat one harmless card so
// allHandsEmpty never fires mid-scenario and masks the assertion under
// test with an unrelated round rollover.
func fillOtherHands(s *GameState, filler Card) {
	for c := Color(0); c < NumColors; c++ {
		if c != s.ActiveSeat {
			s.Players[c].Hand = []Card{filler}
		}
	}
}

func TestKennelExitWithKing(t *testing.T) {
	s := newTestState()
	king := Card{Suit: Spades, Rank: RankKing}
	s.Players[Blue].Hand = []Card{king}
	fillOtherHands(s, Card{Suit: Hearts, Rank: Rank2})

	actions := s.ListActions()
	require.Len(t, actions, 1)
	require.Equal(t, StartCell(Blue), *actions[0].PosTo)

	require.NoError(t, s.ApplyAction(actions[0]))

	m := s.Players[Blue].marbleAt(StartCell(Blue))
	require.NotNil(t, m)
	require.True(t, m.IsSafe)
	require.Equal(t, Green, s.ActiveSeat)
	require.Empty(t, s.Players[Blue].Hand)
}

func TestKennelExitBlockedBySafeMarbleAtStart(t *testing.T) {
	s := newTestState()
	// Marbles[1..3] stay in the kennel (from newStartingPlayer); marble 0
	// occupies the start cell as a safe blockade, so no kennel marble can
	// unlock onto it even though a King is in hand.
	s.Players[Blue].Marbles[0] = Marble{Pos: StartCell(Blue), IsSafe: true}
	king := Card{Suit: Spades, Rank: RankKing}
	s.Players[Blue].Hand = []Card{king}
	fillOtherHands(s, Card{Suit: Hearts, Rank: Rank2})

	kennel := KennelCells(Blue)
	for _, a := range s.ListActions() {
		if a.PosFrom == nil {
			continue
		}
		for _, cell := range kennel {
			require.NotEqual(t, cell, *a.PosFrom, "no marble may leave the kennel onto a safe-occupied start cell")
		}
	}
}

func TestAceOffersBothStepCounts(t *testing.T) {
	s := newTestState()
	ace := Card{Suit: Clubs, Rank: RankAce}
	s.Players[Blue].Hand = []Card{ace}
	s.Players[Blue].Marbles[0] = Marble{Pos: 5}

	actions := s.ListActions()
	var steps []int
	for _, a := range actions {
		if a.PosFrom != nil && *a.PosFrom == 5 {
			steps = append(steps, *a.PosTo-5)
		}
	}
	require.Contains(t, steps, 1)
	require.Contains(t, steps, 11)
}

func TestJackPrefersOpponentSwap(t *testing.T) {
	s := newTestState()
	jack := Card{Suit: Diamonds, Rank: RankJack}
	s.Players[Blue].Hand = []Card{jack}
	s.Players[Blue].Marbles[0] = Marble{Pos: 5}
	s.Players[Blue].Marbles[1] = Marble{Pos: 7}
	s.Players[Red].Marbles[0] = Marble{Pos: 20}
	fillOtherHands(s, Card{Suit: Hearts, Rank: Rank2})

	actions := s.ListActions()
	for _, a := range actions {
		// No action should swap two of Blue's own marbles, since an
		// opponent marble is available to swap with instead.
		require.False(t, *a.PosFrom == 5 && *a.PosTo == 7)
		require.False(t, *a.PosFrom == 7 && *a.PosTo == 5)
	}

	require.NoError(t, s.ApplyAction(Action{Card: jack, PosFrom: intPtr(5), PosTo: intPtr(20)}))
	require.Equal(t, 20, s.Players[Blue].Marbles[0].Pos)
	require.Equal(t, 5, s.Players[Red].Marbles[0].Pos)
}

func TestCaptureOnLanding(t *testing.T) {
	s := newTestState()
	five := Card{Suit: Spades, Rank: Rank5}
	s.Players[Blue].Hand = []Card{five}
	s.Players[Blue].Marbles[0] = Marble{Pos: 10}
	s.Players[Red].Marbles[0] = Marble{Pos: 15}
	fillOtherHands(s, Card{Suit: Hearts, Rank: Rank2})

	require.NoError(t, s.ApplyAction(Action{Card: five, PosFrom: intPtr(10), PosTo: intPtr(15)}))

	require.Equal(t, 15, s.Players[Blue].Marbles[0].Pos)
	redKennel := KennelCells(Red)
	require.Contains(t, redKennel[:], s.Players[Red].Marbles[0].Pos)
	require.False(t, s.Players[Red].Marbles[0].IsSafe)
}

func TestSplitSevenCapturesAlongTraversal(t *testing.T) {
	s := newTestState()
	dumpOnFailure(t, s)
	seven := Card{Suit: Spades, Rank: Rank7}
	s.Players[Blue].Hand = []Card{seven}
	s.Players[Blue].Marbles[0] = Marble{Pos: 0}
	s.Players[Red].Marbles[0] = Marble{Pos: 3}
	s.Players[Red].Marbles[1] = Marble{Pos: 5}
	fillOtherHands(s, Card{Suit: Hearts, Rank: Rank2})

	require.NoError(t, s.ApplyAction(Action{Card: seven, PosFrom: intPtr(0), PosTo: intPtr(7)}))

	require.Equal(t, 7, s.Players[Blue].Marbles[0].Pos)
	redKennel := KennelCells(Red)
	require.Contains(t, redKennel[:], s.Players[Red].Marbles[0].Pos)
	require.Contains(t, redKennel[:], s.Players[Red].Marbles[1].Pos)
}

func TestSplitSevenAcrossTwoSubActions(t *testing.T) {
	s := newTestState()
	dumpOnFailure(t, s)
	seven := Card{Suit: Spades, Rank: Rank7}
	s.Players[Blue].Hand = []Card{seven}
	s.Players[Blue].Marbles[0] = Marble{Pos: 0}
	s.Players[Blue].Marbles[1] = Marble{Pos: 20}
	fillOtherHands(s, Card{Suit: Hearts, Rank: Rank2})

	require.NoError(t, s.ApplyAction(Action{Card: seven, PosFrom: intPtr(0), PosTo: intPtr(4)}))
	require.Equal(t, Blue, s.ActiveSeat, "same seat continues a split 7")
	require.Equal(t, 3, s.SevenRemaining)

	require.NoError(t, s.ApplyAction(Action{Card: seven, PosFrom: intPtr(20), PosTo: intPtr(23)}))
	require.Equal(t, 0, s.SevenRemaining)
	require.Nil(t, s.ActiveCard)
	require.Equal(t, Green, s.ActiveSeat)
}

func TestRoundRotationOnEmptyHands(t *testing.T) {
	s := newTestState()
	two := Card{Suit: Spades, Rank: Rank2}
	s.Players[Blue].Hand = []Card{two}
	s.Players[Blue].Marbles[0] = Marble{Pos: 40}

	require.NoError(t, s.ApplyAction(Action{Card: two, PosFrom: intPtr(40), PosTo: intPtr(42)}))

	require.Equal(t, 2, s.RoundNo)
	require.Equal(t, Green, s.StarterSeat)
	require.Equal(t, Red, s.ActiveSeat)
	require.False(t, s.CardsExchanged)
	for c := Color(0); c < NumColors; c++ {
		require.Len(t, s.Players[c].Hand, handSize(2))
	}
}

func TestCardConservationAcrossMoves(t *testing.T) {
	s := newTestState()
	five := Card{Suit: Spades, Rank: Rank5}
	s.Players[Blue].Hand = []Card{five}
	s.Players[Blue].Marbles[0] = Marble{Pos: 10}
	fillOtherHands(s, Card{Suit: Hearts, Rank: Rank2})

	before := countAllCards(s)
	require.NoError(t, s.ApplyAction(Action{Card: five, PosFrom: intPtr(10), PosTo: intPtr(15)}))
	require.Equal(t, before, countAllCards(s), "playing a card moves it to the discard pile, never destroys it")
}

func TestFreshDealHasTotalCardConservation(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.dealRound(1))
	require.Equal(t, TotalCards, countAllCards(s))
}

func countAllCards(s *GameState) int {
	n := s.Deck.Size() + s.Deck.DiscardSize()
	for c := Color(0); c < NumColors; c++ {
		n += len(s.Players[c].Hand)
	}
	if s.ActiveCard != nil {
		n++
	}
	for _, c := range s.pendingExchange {
		if c != nil {
			n++
		}
	}
	return n
}

func TestCloneCopiesHandIndependently(t *testing.T) {
	s := newTestState()
	s.Players[Blue].Hand = []Card{{Suit: Spades, Rank: RankKing}}

	clone := s.clone()
	require.Equal(t, s.Players[Blue].Hand, clone.Players[Blue].Hand)
	clone.Players[Blue].Hand[0] = Card{Suit: Hearts, Rank: Rank2}
	require.NotEqual(t, s.Players[Blue].Hand[0], clone.Players[Blue].Hand[0])
}
