package dog

import "math/rand"

// Deck is the shared 110-card draw/discard pile (§4.2): two copies of a
// 55-card set (4 suits x 13 ranks, plus 3 jokers). Modeled on the teacher's
// Deck type in pkg/poker/deck.go, generalized from a single 52-card pile to
// a draw pile with an attached discard pile and reshuffle-on-empty.
type Deck struct {
	draw    []Card
	discard []Card
	rng     *rand.Rand
}

// TotalCards is the fixed composition size (§6): 2 * (4*13 + 3).
const TotalCards = 110

func fullCardSet() []Card {
	ranks := []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10,
		RankJack, RankQueen, RankKing, RankAce}
	cards := make([]Card, 0, 55)
	for _, s := range allSuits {
		for _, r := range ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	for i := 0; i < 3; i++ {
		cards = append(cards, Card{Suit: NoSuit, Rank: RankJoker})
	}
	doubled := make([]Card, 0, len(cards)*2)
	doubled = append(doubled, cards...)
	doubled = append(doubled, cards...)
	return doubled
}

// NewDeck builds a freshly shuffled 110-card deck using rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		draw: fullCardSet(),
		rng:  rng,
	}
	d.shuffleDraw()
	return d
}

func (d *Deck) shuffleDraw() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Size returns the number of cards left to draw.
func (d *Deck) Size() int {
	return len(d.draw)
}

// DiscardSize returns the number of discarded cards.
func (d *Deck) DiscardSize() int {
	return len(d.discard)
}

// Discard moves a played card onto the discard pile.
func (d *Deck) Discard(c Card) {
	d.discard = append(d.discard, c)
}

// Draw removes and returns one card from the tail of the draw pile,
// reshuffling the discard pile into the draw pile first if needed. Returns
// ErrDeckExhausted if both piles are empty (§4.8, should be unreachable
// given the card-conservation invariant).
func (d *Deck) Draw() (Card, error) {
	if len(d.draw) == 0 {
		if err := d.reshuffle(); err != nil {
			return Card{}, err
		}
	}
	n := len(d.draw)
	card := d.draw[n-1]
	d.draw = d.draw[:n-1]
	return card, nil
}

// DrawN deals n cards, reshuffling as needed between draws.
func (d *Deck) DrawN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.Draw()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// reshuffle moves the entire discard pile into the draw pile and permutes
// it (§4.2). Fatal if both piles are empty.
func (d *Deck) reshuffle() error {
	if len(d.discard) == 0 {
		return ErrDeckExhausted
	}
	d.draw = append(d.draw, d.discard...)
	d.discard = nil
	d.shuffleDraw()
	return nil
}

// DeckState is the serializable snapshot used by GameState's clone/restore
// path, grounded in the teacher's DeckState persistence type.
type DeckState struct {
	Draw    []Card `json:"draw"`
	Discard []Card `json:"discard"`
}

func (d *Deck) state() DeckState {
	draw := make([]Card, len(d.draw))
	copy(draw, d.draw)
	discard := make([]Card, len(d.discard))
	copy(discard, d.discard)
	return DeckState{Draw: draw, Discard: discard}
}

func (d *Deck) restore(s DeckState) {
	d.draw = make([]Card, len(s.Draw))
	copy(d.draw, s.Draw)
	d.discard = make([]Card, len(s.Discard))
	copy(d.discard, s.Discard)
}

func (d *Deck) clone() *Deck {
	clone := &Deck{rng: d.rng}
	clone.restore(d.state())
	return clone
}
