package dog

import "fmt"

// Suit is a playing-card suit; the joker carries the empty suit.
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
	NoSuit   Suit = ""
)

// Rank is a playing-card rank, including the joker.
type Rank string

const (
	Rank2     Rank = "2"
	Rank3     Rank = "3"
	Rank4     Rank = "4"
	Rank5     Rank = "5"
	Rank6     Rank = "6"
	Rank7     Rank = "7"
	Rank8     Rank = "8"
	Rank9     Rank = "9"
	Rank10    Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
	RankAce   Rank = "A"
	RankJoker Rank = "JKR"
)

// Card is a single playing card. Two identical decks are combined, so cards
// are compared by value, not identity.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	if c.Suit == NoSuit {
		return string(c.Rank)
	}
	return string(c.Rank) + string(c.Suit)
}

// IsUnlock reports whether c can move a marble from the kennel to its start
// cell (§4.3): King, Ace, or Joker.
func (c Card) IsUnlock() bool {
	switch c.Rank {
	case RankKing, RankAce, RankJoker:
		return true
	default:
		return false
	}
}

// forwardSteps returns the possible forward step counts for ordinary
// (non-7, non-Jack, non-Joker) ranks. Ace returns both 1 and 11 as distinct
// options (§9 Design Notes: never split across marbles).
func forwardSteps(r Rank) ([]int, error) {
	switch r {
	case Rank2:
		return []int{2}, nil
	case Rank3:
		return []int{3}, nil
	case Rank4:
		return []int{4}, nil
	case Rank5:
		return []int{5}, nil
	case Rank6:
		return []int{6}, nil
	case Rank8:
		return []int{8}, nil
	case Rank9:
		return []int{9}, nil
	case Rank10:
		return []int{10}, nil
	case RankQueen:
		return []int{12}, nil
	case RankKing:
		return []int{13}, nil
	case RankAce:
		return []int{1, 11}, nil
	default:
		return nil, fmt.Errorf("dog: rank %s has no fixed step count", r)
	}
}

var allSuits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// nominableCards lists every concrete card a Joker may be nominated as: any
// suit of any non-joker rank.
func nominableCards() []Card {
	ranks := []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10,
		RankJack, RankQueen, RankKing, RankAce}
	cards := make([]Card, 0, len(ranks)*len(allSuits))
	for _, r := range ranks {
		for _, s := range allSuits {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}
