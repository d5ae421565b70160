package dog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewDeckHas110Cards(t *testing.T) {
	d := NewDeck(testRNG())
	require.Equal(t, TotalCards, d.Size())
	require.Equal(t, 0, d.DiscardSize())
}

func TestDeckDrawReducesSize(t *testing.T) {
	d := NewDeck(testRNG())
	_, err := d.Draw()
	require.NoError(t, err)
	require.Equal(t, TotalCards-1, d.Size())
}

func TestDeckReshufflesFromDiscard(t *testing.T) {
	d := NewDeck(testRNG())
	cards, err := d.DrawN(TotalCards)
	require.NoError(t, err)
	require.Len(t, cards, TotalCards)
	require.Equal(t, 0, d.Size())

	for _, c := range cards {
		d.Discard(c)
	}
	require.Equal(t, TotalCards, d.DiscardSize())

	drawn, err := d.Draw()
	require.NoError(t, err)
	require.Equal(t, TotalCards-1, d.Size())
	require.Equal(t, 0, d.DiscardSize())
	require.Contains(t, cards, drawn)
}

func TestDeckExhaustedWhenBothPilesEmpty(t *testing.T) {
	d := NewDeck(testRNG())
	_, err := d.DrawN(TotalCards)
	require.NoError(t, err)
	_, err = d.Draw()
	require.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDeckCloneIsIndependent(t *testing.T) {
	d := NewDeck(testRNG())
	clone := d.clone()
	_, err := d.Draw()
	require.NoError(t, err)
	require.Equal(t, TotalCards-1, d.Size())
	require.Equal(t, TotalCards, clone.Size())
}
