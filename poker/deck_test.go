package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func TestNewDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(false, testRNG())
	require.Equal(t, 52, deck.Len())

	seen := make(map[Card]bool)
	for _, c := range deck.Cards() {
		assert.False(t, c.IsJoker())
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}

	withJokers := NewDeck(true, testRNG())
	require.Equal(t, 54, withJokers.Len())
	cards := withJokers.Cards()
	assert.True(t, cards[52].IsJoker())
	assert.True(t, cards[53].IsJoker())
}

func TestDeckDraw(t *testing.T) {
	t.Parallel()
	deck := NewDeck(false, testRNG())
	top := deck.Cards()[51]

	card, ok := deck.Draw()
	require.True(t, ok)
	assert.Equal(t, top, card)
	assert.Equal(t, 51, deck.Len())

	for range 51 {
		_, ok := deck.Draw()
		require.True(t, ok)
	}
	card, ok = deck.Draw()
	assert.False(t, ok, "empty deck yields no card")
	assert.Equal(t, Card{}, card)
	assert.Equal(t, 0, deck.Len())
}

func TestDeckDrawMultiple(t *testing.T) {
	t.Parallel()
	deck := NewDeck(false, testRNG())

	cards, err := deck.DrawMultiple(5)
	require.NoError(t, err)
	assert.Len(t, cards, 5)
	assert.Equal(t, 47, deck.Len())

	cards, err = deck.DrawMultiple(10)
	require.NoError(t, err)
	assert.Len(t, cards, 10)
	assert.Equal(t, 37, deck.Len())
}

func TestDeckDrawMultipleErrors(t *testing.T) {
	t.Parallel()

	t.Run("overflow leaves deck untouched", func(t *testing.T) {
		deck := NewDeck(false, testRNG())
		before := deck.Cards()

		cards, err := deck.DrawMultiple(53)
		require.ErrorIs(t, err, ErrOverflow)
		assert.Nil(t, cards)
		assert.Equal(t, 52, deck.Len())
		assert.Equal(t, before, deck.Cards())
	})

	t.Run("zero count", func(t *testing.T) {
		deck := NewDeck(false, testRNG())
		_, err := deck.DrawMultiple(0)
		require.ErrorIs(t, err, ErrInvalidCount)
		assert.Equal(t, 52, deck.Len())
	})

	t.Run("negative count", func(t *testing.T) {
		deck := NewDeck(false, testRNG())
		_, err := deck.DrawMultiple(-3)
		require.ErrorIs(t, err, ErrInvalidCount)
	})

	t.Run("drawing from an emptied deck overflows", func(t *testing.T) {
		deck := NewDeck(false, testRNG())
		_, err := deck.DrawMultiple(52)
		require.NoError(t, err)

		cards, err := deck.DrawMultiple(5)
		require.ErrorIs(t, err, ErrOverflow)
		assert.Empty(t, cards)
		assert.Equal(t, 0, deck.Len())
	})
}

func TestDeckShuffleIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()
	a := NewDeck(true, testRNG())
	b := NewDeck(true, testRNG())
	initial := a.Cards()

	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())
	assert.NotEqual(t, initial, a.Cards())
	assert.ElementsMatch(t, initial, a.Cards())
}

func TestDeckAddCards(t *testing.T) {
	t.Parallel()
	deck := NewDeck(false, testRNG())
	full := deck.Cards()

	drawn, err := deck.DrawMultiple(10)
	require.NoError(t, err)
	require.Equal(t, 42, deck.Len())

	deck.AddCards(drawn...)
	assert.Equal(t, 52, deck.Len())
	assert.ElementsMatch(t, full, deck.Cards())
}
