package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEmptyHand(t *testing.T) {
	t.Parallel()
	got := Evaluate(nil)
	assert.Equal(t, NoCards, got.Category)
	assert.Equal(t, []int{}, got.Tiebreak)
	assert.Equal(t, "No Cards", got.Category.String())
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		hand         string
		wantCategory Category
		wantTiebreak []int
		wantFilled   bool
	}{
		{
			name:         "straight flush",
			hand:         "9♠ 10♠ J♠ Q♠ K♠",
			wantCategory: StraightFlush,
			wantTiebreak: []int{9, 10, 11, 12, 13},
		},
		{
			name:         "four of a kind with kicker",
			hand:         "4♣ 4♦ 9♦ 4♥ 4♠",
			wantCategory: FourOfAKind,
			wantTiebreak: []int{4, 9},
		},
		{
			name:         "full house",
			hand:         "3♣ 3♦ 3♥ 7♠ 7♦",
			wantCategory: FullHouse,
			wantTiebreak: []int{3, 7},
		},
		{
			name:         "flush that is not a straight",
			hand:         "2♣ 3♣ 4♣ 5♣ 7♣",
			wantCategory: Flush,
			wantTiebreak: []int{7, 5, 4, 3, 2},
		},
		{
			name:         "straight",
			hand:         "6♦ 2♣ 4♥ 3♦ 5♠",
			wantCategory: Straight,
			wantTiebreak: []int{2, 3, 4, 5, 6},
		},
		{
			name:         "three of a kind",
			hand:         "Q♣ 5♠ Q♦ 9♦ Q♥",
			wantCategory: ThreeOfAKind,
			wantTiebreak: []int{12, 9, 5},
		},
		{
			name:         "two pair",
			hand:         "4♥ J♣ A♦ J♦ 4♠",
			wantCategory: TwoPair,
			wantTiebreak: []int{11, 4, 14},
		},
		{
			name:         "one pair",
			hand:         "2♥ K♣ 9♦ K♦ 7♠",
			wantCategory: OnePair,
			wantTiebreak: []int{13, 9, 7, 2},
		},
		{
			name:         "high card",
			hand:         "A♣ 10♦ 4♥ 7♠ 9♦",
			wantCategory: HighCard,
			wantTiebreak: []int{14, 10, 9, 7, 4},
		},
		{
			name:         "ace is never low",
			hand:         "A♣ 2♦ 3♥ 4♠ 5♦",
			wantCategory: HighCard,
			wantTiebreak: []int{14, 5, 4, 3, 2},
		},
		{
			name:         "three card straight",
			hand:         "7♥ 5♣ 6♦",
			wantCategory: Straight,
			wantTiebreak: []int{5, 6, 7},
		},
		{
			name:         "three card pair",
			hand:         "8♥ 8♣ K♦",
			wantCategory: OnePair,
			wantTiebreak: []int{8, 13},
		},
		{
			name:         "joker fills the gap",
			hand:         "5♣ 6♦ Joker 8♥ 9♠",
			wantCategory: Straight,
			wantTiebreak: []int{5, 6, 7, 8, 9},
			wantFilled:   true,
		},
		{
			name:         "joker completes a straight flush",
			hand:         "5♣ 6♣ Joker 8♣ 9♣",
			wantCategory: StraightFlush,
			wantTiebreak: []int{5, 6, 7, 8, 9},
			wantFilled:   true,
		},
		{
			name:         "joker in a three card hand",
			hand:         "Joker Q♦ 10♦",
			wantCategory: StraightFlush,
			wantTiebreak: []int{10, 11, 12},
			wantFilled:   true,
		},
		{
			name:         "joker beside a complete run is not needed",
			hand:         "5♣ 6♦ 7♥ Joker",
			wantCategory: Straight,
			wantTiebreak: []int{5, 6, 7},
		},
		{
			name:         "joker cannot bridge a wide gap",
			hand:         "2♣ 3♦ 4♥ 9♠ Joker",
			wantCategory: HighCard,
			wantTiebreak: []int{9, 4, 3, 2},
		},
		{
			name:         "unused joker adds nothing to a flush",
			hand:         "2♣ 3♣ 5♣ 9♣ Joker",
			wantCategory: Flush,
			wantTiebreak: []int{9, 5, 3, 2},
		},
		{
			name:         "two jokers fill only one gap",
			hand:         "5♣ Joker 7♦ Joker 9♥",
			wantCategory: HighCard,
			wantTiebreak: []int{9, 7, 5},
		},
		{
			name:         "joker does not break a pair",
			hand:         "5♣ 5♦ 7♥ Joker",
			wantCategory: OnePair,
			wantTiebreak: []int{5, 7},
		},
		{
			name:         "single suited card is a vacuous flush",
			hand:         "7♥ Joker",
			wantCategory: StraightFlush,
			wantTiebreak: []int{7},
		},
		{
			name:         "only jokers",
			hand:         "Joker Joker",
			wantCategory: StraightFlush,
			wantTiebreak: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(mustParse(t, tt.hand))
			assert.Equal(t, tt.wantCategory, got.Category, "category for %s", tt.hand)
			assert.Equal(t, tt.wantTiebreak, got.Tiebreak, "tiebreak for %s", tt.hand)
			assert.Equal(t, tt.wantFilled, got.JokerFilled)
		})
	}
}

func TestEvaluateDoesNotMutateHand(t *testing.T) {
	t.Parallel()
	hand := mustParse(t, "9♠ Joker 5♣ 6♦ 8♥")
	before := append([]Card(nil), hand...)

	Evaluate(hand)
	assert.Equal(t, before, hand)
}

func TestCategoryLabels(t *testing.T) {
	t.Parallel()
	want := []string{
		"Straight Flush", "Four of a Kind", "Full House", "Flush", "Straight",
		"Three of a Kind", "Two Pair", "One Pair", "High Card", "No Cards",
	}
	for i, c := range Categories {
		assert.Equal(t, want[i], c.String())
		if i > 0 {
			assert.Greater(t, Categories[i-1], c, "categories listed strongest first")
		}
	}
	assert.Greater(t, WildcardHand, StraightFlush)
	assert.Equal(t, "Wildcard Hand", WildcardHand.String())
}

func TestEvaluatedHandCompare(t *testing.T) {
	t.Parallel()
	pairOfKings := EvaluatedHand{Category: OnePair, Tiebreak: []int{13, 9, 7, 2}}
	pairOfKingsBetterKicker := EvaluatedHand{Category: OnePair, Tiebreak: []int{13, 10, 7, 2}}
	flush := EvaluatedHand{Category: Flush, Tiebreak: []int{7, 5, 4, 3, 2}}

	assert.Equal(t, 1, flush.Compare(pairOfKingsBetterKicker))
	assert.Equal(t, -1, pairOfKings.Compare(flush))
	assert.Equal(t, -1, pairOfKings.Compare(pairOfKingsBetterKicker))
	assert.Equal(t, 0, pairOfKings.Compare(EvaluatedHand{Category: OnePair, Tiebreak: []int{13, 9, 7, 2}}))
	assert.Equal(t, "One Pair [13 9 7 2]", pairOfKings.String())
}
