package poker

import (
	"fmt"
	"slices"
)

// Category enumerates hand classifications ordered from weakest to strongest.
// New tiers are inserted in place; nothing relies on the numeric values.
type Category uint8

const (
	NoCards Category = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	// WildcardHand is reserved above every other tier. Evaluate never returns it.
	WildcardHand
)

// Categories lists every category the evaluator can produce, strongest first.
var Categories = []Category{
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
	NoCards,
}

// String returns a human-readable category label
func (c Category) String() string {
	switch c {
	case NoCards:
		return "No Cards"
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case WildcardHand:
		return "Wildcard Hand"
	default:
		return "Unknown"
	}
}

// EvaluatedHand is the classification of a hand plus the values used to break
// ties inside its category, most significant first.
type EvaluatedHand struct {
	Category Category
	Tiebreak []int
	// JokerFilled is set when a Joker completed the straight.
	JokerFilled bool
}

// Compare returns 1 if h beats other, -1 if other beats h, and 0 for a tie.
// Tiebreaks are compared element-wise; hands of equal size produce equal lengths.
func (h EvaluatedHand) Compare(other EvaluatedHand) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}
	return slices.Compare(h.Tiebreak, other.Tiebreak)
}

// String formats the hand like "Full House [3 7]"
func (h EvaluatedHand) String() string {
	return fmt.Sprintf("%s %v", h.Category, h.Tiebreak)
}
