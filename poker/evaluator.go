package poker

import (
	"slices"
	"sort"
)

// Evaluate classifies a hand of any size. Jokers contribute no rank of their
// own; at most one of them fills the first gap of a broken straight.
func Evaluate(hand []Card) EvaluatedHand {
	if len(hand) == 0 {
		return EvaluatedHand{Category: NoCards, Tiebreak: []int{}}
	}

	var (
		values []int
		suits  = make(map[Suit]struct{}, 4)
		counts = make(map[int]int, len(hand))
		jokers int
	)
	for _, c := range hand {
		v, ok := c.Rank().Value()
		if !ok {
			jokers++
			continue
		}
		values = append(values, v)
		suits[c.Suit()] = struct{}{}
		counts[v]++
	}
	sort.Ints(values)

	// A single suited card (or none) is trivially a flush.
	isFlush := len(suits) <= 1
	straight := values
	isStraight := consecutive(values)
	filled := false
	if jokers > 0 && !isStraight {
		if candidate, ok := fillGap(values); ok && consecutive(candidate) {
			straight, isStraight, filled = candidate, true, true
		}
	}

	switch {
	case isFlush && isStraight:
		return EvaluatedHand{Category: StraightFlush, Tiebreak: ascending(straight), JokerFilled: filled}
	case ofAKind(counts, 4) > 0:
		quad := ofAKind(counts, 4)
		return EvaluatedHand{Category: FourOfAKind, Tiebreak: append([]int{quad}, kickers(values, quad)...)}
	case ofAKind(counts, 3) > 0 && ofAKind(counts, 2) > 0:
		return EvaluatedHand{Category: FullHouse, Tiebreak: []int{ofAKind(counts, 3), ofAKind(counts, 2)}}
	case isFlush:
		return EvaluatedHand{Category: Flush, Tiebreak: descending(values)}
	case isStraight:
		return EvaluatedHand{Category: Straight, Tiebreak: ascending(straight), JokerFilled: filled}
	case ofAKind(counts, 3) > 0:
		trips := ofAKind(counts, 3)
		return EvaluatedHand{Category: ThreeOfAKind, Tiebreak: append([]int{trips}, kickers(values, trips)...)}
	}

	pairs := pairRanks(counts)
	switch len(pairs) {
	case 0:
		return EvaluatedHand{Category: HighCard, Tiebreak: descending(values)}
	case 2:
		return EvaluatedHand{Category: TwoPair, Tiebreak: append(pairs, kickers(values, pairs...)...)}
	default:
		return EvaluatedHand{Category: OnePair, Tiebreak: append([]int{pairs[0]}, kickers(values, pairs[0])...)}
	}
}

// consecutive reports whether each neighbour of a sorted slice is exactly one
// apart. Duplicates break the run.
func consecutive(sorted []int) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

// fillGap inserts the value after the first gap between distinct ranks. Only
// one value is ever inserted, however many Jokers the hand holds.
func fillGap(sorted []int) ([]int, bool) {
	unique := slices.Compact(slices.Clone(sorted))
	for i := 1; i < len(unique); i++ {
		if unique[i]-unique[i-1] > 1 {
			out := append(slices.Clone(sorted), unique[i-1]+1)
			sort.Ints(out)
			return out, true
		}
	}
	return nil, false
}

// ofAKind returns the highest rank held exactly n times, or 0
func ofAKind(counts map[int]int, n int) int {
	best := 0
	for rank, count := range counts {
		if count == n && rank > best {
			best = rank
		}
	}
	return best
}

// pairRanks returns the paired ranks, highest first
func pairRanks(counts map[int]int) []int {
	var pairs []int
	for rank, count := range counts {
		if count == 2 {
			pairs = append(pairs, rank)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	return pairs
}

// kickers returns the values not matching any of the used ranks, highest first
func kickers(values []int, used ...int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if !slices.Contains(used, v) {
			out = append(out, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func ascending(values []int) []int {
	if values == nil {
		return []int{}
	}
	return slices.Clone(values)
}

func descending(values []int) []int {
	out := slices.Clone(values)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if out == nil {
		out = []int{}
	}
	return out
}
