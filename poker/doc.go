// Package poker provides the card model and the hand ranking engine.
//
// # Cards and decks
//
// Cards are immutable values built with NewCard, Joker or ParseCard. A Deck
// holds 52 cards, plus two Jokers when requested, and always shuffles with the
// *rand.Rand it was created with:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	deck := poker.NewDeck(true, rng)
//	deck.Shuffle()
//	hand, err := deck.DrawMultiple(5)
//
// # Evaluation
//
// Evaluate classifies 3 to 5 card hands from Straight Flush down to High Card
// and returns the tiebreak values for the category. A Joker never takes a rank
// of its own; it can only fill the first gap in an otherwise broken straight,
// and only one gap is filled no matter how many Jokers are held.
//
// ResolveWinner walks players in order and keeps the first of any equal hands.
package poker
