package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInvalidCount is returned when a non-positive number of cards is requested.
	ErrInvalidCount = errors.New("invalid count")
	// ErrOverflow is returned when more cards are requested than the deck holds.
	ErrOverflow = errors.New("over flow")
)

// Deck holds the cards that have not been dealt. The top of the deck is the
// end of the slice.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates an unshuffled deck in suit-then-rank order, optionally
// followed by two Jokers.
func NewDeck(includeJokers bool, rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 54),
		rng:   rng,
	}

	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{suit: suit, rank: rank})
		}
	}
	if includeJokers {
		d.cards = append(d.cards, Joker(), Joker())
	}

	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card. The boolean is false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// DrawMultiple draws n cards. It never draws partially: on error the deck is untouched.
func (d *Deck) DrawMultiple(n int) ([]Card, error) {
	if n <= 0 {
		return nil, fmt.Errorf("draw %d cards: %w", n, ErrInvalidCount)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("draw %d cards from %d: %w", n, len(d.cards), ErrOverflow)
	}

	cards := make([]Card, 0, n)
	for range n {
		card, _ := d.Draw()
		cards = append(cards, card)
	}
	return cards, nil
}

// AddCards returns cards to the deck and reshuffles it
func (d *Deck) AddCards(cards ...Card) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
