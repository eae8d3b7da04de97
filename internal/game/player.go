package game

import (
	"github.com/lox/jokerpoker/poker"
)

// Player represents a player and the cards they hold
type Player struct {
	Name string
	hand []poker.Card
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// String returns the player's name
func (p *Player) String() string {
	return p.Name
}

// Draw takes the top card of the deck. It returns false when the deck is empty.
func (p *Player) Draw(deck *poker.Deck) bool {
	card, ok := deck.Draw()
	if !ok {
		return false
	}
	p.hand = append(p.hand, card)
	return true
}

// DrawMultiple takes n cards at once. Deck errors are returned unchanged and
// the hand is left as it was.
func (p *Player) DrawMultiple(deck *poker.Deck, n int) error {
	cards, err := deck.DrawMultiple(n)
	if err != nil {
		return err
	}
	p.hand = append(p.hand, cards...)
	return nil
}

// Hand returns a copy of the player's cards in the order they were drawn
func (p *Player) Hand() []poker.Card {
	out := make([]poker.Card, len(p.hand))
	copy(out, p.hand)
	return out
}

// SortedHand returns the cards ordered by suit then rank
func (p *Player) SortedHand() []poker.Card {
	out := p.Hand()
	poker.SortCards(out)
	return out
}

// HandSize returns the number of cards held
func (p *Player) HandSize() int {
	return len(p.hand)
}

// ReturnHand gives every card back to the deck and empties the hand
func (p *Player) ReturnHand(deck *poker.Deck) []poker.Card {
	returned := p.hand
	p.hand = nil
	if len(returned) > 0 {
		deck.AddCards(returned...)
	}
	return returned
}
