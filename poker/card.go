package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCard is returned when a suit/rank pair does not describe a card.
var ErrInvalidCard = errors.New("invalid suit or rank")

// Suit represents a card suit. The declaration order is the sort order.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NoSuit // only carried by the Joker
)

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case NoSuit:
		return "None"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) valid() bool {
	return s <= NoSuit
}

// Rank represents a card rank. Numeric ranks carry their face value, court
// cards continue upwards with Ace high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	JokerRank
)

// String returns the rank label used in card text
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	case r == JokerRank:
		return "Joker"
	default:
		return "?"
	}
}

// Value returns the numeric value of the rank (J=11 .. A=14). Jokers have no value.
func (r Rank) Value() (int, bool) {
	if r < Two || r > Ace {
		return 0, false
	}
	return int(r), true
}

func (r Rank) valid() bool {
	return r >= Two && r <= JokerRank
}

// Card is an immutable playing card. The zero value is not a valid card; use
// NewCard or Joker.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a card, rejecting unknown suits and ranks. A Joker must
// carry NoSuit and NoSuit is reserved for the Joker.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.valid() || !rank.valid() {
		return Card{}, fmt.Errorf("card %d/%d: %w", suit, rank, ErrInvalidCard)
	}
	if (rank == JokerRank) != (suit == NoSuit) {
		return Card{}, fmt.Errorf("card %s%s: %w", rank, suit, ErrInvalidCard)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is NewCard for statically known cards; it panics on invalid input.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Joker returns the wildcard card
func Joker() Card {
	return Card{suit: NoSuit, rank: JokerRank}
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// IsJoker reports whether the card is a Joker
func (c Card) IsJoker() bool {
	return c.rank == JokerRank
}

// String returns the card text, e.g. "10♦" or "Joker"
func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	return c.rank.String() + c.suit.String()
}

// Compare orders cards by suit first and rank second. Jokers sort after
// every suited card and compare equal to each other.
func (c Card) Compare(other Card) int {
	if c.suit != other.suit {
		if c.suit < other.suit {
			return -1
		}
		return 1
	}
	if c.IsJoker() || other.IsJoker() {
		return 0
	}
	switch {
	case c.rank < other.rank:
		return -1
	case c.rank > other.rank:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts before other
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// SortCards sorts cards in place by suit then rank
func SortCards(cards []Card) {
	slices.SortStableFunc(cards, Card.Compare)
}

// ParseCard parses card text. Accepted forms are "A♠", "As", "10h", "Th" and
// "Joker" (case insensitive).
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "joker") {
		return Joker(), nil
	}

	suitRune, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || len(s) == size {
		return Card{}, fmt.Errorf("parse %q: %w", s, ErrInvalidCard)
	}

	suit, ok := parseSuit(suitRune)
	if !ok {
		return Card{}, fmt.Errorf("parse %q: unknown suit: %w", s, ErrInvalidCard)
	}
	rank, ok := parseRank(s[:len(s)-size])
	if !ok {
		return Card{}, fmt.Errorf("parse %q: unknown rank: %w", s, ErrInvalidCard)
	}
	return NewCard(suit, rank)
}

// ParseCards parses a list of cards separated by whitespace or commas
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case '♣', 'c', 'C':
		return Clubs, true
	case '♦', 'd', 'D':
		return Diamonds, true
	case '♥', 'h', 'H':
		return Hearts, true
	case '♠', 's', 'S':
		return Spades, true
	default:
		return 0, false
	}
}

func parseRank(s string) (Rank, bool) {
	switch strings.ToUpper(s) {
	case "2":
		return Two, true
	case "3":
		return Three, true
	case "4":
		return Four, true
	case "5":
		return Five, true
	case "6":
		return Six, true
	case "7":
		return Seven, true
	case "8":
		return Eight, true
	case "9":
		return Nine, true
	case "10", "T":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	default:
		return 0, false
	}
}
