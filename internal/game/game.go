package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/jokerpoker/internal/randutil"
	"github.com/lox/jokerpoker/poker"
)

var (
	// ErrNoPlayers is returned when a game is created without players
	ErrNoPlayers = errors.New("game needs at least one player")
	// ErrDuplicatePlayer is returned when two players share a name
	ErrDuplicatePlayer = errors.New("duplicate player name")
)

// Option configures a Game
type Option func(*options)

type options struct {
	jokers bool
	rng    *rand.Rand
	deck   *poker.Deck
	logger *log.Logger
}

// WithJokers adds the two Jokers to the deck
func WithJokers(include bool) Option {
	return func(o *options) { o.jokers = include }
}

// WithRNG sets the random source the deck shuffles with
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithDeck plays with the given deck as is. It is not shuffled again.
func WithDeck(deck *poker.Deck) Option {
	return func(o *options) { o.deck = deck }
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Game owns a deck and the seated players. It is not safe for concurrent use.
type Game struct {
	id      string
	deck    *poker.Deck
	players []*Player
	logger  *log.Logger
}

// NewGame seats the named players in order and shuffles a fresh deck
func NewGame(names []string, opts ...Option) (*Game, error) {
	if len(names) == 0 {
		return nil, ErrNoPlayers
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	deck := o.deck
	if deck == nil {
		rng := o.rng
		if rng == nil {
			rng = randutil.New(randutil.Seed(0))
		}
		deck = poker.NewDeck(o.jokers, rng)
		deck.Shuffle()
	}

	id := uuid.NewString()[:8]
	g := &Game{
		id:     id,
		deck:   deck,
		logger: o.logger.WithPrefix("game").With("game", id),
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("player %d has no name", len(g.players)+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
		seen[name] = true
		g.players = append(g.players, NewPlayer(name))
	}

	g.logger.Debug("Game created", "players", len(names), "deck", deck.Len())
	return g, nil
}

// ID returns the short identifier used in logs
func (g *Game) ID() string {
	return g.id
}

// Deck returns the game's deck
func (g *Game) Deck() *poker.Deck {
	return g.deck
}

// Players returns the seated players in seating order
func (g *Game) Players() []*Player {
	return slices.Clone(g.players)
}

// Player looks a player up by name
func (g *Game) Player(name string) (*Player, bool) {
	for _, p := range g.players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Deal gives each player n cards, one at a time around the table. Players
// simply miss out once the deck runs dry.
func (g *Game) Deal(n int) error {
	if n <= 0 {
		return fmt.Errorf("deal %d cards: %w", n, poker.ErrInvalidCount)
	}

	short := 0
	for range n {
		for _, p := range g.players {
			if !p.Draw(g.deck) {
				short++
			}
		}
	}
	if short > 0 {
		g.logger.Warn("Deck ran out while dealing", "missing", short)
	}
	g.logger.Debug("Dealt cards", "per_player", n, "remaining", g.deck.Len())
	return nil
}

// RemovePlayer takes a player out of the game and returns their hand to the
// deck. It reports whether the player was seated.
func (g *Game) RemovePlayer(name string) bool {
	idx := slices.IndexFunc(g.players, func(p *Player) bool { return p.Name == name })
	if idx < 0 {
		return false
	}

	returned := g.players[idx].ReturnHand(g.deck)
	g.players = slices.Delete(g.players, idx, idx+1)
	g.logger.Info("Player left", "player", name, "returned", len(returned), "deck", g.deck.Len())
	return true
}

// Hands returns every player's cards in seating order
func (g *Game) Hands() []poker.PlayerHand {
	hands := make([]poker.PlayerHand, len(g.players))
	for i, p := range g.players {
		hands[i] = poker.PlayerHand{Name: p.Name, Cards: p.Hand()}
	}
	return hands
}

// CardCount returns the cards in the deck plus every card in a hand. Dealing
// and removing players never change it.
func (g *Game) CardCount() int {
	total := g.deck.Len()
	for _, p := range g.players {
		total += p.HandSize()
	}
	return total
}

// DetermineWinner evaluates every hand and returns the best one. The boolean
// is false when nobody is left at the table.
func (g *Game) DetermineWinner() (poker.Result, bool) {
	result, ok := poker.ResolveWinnerFunc(g.Hands(), func(name string, hand poker.EvaluatedHand) {
		g.logger.Info("Evaluated hand", "player", name, "category", hand.Category.String(), "tiebreak", hand.Tiebreak)
	})
	if ok {
		g.logger.Info("Winner determined", "player", result.Name, "category", result.Hand.Category.String())
	}
	return result, ok
}
