package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/jokerpoker/internal/randutil"
	"github.com/lox/jokerpoker/poker"
)

// TestGameOption configures test game creation
type TestGameOption func(*testGameBuilder)

type testGameBuilder struct {
	seed    int64
	jokers  bool
	deck    *poker.Deck
	logger  *log.Logger
	players []string
}

// Test game options
func WithSeed(seed int64) TestGameOption {
	return func(b *testGameBuilder) { b.seed = seed }
}

func WithTestJokers() TestGameOption {
	return func(b *testGameBuilder) { b.jokers = true }
}

func WithPlayers(names ...string) TestGameOption {
	return func(b *testGameBuilder) { b.players = names }
}

func WithTestLogger(logger *log.Logger) TestGameOption {
	return func(b *testGameBuilder) { b.logger = logger }
}

// WithStackedDeck deals from an unshuffled deck: spades from the ace down first
func WithStackedDeck() TestGameOption {
	return func(b *testGameBuilder) { b.deck = poker.NewDeck(b.jokers, nil) }
}

// NewTestGame creates a game for testing with sensible defaults
func NewTestGame(opts ...TestGameOption) *Game {
	builder := &testGameBuilder{
		seed:    42,
		logger:  log.New(io.Discard),
		players: []string{"Dean", "Alice", "Bob", "Charlie", "Kailash"},
	}

	for _, opt := range opts {
		opt(builder)
	}

	gameOpts := []Option{
		WithJokers(builder.jokers),
		WithRNG(randutil.New(builder.seed)),
		WithLogger(builder.logger),
	}
	if builder.deck != nil {
		gameOpts = append(gameOpts, WithDeck(builder.deck))
	}

	g, err := NewGame(builder.players, gameOpts...)
	if err != nil {
		panic(err)
	}
	return g
}

// HeadsUpGame is a two player game
func HeadsUpGame() *Game {
	return NewTestGame(WithPlayers("Alice", "Bob"))
}
