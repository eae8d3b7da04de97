package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/jokerpoker/internal/game"
	"github.com/lox/jokerpoker/internal/randutil"
	"github.com/lox/jokerpoker/internal/statistics"
	"github.com/lox/jokerpoker/poker"
)

// ErrInvalidConfig is returned when a simulation cannot be started
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Players  []string
	HandSize int
	Jokers   bool
	Drop     []string // Players leaving before the showdown
	Seed     int64
	Workers  int // 0 picks one per CPU
	Logger   *log.Logger
}

// Simulator plays many independent games and aggregates the outcome
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Seed returns the base seed games are derived from
func (s *Simulator) Seed() int64 {
	return s.config.Seed
}

// Run plays every game and returns the merged statistics. Totals only depend
// on the seed, never on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, s.config.Games)
	}
	if len(s.config.Players) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrInvalidConfig)
	}
	if s.config.HandSize <= 0 {
		return nil, fmt.Errorf("%w: hand size must be positive, got %d", ErrInvalidConfig, s.config.HandSize)
	}

	s.config.Seed = randutil.Seed(s.config.Seed)

	workers := s.config.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), 8)
	}
	workers = min(workers, s.config.Games)

	logger := s.config.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation", "games", s.config.Games, "workers", workers, "seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, workers)

	for w := range workers {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := w; i < s.config.Games; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playGame(randutil.Derive(s.config.Seed, i))
				if err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}
				stats.Add(result)
			}

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete", "games", total.Games, "hands", total.Hands)
	return total, nil
}

// playGame deals a single game from seed and scores the showdown
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	g, err := game.NewGame(s.config.Players,
		game.WithJokers(s.config.Jokers),
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(s.config.Logger),
	)
	if err != nil {
		return statistics.GameResult{}, err
	}

	if err := g.Deal(s.config.HandSize); err != nil {
		return statistics.GameResult{}, err
	}
	for _, name := range s.config.Drop {
		g.RemovePlayer(name)
	}

	return Score(seed, g.Hands()), nil
}

// Score evaluates every hand and records who won
func Score(seed int64, hands []poker.PlayerHand) statistics.GameResult {
	result := statistics.GameResult{
		Seed:   seed,
		Hands:  make([]poker.EvaluatedHand, len(hands)),
		Winner: -1,
	}

	for i, h := range hands {
		eval := poker.Evaluate(h.Cards)
		result.Hands[i] = eval
		if result.Winner < 0 || eval.Compare(result.Hands[result.Winner]) > 0 {
			result.Winner = i
			result.Tied = false
		} else if eval.Compare(result.Hands[result.Winner]) == 0 {
			result.Tied = true
		}
	}

	return result
}
