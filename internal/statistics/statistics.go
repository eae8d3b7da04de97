package statistics

import (
	"fmt"
	"strings"

	"github.com/lox/jokerpoker/poker"
)

const numCategories = int(poker.WildcardHand) + 1

// GameResult represents the outcome of a single game
type GameResult struct {
	Seed   int64                 // RNG seed for this game (for replay)
	Hands  []poker.EvaluatedHand // Evaluation of every seat, in seat order
	Winner int                   // Winning seat, -1 when nobody was seated
	Tied   bool                  // Another seat held exactly the winning evaluation
}

// Statistics aggregates results over many games
type Statistics struct {
	Games int
	Hands int

	// Category analytics
	Categories        [numCategories]int // Every evaluated hand
	WinningCategories [numCategories]int // Winning hands only
	JokerStraights    int                // Straights completed by a Joker

	// Seat analytics
	SeatWins []int // Index is the seat
	NoWinner int   // Games nobody could win
	Ties     int   // Games decided by seat order
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	s.Games++

	for _, hand := range result.Hands {
		s.Hands++
		s.Categories[hand.Category]++
		if hand.JokerFilled {
			s.JokerStraights++
		}
	}

	if result.Winner < 0 || result.Winner >= len(result.Hands) {
		s.NoWinner++
		return
	}

	s.WinningCategories[result.Hands[result.Winner].Category]++
	s.growSeats(result.Winner + 1)
	s.SeatWins[result.Winner]++

	if result.Tied {
		s.Ties++
	}
}

// Merge adds other's totals to s
func (s *Statistics) Merge(other *Statistics) {
	if other == nil {
		return
	}
	s.Games += other.Games
	s.Hands += other.Hands
	for i := range numCategories {
		s.Categories[i] += other.Categories[i]
		s.WinningCategories[i] += other.WinningCategories[i]
	}
	s.JokerStraights += other.JokerStraights
	s.NoWinner += other.NoWinner
	s.Ties += other.Ties

	s.growSeats(len(other.SeatWins))
	for seat, wins := range other.SeatWins {
		s.SeatWins[seat] += wins
	}
}

func (s *Statistics) growSeats(n int) {
	if n > len(s.SeatWins) {
		s.SeatWins = append(s.SeatWins, make([]int, n-len(s.SeatWins))...)
	}
}

// Frequency returns the share of evaluated hands in category c
func (s *Statistics) Frequency(c poker.Category) float64 {
	if s.Hands == 0 || int(c) >= numCategories {
		return 0
	}
	return float64(s.Categories[c]) / float64(s.Hands)
}

// WinRate returns the share of games won from seat
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 || seat < 0 || seat >= len(s.SeatWins) {
		return 0
	}
	return float64(s.SeatWins[seat]) / float64(s.Games)
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	categoryHands := sum(s.Categories[:])
	if categoryHands != s.Hands {
		return fmt.Errorf("category total (%d) does not match hands count (%d)", categoryHands, s.Hands)
	}

	wins := sum(s.WinningCategories[:])
	if wins+s.NoWinner != s.Games {
		return fmt.Errorf("winning hands (%d) plus games without a winner (%d) does not match games count (%d)",
			wins, s.NoWinner, s.Games)
	}

	seatWins := sum(s.SeatWins)
	if seatWins != wins {
		return fmt.Errorf("seat wins total (%d) does not match winning hands (%d)", seatWins, wins)
	}

	if s.Ties > wins {
		return fmt.Errorf("ties (%d) exceed decided games (%d)", s.Ties, wins)
	}

	straights := s.Categories[poker.Straight] + s.Categories[poker.StraightFlush]
	if s.JokerStraights > straights {
		return fmt.Errorf("joker straights (%d) exceed straights (%d)", s.JokerStraights, straights)
	}

	return nil
}

// Summary formats the totals as a plain text report
func (s *Statistics) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Games: %d  Hands: %d\n", s.Games, s.Hands)
	b.WriteString("\nCategory          Hands      Freq    Wins\n")
	for _, c := range poker.Categories {
		if s.Categories[c] == 0 && s.WinningCategories[c] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-16s %6d %8.2f%% %7d\n", c, s.Categories[c], 100*s.Frequency(c), s.WinningCategories[c])
	}

	if len(s.SeatWins) > 0 {
		b.WriteString("\nSeat  Wins   Rate\n")
		for seat, wins := range s.SeatWins {
			fmt.Fprintf(&b, "%4d %5d %6.2f%%\n", seat+1, wins, 100*s.WinRate(seat))
		}
	}

	fmt.Fprintf(&b, "\nJoker straights: %d\n", s.JokerStraights)
	fmt.Fprintf(&b, "Ties broken by seat order: %d\n", s.Ties)
	if s.NoWinner > 0 {
		fmt.Fprintf(&b, "Games without a winner: %d\n", s.NoWinner)
	}

	return b.String()
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
