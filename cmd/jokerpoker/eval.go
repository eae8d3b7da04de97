package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/jokerpoker/internal/game"
	"github.com/lox/jokerpoker/poker"
)

// EvalCmd evaluates hands typed on the command line
type EvalCmd struct {
	Hands []string `arg:"" help:"Hands to evaluate, e.g. '5c 6d Joker 8h 9s'. Several hands are compared."`
}

func (c *EvalCmd) Run(g *Globals) error {
	_, logger, err := g.load()
	if err != nil {
		return err
	}

	display := game.NewHandDisplay(os.Stdout, !g.NoColor)
	hands := make([]poker.PlayerHand, 0, len(c.Hands))
	for i, text := range c.Hands {
		cards, err := poker.ParseCards(text)
		if err != nil {
			return err
		}
		eval := poker.Evaluate(cards)
		logger.Debug("Evaluated", "hand", i+1, "category", eval.Category.String(), "tiebreak", eval.Tiebreak)
		display.ShowEvaluation(cards, eval)
		hands = append(hands, poker.PlayerHand{Name: handName(i, text), Cards: cards})
	}

	if len(hands) > 1 {
		if result, ok := poker.ResolveWinner(hands); ok {
			display.ShowWinner(result)
		}
	}
	return nil
}

func handName(i int, text string) string {
	return fmt.Sprintf("#%d (%s)", i+1, strings.TrimSpace(text))
}
