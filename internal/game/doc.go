// Package game seats players around a deck, deals to them and picks a winner.
//
// # Basic Usage
//
//	g, err := game.NewGame([]string{"Dean", "Alice", "Bob"}, game.WithJokers(true))
//	if err != nil {
//	    return err
//	}
//	if err := g.Deal(3); err != nil {
//	    return err
//	}
//	g.RemovePlayer("Bob") // Bob's cards go back into the deck
//	result, ok := g.DetermineWinner()
//
// # Deterministic Testing
//
// Pass a seeded source so the shuffle is reproducible:
//
//	g, err := game.NewGame(names, game.WithRNG(randutil.New(42)))
//
// Or hand over a prepared deck, which is used without shuffling:
//
//	deck := poker.NewDeck(false, nil)
//	g, err := game.NewGame(names, game.WithDeck(deck))
//
// Hand evaluation and winner selection live in the poker package; a Game only
// decides which cards each player holds.
package game
