package poker

// PlayerHand pairs a player name with the cards they hold
type PlayerHand struct {
	Name  string
	Cards []Card
}

// Result is the winning player and the evaluation that won
type Result struct {
	Name string
	Hand EvaluatedHand
}

// ResolveWinner evaluates every hand in order and returns the best one. A later
// player only takes the lead with a strictly better hand, so exact ties go to
// whoever came first. The boolean is false when there are no players.
func ResolveWinner(hands []PlayerHand) (Result, bool) {
	return ResolveWinnerFunc(hands, nil)
}

// ResolveWinnerFunc is ResolveWinner with a callback invoked for every
// evaluation, in player order.
func ResolveWinnerFunc(hands []PlayerHand, observe func(name string, hand EvaluatedHand)) (Result, bool) {
	var (
		best  Result
		found bool
	)
	for _, ph := range hands {
		eval := Evaluate(ph.Cards)
		if observe != nil {
			observe(ph.Name, eval)
		}
		if !found || eval.Compare(best.Hand) > 0 {
			best = Result{Name: ph.Name, Hand: eval}
			found = true
		}
	}
	return best, found
}
