package game

// Result is the outcome of a finished match. Winner and Loser are nil
// when a blocked game ends with equal pip sums.
type Result struct {
	Winner  *Player
	Loser   *Player
	Points  int
	Blocked bool
}

func (r Result) Draw() bool {
	return r.Winner == nil
}

// Settle decides the match and credits the winner once; later calls
// return the same Result without touching scores again.
//
// A player who emptied their hand scores the opponent's remaining pips.
// Otherwise the lower pip sum wins the difference between the sums.
func (e *Engine) Settle() Result {
	if e.result != nil {
		return *e.result
	}
	first, second := e.players[0], e.players[1]
	var result Result
	switch {
	case first.hand.Empty():
		result = Result{Winner: first, Loser: second, Points: second.hand.Pips()}
	case second.hand.Empty():
		result = Result{Winner: second, Loser: first, Points: first.hand.Pips()}
	default:
		firstPips, secondPips := first.hand.Pips(), second.hand.Pips()
		result = Result{Blocked: true}
		if firstPips < secondPips {
			result.Winner, result.Loser, result.Points = first, second, secondPips-firstPips
		} else if secondPips < firstPips {
			result.Winner, result.Loser, result.Points = second, first, firstPips-secondPips
		}
	}
	if result.Winner != nil {
		result.Winner.addScore(result.Points)
	}
	e.result = &result
	return result
}
