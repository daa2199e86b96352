package minimax

import "github.com/alphamin/game"

// BestMove tracks the best move found so far for one side, along with
// the number of positions examined to find it.
type BestMove struct {
	Move          game.Move
	Value         int
	MovesExamined int

	// index is the move's place in sorted root order, used to break
	// ties deterministically; -1 until a result has been taken.
	index int
}

// NewBestMove starts the tracker at the worst possible score for the
// given side so that any real result replaces it.
func NewBestMove(maximize bool) BestMove {
	return BestMove{Value: worstValue(maximize), index: -1}
}

func worstValue(maximize bool) int {
	if maximize {
		return game.MinValue
	}
	return game.MaxValue
}
