// Package eval scores a static position. Positive scores favor
// white, negative favor black. The score is the sum of three
// independent contributions selected by a filter: raw material, a
// bonus for pieces standing near the center, and the mobility
// difference between the two move lists.
package eval

import "github.com/alphamin/game"

// Filter selects which contributions take part in the score.
type Filter uint

const (
	Material Filter = 1 << iota
	Center
	Mobility

	All = Material | Center | Mobility
)

const (
	centerBonus   = 5
	mobilityBonus = 3
)

// Evaluate scores the board under the given filter.
func Evaluate(b *game.Board, filter Filter) int {
	score := 0

	for ndx := 0; ndx < game.SquareCount; ndx++ {
		p := b.Piece(ndx)
		if p.IsEmpty() {
			continue
		}
		sign := 1
		if p.Color == game.Black {
			sign = -1
		}

		if filter&Material != 0 {
			score += sign * p.Value()
		}
		if filter&Center != 0 {
			score += sign * centerDistance(ndx, p.Kind) * centerBonus
		}
	}

	if filter&Mobility != 0 {
		score += (len(b.TurnMoves) - len(b.OtherMoves)) * mobilityBonus
	}

	return score
}

// centerDistance weighs how far a piece has pushed toward the middle
// of the board, scaled by its kind index. Kings are excluded; the
// center is no place for them.
func centerDistance(ndx int, kind game.Kind) int {
	if kind == game.King {
		return 0
	}
	dx := ndx % 8
	if dx > 3 {
		dx = 7 - dx
	}
	dy := ndx / 8
	if dy > 3 {
		dy = 7 - dy
	}
	return (dx + dy) * int(kind)
}
