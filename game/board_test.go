package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ndx(col, row int) int { return col + row*8 }

func TestNewBoardOpening(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, White, b.Turn)
	assert.Equal(t, 0, b.Turns)
	assert.Len(t, b.TurnMoves, 20)
	assert.Len(t, b.OtherMoves, 20)
	assert.Empty(t, b.History)
	assert.Equal(t, DefaultMaxRepetitions, b.MaxRepetitions)

	assert.Equal(t, Rook, b.Kind(ndx(0, 0)))
	assert.Equal(t, Black, b.Color(ndx(0, 0)))
	assert.Equal(t, King, b.Kind(ndx(4, 7)))
	assert.Equal(t, White, b.Color(ndx(4, 7)))
	assert.Equal(t, Queen, b.Kind(ndx(3, 0)))
	assert.True(t, b.IsEmpty(ndx(4, 4)))
}

func TestSquareAccessors(t *testing.T) {
	b := NewEmptyBoard()

	b.SetPiece(10, NewPiece(Knight, White))
	assert.Equal(t, Knight, b.Kind(10))
	assert.Equal(t, White, b.Color(10))
	assert.False(t, b.HasMoved(10))
	assert.Equal(t, 30_000, b.Value(10))

	b.SetMoved(10, true)
	assert.True(t, b.HasMoved(10))
	b.SetPromoted(10, true)
	assert.True(t, b.IsPromoted(10))
	b.SetCheck(10, true)
	assert.True(t, b.InCheck(10))

	// clearing the kind clears everything
	b.SetKind(10, Empty)
	assert.True(t, b.IsEmpty(10))
	assert.False(t, b.HasMoved(10))
	assert.False(t, b.IsPromoted(10))
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Copy()

	mv := NewMove(4, 6, 4, 4, 0) // e2e4
	c.Execute(&mv)
	c.AdvanceTurn()

	assert.True(t, b.IsEmpty(ndx(4, 4)))
	assert.Equal(t, Pawn, b.Kind(ndx(4, 6)))
	assert.Empty(t, b.History)
	assert.Len(t, c.History, 1)
	assert.Equal(t, White, b.Turn)
	assert.Equal(t, Black, c.Turn)
}

func TestExecuteAndAdvance(t *testing.T) {
	b := NewBoard()

	mv := NewMove(4, 6, 4, 4, 0) // e2e4
	b.Execute(&mv)

	assert.True(t, b.IsEmpty(ndx(4, 6)))
	assert.Equal(t, Pawn, b.Kind(ndx(4, 4)))
	assert.True(t, b.HasMoved(ndx(4, 4)))
	require.Len(t, b.History, 1)
	assert.True(t, b.LastMove().Equals(mv))

	b.AdvanceTurn()
	assert.Equal(t, Black, b.Turn)
	assert.Equal(t, 1, b.Turns)
	assert.Len(t, b.TurnMoves, 20)
	assert.Equal(t, len(b.History), b.Turns)
}

func TestExecuteRecordsCapture(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(ndx(3, 4), NewPiece(Rook, White))
	b.SetPiece(ndx(3, 0), NewPiece(Knight, Black))
	b.GenerateMoveLists()

	mv := NewMove(3, 4, 3, 0, Knight.Value())
	b.Execute(&mv)

	assert.Equal(t, Knight, mv.Captured.Kind)
	assert.Equal(t, Black, mv.Captured.Color)
	require.Len(t, b.TakenByWhite, 1)
	assert.Equal(t, Knight, b.TakenByWhite[0].Kind)
	assert.Empty(t, b.TakenByBlack)
	assert.Equal(t, Rook, b.Kind(ndx(3, 0)))
}

// Reconstructing the inverse move from history and the capture log
// restores the prior grid, apart from moved flags.
func TestExecuteUndoRoundTrip(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(ndx(2, 4), NewPiece(Bishop, White))
	b.SetPiece(ndx(4, 2), NewPiece(Pawn, Black))
	b.GenerateMoveLists()

	before := *b

	mv := NewMove(2, 4, 4, 2, Pawn.Value())
	b.Execute(&mv)

	last := b.LastMove()
	undo := NewMove(last.ToCol, last.ToRow, last.FromCol, last.FromRow, 0)
	b.Execute(&undo)
	b.SetPiece(last.To(), last.Captured)

	for i := 0; i < SquareCount; i++ {
		assert.Equal(t, before.Piece(i).Kind, b.Piece(i).Kind, "square %d", i)
		if !b.IsEmpty(i) {
			assert.Equal(t, before.Piece(i).Color, b.Piece(i).Color, "square %d", i)
		}
	}
}

func TestPromotionOnFarRank(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(ndx(6, 1), Piece{Kind: Pawn, Color: White, Moved: true})
	b.GenerateMoveLists()

	mv := NewMove(6, 1, 6, 0, 0)
	b.Execute(&mv)

	assert.Equal(t, Queen, b.Kind(ndx(6, 0)))
	assert.True(t, b.IsPromoted(ndx(6, 0)))
	assert.Equal(t, White, b.Color(ndx(6, 0)))
}

func TestKingInCheck(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(ndx(4, 7), NewPiece(King, White))
	b.SetPiece(ndx(4, 0), NewPiece(King, Black))
	b.SetPiece(ndx(4, 1), NewPiece(Queen, White))
	b.GenerateMoveLists()

	assert.True(t, b.KingInCheck(Black))
	assert.False(t, b.KingInCheck(White))
	assert.True(t, b.InCheck(ndx(4, 0)))
	assert.False(t, b.InCheck(ndx(4, 7)))
}

func TestCheckFlagClearsWhenEscaped(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(ndx(4, 7), NewPiece(King, White))
	b.SetPiece(ndx(0, 0), NewPiece(King, Black))
	b.SetPiece(ndx(4, 0), NewPiece(Rook, Black))
	b.GenerateMoveLists()
	require.True(t, b.KingInCheck(White))

	mv := NewMove(4, 7, 3, 7, 0)
	b.Execute(&mv)
	b.AdvanceTurn()

	assert.False(t, b.KingInCheck(White))
	assert.False(t, b.InCheck(ndx(3, 7)))
}

func TestDrawsByRepetition(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPiece(ndx(7, 7), NewPiece(King, White))
	b.SetPiece(ndx(7, 0), NewPiece(King, Black))
	b.SetPiece(ndx(3, 7), NewPiece(Queen, White))
	b.SetPiece(ndx(3, 0), NewPiece(Queen, Black))
	b.GenerateMoveLists()

	cycle := []Move{
		NewMove(3, 7, 3, 6, 0), // white queen d1-d2
		NewMove(3, 0, 3, 1, 0), // black queen d8-d7
		NewMove(3, 6, 3, 7, 0), // white queen d2-d1
		NewMove(3, 1, 3, 0, 0), // black queen d7-d8
	}
	candidate := cycle[0]

	play := func() {
		for _, m := range cycle {
			mv := m
			b.Execute(&mv)
		}
	}

	play()
	play()
	assert.False(t, b.DrawsByRepetition(candidate), "two repetitions are not a draw")

	play()
	assert.True(t, b.DrawsByRepetition(candidate), "three repetitions draw")
}

func TestDrawsByRepetitionIgnoresOtherMoves(t *testing.T) {
	b := NewBoard()
	mv := NewMove(4, 6, 4, 4, 0)
	b.Execute(&mv)
	assert.False(t, b.DrawsByRepetition(NewMove(3, 6, 3, 4, 0)))
}

func TestLastMoveOnFreshBoard(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.LastMove().IsValid())
}
