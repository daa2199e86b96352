package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveIdentity(t *testing.T) {
	a := NewMove(4, 6, 4, 4, 0)
	b := NewMove(4, 6, 4, 4, 999)
	b.Captured = NewPiece(Pawn, Black)

	assert.True(t, a.Equals(b), "value and captured are not identity")
	assert.False(t, a.Equals(NewMove(4, 6, 4, 5, 0)))
}

func TestMoveValidity(t *testing.T) {
	assert.False(t, Move{}.IsValid(), "the zero move goes nowhere")
	assert.True(t, NewMove(4, 6, 4, 4, 0).IsValid())

	b := NewBoard()
	assert.True(t, NewMove(4, 6, 4, 4, 0).IsValidOn(b))
	assert.False(t, NewMove(4, 4, 4, 2, 0).IsValidOn(b), "empty source square")
}

func TestMoveStrings(t *testing.T) {
	m := NewMove(4, 6, 4, 4, 7)
	assert.Equal(t, "e2 to e4 value:7", m.String())
	assert.True(t, m.IsCapture() == false)
}
