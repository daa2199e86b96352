package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOpening(t *testing.T) {
	lines := Render(NewBoard())
	require.Len(t, lines, 9)

	assert.Equal(t, "8  r  n  b  q  k  b  n  r ", lines[0])
	assert.Equal(t, "7  p  p  p  p  p  p  p  p ", lines[1])
	assert.Equal(t, "2  P  P  P  P  P  P  P  P ", lines[6])
	assert.Equal(t, "1  R  N  B  Q  K  B  N  R ", lines[7])
	assert.Equal(t, "   A  B  C  D  E  F  G  H", lines[8])
}

func TestRenderCheckeredEmptySquares(t *testing.T) {
	lines := Render(NewBoard())
	// rank 6 is row 2: a6 is (0,2), a light square rendered '.'
	assert.Equal(t, "6  .     .     .     .    ", lines[2])
	assert.Equal(t, "5     .     .     .     . ", lines[3])
}

func TestRenderIsDeterministic(t *testing.T) {
	a := Render(NewBoard())
	b := Render(NewBoard())
	assert.Equal(t, a, b)

	moved := NewBoard()
	mv := NewMove(4, 6, 4, 4, 0)
	moved.Execute(&mv)
	assert.NotEqual(t, a, Render(moved))
}
