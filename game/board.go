package game

// SquareCount is the number of squares on the board.
const SquareCount = 64

// DefaultMaxRepetitions is the repetition-draw threshold applied to a
// fresh board.
const DefaultMaxRepetitions = 3

// Board is a full position: the 8x8 grid plus everything needed to
// continue the game from it. Square 0 is a8 (black's back rank),
// square 63 is h1; the index is col + row*8.
//
// Boards are cheap values. The search copies one for every trial move
// and never shares a copy mutably, so none of the methods lock.
type Board struct {
	squares [SquareCount]Piece

	// Turn is the color to move next; Turns counts half-moves made.
	Turn  Color
	Turns int

	// TurnMoves and OtherMoves are regenerated by AdvanceTurn: the
	// legal (king-safe) moves for the side to move and for its
	// opponent, sorted best-first.
	TurnMoves  []Move
	OtherMoves []Move

	// TakenByWhite and TakenByBlack log captures in order.
	TakenByWhite []Piece
	TakenByBlack []Piece

	// History holds every executed move, oldest first.
	History []Move

	MaxRepetitions int
}

// NewBoard returns the standard opening position with white to move
// and both move lists generated.
func NewBoard() *Board {
	b := NewEmptyBoard()

	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < 8; col++ {
		b.squares[col+0*8] = NewPiece(back[col], Black)
		b.squares[col+1*8] = NewPiece(Pawn, Black)
		b.squares[col+6*8] = NewPiece(Pawn, White)
		b.squares[col+7*8] = NewPiece(back[col], White)
	}

	b.GenerateMoveLists()
	return b
}

// NewEmptyBoard returns a board with no pieces, white to move. The
// caller places pieces and then calls GenerateMoveLists.
func NewEmptyBoard() *Board {
	return &Board{Turn: White, MaxRepetitions: DefaultMaxRepetitions}
}

// Copy returns a deep, observationally independent copy.
func (b *Board) Copy() *Board {
	c := *b
	c.TurnMoves = append([]Move(nil), b.TurnMoves...)
	c.OtherMoves = append([]Move(nil), b.OtherMoves...)
	c.TakenByWhite = append([]Piece(nil), b.TakenByWhite...)
	c.TakenByBlack = append([]Piece(nil), b.TakenByBlack...)
	c.History = append([]Move(nil), b.History...)
	return &c
}

// Piece returns the occupant of a square.
func (b *Board) Piece(ndx int) Piece { return b.squares[ndx] }

// SetPiece replaces the occupant of a square.
func (b *Board) SetPiece(ndx int, p Piece) { b.squares[ndx] = p }

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(ndx int) bool { return b.squares[ndx].IsEmpty() }

// Kind returns the piece type on a square.
func (b *Board) Kind(ndx int) Kind { return b.squares[ndx].Kind }

// Color returns the side of the piece on a square.
func (b *Board) Color(ndx int) Color { return b.squares[ndx].Color }

// HasMoved reports the moved flag of a square.
func (b *Board) HasMoved(ndx int) bool { return b.squares[ndx].Moved }

// InCheck reports the check flag of a square (kings only).
func (b *Board) InCheck(ndx int) bool { return b.squares[ndx].Check }

// IsPromoted reports whether the square holds a promoted pawn.
func (b *Board) IsPromoted(ndx int) bool { return b.squares[ndx].Promoted }

// Value returns the material worth of the piece on a square.
func (b *Board) Value(ndx int) int { return b.squares[ndx].Value() }

// SetKind changes the piece type on a square. Setting Empty clears
// the whole square.
func (b *Board) SetKind(ndx int, k Kind) {
	if k == Empty {
		b.squares[ndx] = Piece{}
		return
	}
	b.squares[ndx].Kind = k
}

// SetColor changes the side of the piece on a square.
func (b *Board) SetColor(ndx int, c Color) { b.squares[ndx].Color = c }

// SetMoved changes the moved flag of a square.
func (b *Board) SetMoved(ndx int, moved bool) { b.squares[ndx].Moved = moved }

// SetCheck changes the check flag of a square.
func (b *Board) SetCheck(ndx int, check bool) { b.squares[ndx].Check = check }

// SetPromoted changes the promoted flag of a square.
func (b *Board) SetPromoted(ndx int, promoted bool) { b.squares[ndx].Promoted = promoted }

// LastMove returns the most recently executed move, or the zero Move
// when no move has been made.
func (b *Board) LastMove() Move {
	if len(b.History) == 0 {
		return Move{}
	}
	return b.History[len(b.History)-1]
}

// Execute applies the move to the board in place. The captured piece,
// if any, is recorded on the move and appended to the mover's capture
// log, and the move is appended to the history. Castling relocates
// the rook; a pawn reaching the far rank becomes a queen.
//
// Execute does not switch sides or refresh the move lists; that is
// AdvanceTurn's job.
func (b *Board) Execute(m *Move) {
	from, to := m.From(), m.To()
	mover := b.squares[from]

	if mover.Kind == Pawn && m.FromCol != m.ToCol && b.IsEmpty(to) {
		// En passant: the victim sits beside the pawn, on the
		// destination file at the source rank.
		victim := m.ToCol + m.FromRow*8
		m.Captured = b.squares[victim]
		b.logCapture(mover.Color, b.squares[victim])
		b.squares[victim] = Piece{}
	} else if !b.IsEmpty(to) {
		m.Captured = b.squares[to]
		b.logCapture(mover.Color, b.squares[to])
	}

	mover.Moved = true
	b.squares[to] = mover
	b.squares[from] = Piece{}

	if mover.Kind == King && abs(m.ToCol-m.FromCol) == 2 {
		b.castleRook(m)
	}

	if mover.Kind == Pawn && (m.ToRow == 0 || m.ToRow == 7) {
		b.squares[to].Kind = Queen
		b.squares[to].Promoted = true
	}

	b.History = append(b.History, *m)
}

// castleRook moves the rook half of a castling move. The king's
// destination file decides which rook: c-file means the a-file rook
// lands on d, g-file means the h-file rook lands on f.
func (b *Board) castleRook(m *Move) {
	row := m.ToRow
	var rookFrom, rookTo int
	if m.ToCol < m.FromCol {
		rookFrom, rookTo = 0+row*8, 3+row*8
	} else {
		rookFrom, rookTo = 7+row*8, 5+row*8
	}
	rook := b.squares[rookFrom]
	rook.Moved = true
	b.squares[rookTo] = rook
	b.squares[rookFrom] = Piece{}
}

func (b *Board) logCapture(by Color, p Piece) {
	if by == White {
		b.TakenByWhite = append(b.TakenByWhite, p)
	} else {
		b.TakenByBlack = append(b.TakenByBlack, p)
	}
}

// AdvanceTurn hands the move to the other player: it bumps the
// half-move counter, flips Turn and regenerates both move lists so
// that TurnMoves belongs to the new side to move.
func (b *Board) AdvanceTurn() {
	b.Turns++
	b.Turn = b.Turn.Other()
	b.GenerateMoveLists()
}

// GenerateMoveLists refreshes TurnMoves and OtherMoves for the
// current position and updates the check flag on both kings.
func (b *Board) GenerateMoveLists() {
	b.TurnMoves = b.GenerateMovesSorted(b.Turn)
	b.OtherMoves = b.GenerateMovesSorted(b.Turn.Other())

	for _, side := range [2]Color{White, Black} {
		if king := b.kingSquare(side); king >= 0 {
			b.squares[king].Check = b.KingInCheck(side)
		}
	}
}

// KingInCheck reports whether any unfiltered opponent move lands on
// the side's king square.
func (b *Board) KingInCheck(side Color) bool {
	king := b.kingSquare(side)
	if king < 0 {
		return false
	}
	for _, m := range b.GenerateMoves(side.Other(), false) {
		if m.To() == king {
			return true
		}
	}
	return false
}

func (b *Board) kingSquare(side Color) int {
	for ndx := 0; ndx < SquareCount; ndx++ {
		p := b.squares[ndx]
		if p.Kind == King && p.Color == side {
			return ndx
		}
	}
	return -1
}

// DrawsByRepetition reports whether playing the candidate move would
// trigger the repetition rule: the candidate already appears
// MaxRepetitions or more times among the last 2^(MaxRepetitions+1)
// history entries. Only the move's squares matter for the comparison.
func (b *Board) DrawsByRepetition(candidate Move) bool {
	return b.drawsByRepetition(candidate, b.MaxRepetitions)
}

func (b *Board) drawsByRepetition(candidate Move, limit int) bool {
	if limit <= 0 {
		return false
	}
	window := 1 << uint(limit+1)
	start := len(b.History) - window
	if start < 0 {
		start = 0
	}
	count := 0
	for _, past := range b.History[start:] {
		if past.Equals(candidate) {
			count++
		}
	}
	return count >= limit
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
