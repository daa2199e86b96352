package game

import "sort"

// GenerateMoves walks every square owned by side and collects the
// pseudo-legal moves of the piece found there. With filterSuicidal
// set, moves that would leave the mover's own king attacked are
// removed; this is the legal move list the rest of the engine runs
// on. With it clear the raw list is returned, which is what check
// detection needs.
func (b *Board) GenerateMoves(side Color, filterSuicidal bool) []Move {
	var moves []Move

	for ndx := 0; ndx < SquareCount; ndx++ {
		p := b.squares[ndx]
		if p.IsEmpty() || p.Color != side {
			continue
		}
		col, row := ndx%8, ndx/8
		switch p.Kind {
		case Pawn:
			b.pawnMoves(&moves, col, row)
		case Knight:
			b.knightMoves(&moves, col, row)
		case Bishop:
			b.sliderMoves(&moves, col, row, bishopRays)
		case Rook:
			b.sliderMoves(&moves, col, row, rookRays)
		case Queen:
			b.sliderMoves(&moves, col, row, bishopRays)
			b.sliderMoves(&moves, col, row, rookRays)
		case King:
			b.kingMoves(&moves, col, row)
		}
	}

	if filterSuicidal {
		moves = b.filterSuicidal(moves, side)
	}
	return moves
}

// GenerateMovesSorted returns the legal moves for side ordered
// best-first: captures of valuable pieces lead, ties keep generation
// order.
func (b *Board) GenerateMovesSorted(side Color) []Move {
	moves := b.GenerateMoves(side, true)
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Value > moves[j].Value
	})
	return moves
}

// filterSuicidal drops every candidate that exposes the mover's own
// king: each move is tried on a copy of the board and rejected if any
// opponent reply could land on the king square.
func (b *Board) filterSuicidal(moves []Move, side Color) []Move {
	kept := moves[:0]
	for _, m := range moves {
		trial := b.Copy()
		trial.Execute(&m)
		if !trial.KingInCheck(side) {
			kept = append(kept, m)
		}
	}
	return kept
}

func validSpot(col, row int) bool {
	return col >= 0 && col < 8 && row >= 0 && row < 8
}

// addMoveIfValid appends the move when the destination is on the
// board and not occupied by the mover's own side. The move's value is
// the worth of whatever sits on the target square.
func (b *Board) addMoveIfValid(moves *[]Move, fromCol, fromRow, toCol, toRow int) bool {
	if !validSpot(toCol, toRow) {
		return false
	}
	to := toCol + toRow*8
	from := fromCol + fromRow*8
	if !b.IsEmpty(to) && b.Color(to) == b.Color(from) {
		return false
	}
	*moves = append(*moves, NewMove(fromCol, fromRow, toCol, toRow, b.Value(to)))
	return true
}

// pawnMoves: single and double advances onto empty squares, diagonal
// captures, and en passant when the adjacent opponent pawn just
// double-pushed. Promotion is handled by Execute, not here.
func (b *Board) pawnMoves(moves *[]Move, col, row int) {
	from := col + row*8
	p := b.squares[from]
	dir := 1 // black advances toward row 7
	if p.Color == White {
		dir = -1
	}

	if validSpot(col, row+dir) && b.IsEmpty(col+(row+dir)*8) {
		*moves = append(*moves, NewMove(col, row, col, row+dir, 0))

		if !p.Moved && validSpot(col, row+2*dir) && b.IsEmpty(col+(row+2*dir)*8) {
			*moves = append(*moves, NewMove(col, row, col, row+2*dir, 0))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		tc, tr := col+dc, row+dir
		if !validSpot(tc, tr) {
			continue
		}
		to := tc + tr*8
		if !b.IsEmpty(to) && b.Color(to) != p.Color {
			*moves = append(*moves, NewMove(col, row, tc, tr, b.Value(to)))
		}
	}

	b.enPassantMoves(moves, col, row, dir)
}

// enPassantMoves adds the capture of a neighbouring opponent pawn
// that arrived by a two-square advance on the immediately previous
// move. The capture lands on the square that pawn skipped.
func (b *Board) enPassantMoves(moves *[]Move, col, row, dir int) {
	last := b.LastMove()
	if !last.IsValid() {
		return
	}
	mover := b.squares[col+row*8]

	for _, dc := range [2]int{-1, 1} {
		ac := col + dc
		if !validSpot(ac, row) {
			continue
		}
		adjacent := b.squares[ac+row*8]
		if adjacent.Kind != Pawn || adjacent.Color == mover.Color {
			continue
		}
		if last.To() != ac+row*8 || abs(last.ToRow-last.FromRow) != 2 {
			continue
		}
		if validSpot(ac, row+dir) && b.IsEmpty(ac+(row+dir)*8) {
			*moves = append(*moves, NewMove(col, row, ac, row+dir, Pawn.Value()))
		}
	}
}

var knightJumps = [8][2]int{
	{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
	{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
}

func (b *Board) knightMoves(moves *[]Move, col, row int) {
	for _, d := range knightJumps {
		b.addMoveIfValid(moves, col, row, col+d[0], row+d[1])
	}
}

var (
	rookRays   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopRays = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// sliderMoves extends each ray until it leaves the board, stops at an
// own piece, or captures an opponent piece and stops.
func (b *Board) sliderMoves(moves *[]Move, col, row int, rays [4][2]int) {
	for _, ray := range rays {
		for step := 1; ; step++ {
			tc, tr := col+ray[0]*step, row+ray[1]*step
			if !validSpot(tc, tr) {
				break
			}
			to := tc + tr*8
			if b.IsEmpty(to) {
				b.addMoveIfValid(moves, col, row, tc, tr)
				continue
			}
			if b.Color(to) != b.Color(col+row*8) {
				b.addMoveIfValid(moves, col, row, tc, tr)
			}
			break
		}
	}
}

var kingSteps = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// kingMoves: the eight single steps plus castling. Castling asks only
// that king and rook are unmoved and the squares between them empty;
// castling into check is caught later by the suicidal-move filter.
func (b *Board) kingMoves(moves *[]Move, col, row int) {
	for _, d := range kingSteps {
		b.addMoveIfValid(moves, col, row, col+d[0], row+d[1])
	}

	king := b.squares[col+row*8]
	if king.Moved {
		return
	}

	// queen-side: a-file rook, three empty squares between
	if validSpot(col-2, row) && b.castleRookReady(0, row, king.Color) &&
		b.IsEmpty(1+row*8) && b.IsEmpty(2+row*8) && b.IsEmpty(3+row*8) {
		*moves = append(*moves, NewMove(col, row, col-2, row, 0))
	}
	// king-side: h-file rook, two empty squares between
	if validSpot(col+2, row) && b.castleRookReady(7, row, king.Color) &&
		b.IsEmpty(5+row*8) && b.IsEmpty(6+row*8) {
		*moves = append(*moves, NewMove(col, row, col+2, row, 0))
	}
}

func (b *Board) castleRookReady(col, row int, side Color) bool {
	rook := b.squares[col+row*8]
	return rook.Kind == Rook && rook.Color == side && !rook.Moved
}
