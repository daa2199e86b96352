package game

import "math"

// Color is the side a piece belongs to. White moves first.
type Color uint8

const (
	Black Color = iota
	White
)

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind identifies a piece type. The numeric tags matter beyond
// identity: the evaluator weighs center proximity by the kind index,
// so Pawn..King stay 1..6.
type Kind uint8

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// MaxValue and MinValue bound every score the evaluator or the search
// can produce. They sit at half the int32 range so that small depth
// adjustments can be added to them without overflow.
const (
	MaxValue = math.MaxInt32 / 2
	MinValue = -MaxValue
)

// kindValues is indexed by Kind.
var kindValues = [7]int{
	0,        // empty square
	10_000,   // pawn
	30_000,   // knight
	30_000,   // bishop
	50_000,   // rook
	90_000,   // queen
	MaxValue, // king
}

// Value returns the material worth of the kind.
func (k Kind) Value() int { return kindValues[k] }

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "empty"
}

// Piece is the occupant of one board square. An empty square is the
// zero Piece; its remaining fields are meaningless.
type Piece struct {
	Kind     Kind
	Color    Color
	Moved    bool
	Check    bool // kings only
	Promoted bool // pawns promoted to queens
}

// NewPiece returns an unmoved piece of the given kind and color.
func NewPiece(kind Kind, color Color) Piece {
	return Piece{Kind: kind, Color: color}
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool { return p.Kind == Empty }

// Value returns the material worth of the piece.
func (p Piece) Value() int { return p.Kind.Value() }

var (
	blackSymbols = [7]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}
	whiteSymbols = [7]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
)

// Symbol returns the one-letter notation for the piece, upper-case
// for white and lower-case for black, '.' for an empty square. The
// same alphabet is used by the board renderer, the FEN encoder and
// the move cache key.
func (p Piece) Symbol() byte {
	if p.Color == White {
		return whiteSymbols[p.Kind]
	}
	return blackSymbols[p.Kind]
}
