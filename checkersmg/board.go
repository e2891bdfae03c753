package checkersmg

import "math/bits"

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece   Piece = 0
	WhiteMan  Piece = 1
	WhiteKing Piece = 2

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..2]
	// - piece & 8 != 0 indicates Black
	BlackMan  Piece = 1 | 8
	BlackKing Piece = 2 | 8
)

// PieceType is a colorless representation of a checkers piece.
type PieceType uint8

const (
	PieceTypeNone PieceType = 0
	PieceTypeMan  PieceType = 1
	PieceTypeKing PieceType = 2
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color { return colorOf(p) }

// IsKing reports whether the piece is a crowned piece.
func (p Piece) IsKing() bool { return p.Type() == PieceTypeKing }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	switch pt {
	case PieceTypeMan:
		if color == White {
			return WhiteMan
		}
		return BlackMan
	case PieceTypeKing:
		if color == White {
			return WhiteKing
		}
		return BlackKing
	default:
		return NoPiece
	}
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Square represents a board position (0-63). Row 0 is White's back rank,
// row 7 is Black's.
type Square int

const NoSquare Square = -1

// Board square masks. The game is played on the dark squares: those whose
// row and column indices have an even sum.
const (
	darkSquares       = 0xAA55AA55AA55AA55
	whiteStartSquares = 0x000000000055AA55 // rows 0-2
	blackStartSquares = 0xAA55AA0000000000 // rows 5-7
)

// Bitboards exposes the piece bitboards for one side.
type Bitboards struct {
	Men   uint64
	Kings uint64
	All   uint64
}

// Board represents the checkers board state: one occupancy bitboard per side
// plus a single king set shared by both colors.
//
// The board carries no side-to-move; every operation that depends on whose
// turn it is takes the Color explicitly.
type Board struct {
	// Occupancy bitboards for each side (index 0 = white, 1 = black)
	occupancy [2]uint64

	// Crowned pieces of both sides (always a subset of occupancy[0]|occupancy[1])
	kings uint64
}

// NewBoard returns a board set up for the start of a game: twelve men per
// side on the dark squares of the three rows nearest each player, no kings.
func NewBoard() *Board {
	return &Board{occupancy: [2]uint64{whiteStartSquares, blackStartSquares}}
}

// ==========================
// Bitboard helpers
// ==========================

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	x := *mask & -(*mask)
	idx := bits.TrailingZeros64(x)
	*mask &= *mask - 1
	return idx
}

// ==========================
// Board occupancy helpers
// ==========================

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[0] | b.occupancy[1] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[int(c)] }

// Bitboards returns the piece bitboards for the requested side.
func (b *Board) Bitboards(color Color) Bitboards {
	all := b.occupancy[int(color)]
	kings := all & b.kings
	return Bitboards{
		Men:   all &^ kings,
		Kings: kings,
		All:   all,
	}
}

// WhiteBitboards returns White's bitboards (copy).
func (b *Board) WhiteBitboards() Bitboards { return b.Bitboards(White) }

// BlackBitboards returns Black's bitboards (copy).
func (b *Board) BlackBitboards() Bitboards { return b.Bitboards(Black) }

// PieceAt returns the piece on a square. The piece is derived from the
// bitboards; no separate placement array is kept.
func (b *Board) PieceAt(sq Square) Piece {
	bit := bb(sq)
	switch {
	case b.occupancy[White]&bit != 0:
		if b.kings&bit != 0 {
			return WhiteKing
		}
		return WhiteMan
	case b.occupancy[Black]&bit != 0:
		if b.kings&bit != 0 {
			return BlackKing
		}
		return BlackMan
	}
	return NoPiece
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool { return b.AllOccupancy()&bb(sq) == 0 }

// Count returns how many pieces the given side has on the board.
func (b *Board) Count(c Color) int { return bits.OnesCount64(b.occupancy[int(c)]) }

// colorOf returns the color of a piece. NoPiece is treated as White.
func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// typeOf returns the piece type in [1..2] with color stripped.
func typeOf(p Piece) Piece { return p & 7 }

// addPiece places a piece on an empty square and updates occupancy and kings.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.occupancy[int(colorOf(p))] |= bb(sq)
	if typeOf(p) == 2 {
		b.kings |= bb(sq)
	}
}

// removePiece removes a piece from a square and updates occupancy and kings.
func (b *Board) removePiece(sq Square) Piece {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return NoPiece
	}
	mask := ^bb(sq)
	b.occupancy[int(colorOf(p))] &= mask
	b.kings &= mask
	return p
}

// SetPiece sets a piece on a square, replacing any existing piece, and keeps state in sync.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { _ = b.removePiece(sq) }

// MovePiece moves a piece from one square to another. If a piece exists on 'to', it is captured.
func (b *Board) MovePiece(from, to Square) {
	moving := b.removePiece(from)
	// capture if any
	_ = b.removePiece(to)
	b.addPiece(to, moving)
}

// Validate checks internal consistency between the side occupancy sets and
// the king set: the owners must be disjoint and every king must sit on an
// occupied square. Returns true if consistent, false otherwise.
func (b *Board) Validate() bool {
	if b.occupancy[White]&b.occupancy[Black] != 0 {
		return false
	}
	if b.kings&^(b.occupancy[White]|b.occupancy[Black]) != 0 {
		return false
	}
	return true
}
