package checkersmg

import "strconv"

// Move encodes a checkers move in a 16-bit value. Whether a move captures is
// not stored: steps travel one row and jumps two, so the row delta decides.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift = 0 // 6 bits
	moveToShift   = 6 // 6 bits
)

// NewMove constructs a Move value from source and destination squares.
func NewMove(from, to Square) Move {
	return Move(uint16(from&0x3F) | uint16(to&0x3F)<<moveToShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint16(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint16(m) >> moveToShift) & 0x3F) }

// IsCapture reports whether the move is a jump (row delta of two).
func (m Move) IsCapture() bool {
	dr := int(m.From())/8 - int(m.To())/8
	return dr == 2 || dr == -2
}

// Midpoint returns the square jumped over by a capture. Diagonal jumps span
// exactly two rows and columns, so the midpoint is the arithmetic mean.
func (m Move) Midpoint() Square { return (m.From() + m.To()) / 2 }

// String renders the move in numeric notation: "11-15" for a step, "11x18"
// for a jump. Squares off the dark grid have no number and fall back to
// coordinates (e.g. "b3xd5").
func (m Move) String() string {
	sep := byte('-')
	if m.IsCapture() {
		sep = 'x'
	}
	fromN := PDNFromSquare(m.From())
	toN := PDNFromSquare(m.To())
	if fromN == 0 || toN == 0 {
		return squareCoords(m.From()) + string(sep) + squareCoords(m.To())
	}
	return strconv.Itoa(fromN) + string(sep) + strconv.Itoa(toN)
}

// squareCoords converts a square index to board coordinates (e.g., 0 -> "a1").
func squareCoords(sq Square) string {
	col := sq % 8
	row := sq / 8
	return string([]byte{'a' + byte(col), '1' + byte(row)})
}
