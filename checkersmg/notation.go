package checkersmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrInvalidMove   = errors.New("invalid move notation")
	ErrInvalidSquare = errors.New("invalid square")
)

// FENStartPos is the position string for the standard initial setup.
const FENStartPos = "W:W1,2,3,4,5,6,7,8,9,10,11,12:B21,22,23,24,25,26,27,28,29,30,31,32"

// Numeric notation numbers the 32 dark squares 1-32, ascending from White's
// back rank. Each row holds four playable squares, so the number is derived
// directly from row and column.

// PDNFromSquare returns the numeric notation (1-32) for a dark square, or 0
// for squares outside the playable grid.
func PDNFromSquare(sq Square) int {
	if sq < 0 || sq > 63 || darkSquares&bb(sq) == 0 {
		return 0
	}
	return int(sq)/8*4 + int(sq)%8/2 + 1
}

// SquareFromPDN maps numeric notation (1-32) back to a board square.
func SquareFromPDN(n int) (Square, error) {
	if n < 1 || n > 32 {
		return NoSquare, fmt.Errorf("%w: %d not in 1..32", ErrInvalidSquare, n)
	}
	row := (n - 1) / 4
	col := (n - 1) % 4 * 2
	if row%2 == 1 {
		col++
	}
	return Square(row*8 + col), nil
}

// IsDarkSquare reports whether the square is on the playable half of the grid.
func IsDarkSquare(sq Square) bool {
	return sq >= 0 && sq <= 63 && darkSquares&bb(sq) != 0
}

// SquareString renders a square for human-facing messages: its number on the
// playable grid, otherwise coordinates such as "c4".
func SquareString(sq Square) string {
	if n := PDNFromSquare(sq); n != 0 {
		return strconv.Itoa(n)
	}
	if sq < 0 || sq > 63 {
		return strconv.Itoa(int(sq))
	}
	return squareCoords(sq)
}

// ParseMove converts numeric move notation ("11-15", "11x18") into a Move.
// The separator is cosmetic on input: whether a move captures is decided by
// the squares, not the punctuation.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.ToLower(strings.TrimSpace(movestr))
	sep := strings.IndexAny(movestr, "-x")
	if sep <= 0 || sep == len(movestr)-1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, movestr)
	}
	fromN, err := strconv.Atoi(movestr[:sep])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, movestr)
	}
	toN, err := strconv.Atoi(movestr[sep+1:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, movestr)
	}
	from, err := SquareFromPDN(fromN)
	if err != nil {
		return 0, err
	}
	to, err := SquareFromPDN(toN)
	if err != nil {
		return 0, err
	}
	return NewMove(from, to), nil
}

// ParseFEN parses a position string such as "B:W18,22,K25:B9,K12" and returns
// the board plus the side to move. The two piece lists may appear in either
// order; kings carry a K prefix and squares use numeric notation.
func ParseFEN(fen string) (*Board, Color, error) {
	fields := strings.Split(strings.TrimSpace(fen), ":")
	if len(fields) != 3 {
		return nil, White, fmt.Errorf("%w: expected 3 colon-separated fields", ErrInvalidFEN)
	}

	var turn Color
	switch fields[0] {
	case "W", "w":
		turn = White
	case "B", "b":
		turn = Black
	default:
		return nil, White, fmt.Errorf("%w: side to move must be W or B", ErrInvalidFEN)
	}

	board := &Board{}
	var seen [2]bool
	for _, field := range fields[1:] {
		if field == "" {
			return nil, White, fmt.Errorf("%w: empty piece list field", ErrInvalidFEN)
		}
		var color Color
		switch field[0] {
		case 'W', 'w':
			color = White
		case 'B', 'b':
			color = Black
		default:
			return nil, White, fmt.Errorf("%w: piece list must start with W or B", ErrInvalidFEN)
		}
		if seen[color] {
			return nil, White, fmt.Errorf("%w: duplicate %v piece list", ErrInvalidFEN, color)
		}
		seen[color] = true

		rest := field[1:]
		if rest == "" {
			// A side may have no pieces; the position parses as already won.
			continue
		}
		for _, item := range strings.Split(rest, ",") {
			pt := PieceTypeMan
			if item != "" && (item[0] == 'K' || item[0] == 'k') {
				pt = PieceTypeKing
				item = item[1:]
			}
			n, err := strconv.Atoi(item)
			if err != nil {
				return nil, White, fmt.Errorf("%w: bad square %q", ErrInvalidFEN, item)
			}
			sq, err := SquareFromPDN(n)
			if err != nil {
				return nil, White, fmt.Errorf("%w: square %d not in 1..32", ErrInvalidFEN, n)
			}
			if !board.IsEmpty(sq) {
				return nil, White, fmt.Errorf("%w: square %d listed twice", ErrInvalidFEN, n)
			}
			board.SetPiece(sq, PieceFromType(color, pt))
		}
	}
	return board, turn, nil
}

// MustParseFEN is ParseFEN for known-good strings; it panics on error.
func MustParseFEN(fen string) (*Board, Color) {
	b, turn, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b, turn
}

// ToFEN produces the position string for the board with the given side to
// move. Piece lists are emitted in ascending square order with a K prefix for
// kings. Only positions on the playable grid round-trip; squares off it have
// no number.
func (b *Board) ToFEN(turn Color) string {
	var sb strings.Builder
	if turn == White {
		sb.WriteByte('W')
	} else {
		sb.WriteByte('B')
	}
	sb.WriteByte(':')
	b.writePieceList(&sb, White)
	sb.WriteByte(':')
	b.writePieceList(&sb, Black)
	return sb.String()
}

func (b *Board) writePieceList(sb *strings.Builder, c Color) {
	if c == White {
		sb.WriteByte('W')
	} else {
		sb.WriteByte('B')
	}
	first := true
	pieces := b.occupancy[int(c)]
	for pieces != 0 {
		sq := popLSB(&pieces)
		if !first {
			sb.WriteByte(',')
		}
		first = false
		if b.kings&(uint64(1)<<uint(sq)) != 0 {
			sb.WriteByte('K')
		}
		sb.WriteString(strconv.Itoa(PDNFromSquare(Square(sq))))
	}
}
