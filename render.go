package main

import (
	"fmt"
	"strings"

	"checkers-engine/checkersmg"
)

// pieceGlyph maps a piece to its board letter: men in lower case, kings in
// upper case.
func pieceGlyph(p checkersmg.Piece) byte {
	switch p {
	case checkersmg.WhiteMan:
		return 'w'
	case checkersmg.WhiteKing:
		return 'W'
	case checkersmg.BlackMan:
		return 'b'
	case checkersmg.BlackKing:
		return 'B'
	}
	return '.'
}

// renderBoard draws the position with Black at the top, the way the board
// faces White.
func renderBoard(b checkersmg.Board) string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for row := 7; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d |", row+1)
		for col := 0; col < 8; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(pieceGlyph(b.PieceAt(checkersmg.Square(row*8 + col))))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	return sb.String()
}

// renderNumbering draws the numeric labels of the playable squares in the
// same orientation as renderBoard. Moves are entered with these numbers.
func renderNumbering() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d |", row+1)
		for col := 0; col < 8; col++ {
			sq := checkersmg.Square(row*8 + col)
			if n := checkersmg.PDNFromSquare(sq); n != 0 {
				fmt.Fprintf(&sb, " %2d", n)
			} else {
				sb.WriteString("  .")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("     a  b  c  d  e  f  g  h\n")
	return sb.String()
}
