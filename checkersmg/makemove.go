package checkersmg

// Apply executes m for side c. The caller guarantees the move is legal (a
// member of GenerateMoves for c, or of CapturesFrom mid-sequence); no
// validation is performed here. The mechanical consequences are:
//
//  1. the moving piece is relocated within c's occupancy set,
//  2. a jump removes the opponent's piece at the midpoint from every set,
//  3. king status travels with the piece, and a man reaching the far row is
//     crowned immediately, mid-sequence included.
//
// Turn bookkeeping is the controller's job; Apply touches only the board.
func (b *Board) Apply(m Move, c Color) {
	from := m.From()
	to := m.To()
	us := int(c)
	fromBB := bb(from)
	toBB := bb(to)

	b.occupancy[us] ^= fromBB | toBB
	if b.kings&fromBB != 0 {
		b.kings ^= fromBB | toBB
	}

	if m.IsCapture() {
		capBB := bb(m.Midpoint())
		b.occupancy[1-us] &^= capBB
		b.kings &^= capBB
	}

	// Promotion: White crowns on row 7, Black on row 0.
	row := int(to) / 8
	if (c == White && row == 7) || (c == Black && row == 0) {
		b.kings |= toBB
	}
}
