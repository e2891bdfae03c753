package checkersmg

// Precomputed move target masks from each square: men index by color since
// they only travel toward the opponent's back rank, kings use the union tables.
var manSteps [2][64]uint64
var kingSteps [64]uint64

// Jump targets two diagonal squares away. The jumped square is always the
// midpoint of from and to.
var manJumps [2][64]uint64
var kingJumps [64]uint64

func init() {
	initMoveTables()
}

// initMoveTables precomputes step and jump destination bitboards for every
// square, with board-edge clipping baked in.
func initMoveTables() {
	for sq := 0; sq < 64; sq++ {
		row := sq / 8
		col := sq % 8
		for _, dc := range [2]int{-1, 1} {
			// White men move toward increasing rows, Black toward decreasing.
			if r, c := row+1, col+dc; r < 8 && c >= 0 && c < 8 {
				manSteps[White][sq] |= uint64(1) << uint(r*8+c)
			}
			if r, c := row-1, col+dc; r >= 0 && c >= 0 && c < 8 {
				manSteps[Black][sq] |= uint64(1) << uint(r*8+c)
			}
			if r, c := row+2, col+2*dc; r < 8 && c >= 0 && c < 8 {
				manJumps[White][sq] |= uint64(1) << uint(r*8+c)
			}
			if r, c := row-2, col+2*dc; r >= 0 && c >= 0 && c < 8 {
				manJumps[Black][sq] |= uint64(1) << uint(r*8+c)
			}
		}
		kingSteps[sq] = manSteps[White][sq] | manSteps[Black][sq]
		kingJumps[sq] = manJumps[White][sq] | manJumps[Black][sq]
	}
}

// Generation filters
const (
	genAll = iota
	genCaptures
	genSteps
)

func (b *Board) generateMovesFilteredInto(dst []Move, c Color, filter int) []Move {
	moves := dst[:0]
	us := int(c)
	them := 1 - us

	ownOcc := b.occupancy[us]
	oppOcc := b.occupancy[them]
	allOcc := ownOcc | oppOcc

	// Captures first: they are mandatory, so genAll stops here when any exist.
	if filter != genSteps {
		pieces := ownOcc
		for pieces != 0 {
			from := popLSB(&pieces)
			targets := manJumps[c][from]
			if b.kings&(uint64(1)<<uint(from)) != 0 {
				targets = kingJumps[from]
			}
			targets &^= allOcc
			for targets != 0 {
				to := popLSB(&targets)
				if oppOcc&(uint64(1)<<uint((from+to)/2)) == 0 {
					continue
				}
				moves = append(moves, NewMove(Square(from), Square(to)))
			}
		}
		if filter == genCaptures || len(moves) > 0 {
			return moves
		}
	}

	pieces := ownOcc
	for pieces != 0 {
		from := popLSB(&pieces)
		targets := manSteps[c][from]
		if b.kings&(uint64(1)<<uint(from)) != 0 {
			targets = kingSteps[from]
		}
		targets &^= allOcc
		for targets != 0 {
			to := popLSB(&targets)
			moves = append(moves, NewMove(Square(from), Square(to)))
		}
	}
	return moves
}

// GenerateMoves generates all legal moves for the given side with the
// forced-capture rule applied: when any capture exists only captures are
// returned, otherwise all simple moves. Ordering is an ascending scan of
// from then to, so the result is deterministic for a given position.
// It allocates a new slice; prefer GenerateMovesInto to reuse buffers in hot paths.
func (b *Board) GenerateMoves(c Color) []Move {
	return b.GenerateMovesInto(make([]Move, 0, 64), c)
}

// GenerateMovesInto appends all legal moves for the given side into dst and returns it.
// The dst slice is truncated (len=0) and reused to avoid allocations when capacity suffices.
func (b *Board) GenerateMovesInto(dst []Move, c Color) []Move {
	return b.generateMovesFilteredInto(dst, c, genAll)
}

// GenerateCapturesInto appends every capture available to the given side,
// whether or not the forced-capture rule is active.
func (b *Board) GenerateCapturesInto(dst []Move, c Color) []Move {
	return b.generateMovesFilteredInto(dst, c, genCaptures)
}

// GenerateStepsInto appends every simple move for the given side, ignoring
// the forced-capture rule. Not a legal set when captures exist.
func (b *Board) GenerateStepsInto(dst []Move, c Color) []Move {
	return b.generateMovesFilteredInto(dst, c, genSteps)
}

// GenerateCaptures returns a newly allocated slice of capture moves.
func (b *Board) GenerateCaptures(c Color) []Move {
	return b.GenerateCapturesInto(make([]Move, 0, 64), c)
}

// GenerateSteps returns a newly allocated slice of simple moves.
func (b *Board) GenerateSteps(c Color) []Move {
	return b.GenerateStepsInto(make([]Move, 0, 64), c)
}

// HasCaptures reports whether the given side has at least one capture. This
// is the forced-capture scan: when it is true, simple moves are illegal.
func (b *Board) HasCaptures(c Color) bool {
	us := int(c)
	oppOcc := b.occupancy[1-us]
	allOcc := b.occupancy[us] | oppOcc

	pieces := b.occupancy[us]
	for pieces != 0 {
		from := popLSB(&pieces)
		targets := manJumps[c][from]
		if b.kings&(uint64(1)<<uint(from)) != 0 {
			targets = kingJumps[from]
		}
		targets &^= allOcc
		for targets != 0 {
			to := popLSB(&targets)
			if oppOcc&(uint64(1)<<uint((from+to)/2)) != 0 {
				return true
			}
		}
	}
	return false
}

// HasMoves reports whether the given side has any legal move at all. Used by
// terminal detection without materializing the move list.
func (b *Board) HasMoves(c Color) bool {
	us := int(c)
	allOcc := b.occupancy[0] | b.occupancy[1]
	pieces := b.occupancy[us]
	for pieces != 0 {
		from := popLSB(&pieces)
		steps := manSteps[c][from]
		if b.kings&(uint64(1)<<uint(from)) != 0 {
			steps = kingSteps[from]
		}
		if steps&^allOcc != 0 {
			return true
		}
	}
	return b.HasCaptures(c)
}

// CapturesFrom returns the captures available to the piece on sq in ascending
// destination order; an empty or out-of-range square yields none. This is the
// query behind multi-jump continuation: after a capture, the moved piece
// alone may keep jumping.
func (b *Board) CapturesFrom(sq Square) []Move {
	return b.CapturesFromInto(nil, sq)
}

// CapturesFromInto appends the captures available to the piece on sq into dst.
func (b *Board) CapturesFromInto(dst []Move, sq Square) []Move {
	moves := dst[:0]
	if sq < 0 || sq > 63 {
		return moves
	}
	p := b.PieceAt(sq)
	if p == NoPiece {
		return moves
	}
	oppOcc := b.occupancy[p.Color().Opponent()]
	targets := manJumps[p.Color()][sq]
	if p.IsKing() {
		targets = kingJumps[sq]
	}
	targets &^= b.AllOccupancy()
	for targets != 0 {
		to := popLSB(&targets)
		if oppOcc&(uint64(1)<<uint((int(sq)+to)/2)) == 0 {
			continue
		}
		moves = append(moves, NewMove(sq, Square(to)))
	}
	return moves
}

// IsLegalStep reports whether moving the piece on from to the square to is a
// legal simple move for player: the piece must belong to player, the
// destination must be an empty diagonal neighbor, and men may only move
// toward the opponent's back rank. The forced-capture rule is not consulted
// here; GenerateMoves applies it when building the legal set.
func (b *Board) IsLegalStep(from, to Square, player Color) bool {
	if from < 0 || from > 63 || to < 0 || to > 63 {
		return false
	}
	p := b.PieceAt(from)
	if p == NoPiece || p.Color() != player {
		return false
	}
	if b.AllOccupancy()&bb(to) != 0 {
		return false
	}
	targets := manSteps[player][from]
	if p.IsKing() {
		targets = kingSteps[from]
	}
	return targets&bb(to) != 0
}

// IsLegalCapture reports whether the jump from -> to is legal for player: the
// destination must be empty two diagonal squares away with an opponent piece
// on the square in between, and men may only jump forward. A king obeys the
// same midpoint rule; it cannot jump its own piece or an empty square.
func (b *Board) IsLegalCapture(from, to Square, player Color) bool {
	if from < 0 || from > 63 || to < 0 || to > 63 {
		return false
	}
	p := b.PieceAt(from)
	if p == NoPiece || p.Color() != player {
		return false
	}
	if b.AllOccupancy()&bb(to) != 0 {
		return false
	}
	targets := manJumps[player][from]
	if p.IsKing() {
		targets = kingJumps[from]
	}
	if targets&bb(to) == 0 {
		return false
	}
	return b.occupancy[player.Opponent()]&bb((from+to)/2) != 0
}
