package checkersmg

// Perft counts the complete turns reachable from the position at the given
// depth, with toMove to play. A multi-jump sequence counts as one turn, the
// same granularity at which play alternates. Depth 0 is defined as 1.
// The board is copied at every node; there is no unmake.
func Perft(b *Board, toMove Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, toMove, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(pc.bufs) {
		pc.bufs = append(pc.bufs, nil)
	}
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 64)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, toMove Color, depth int, pc *perftCtx) uint64 {
	var nodes uint64
	moves := b.GenerateMovesInto(pc.bufFor(depth), toMove)
	for _, m := range moves {
		child := *b
		child.Apply(m, toMove)
		nodes += perftTurn(&child, m, toMove, depth, pc)
	}
	return nodes
}

// perftTurn follows a turn after m was applied: a capture that can continue
// keeps the same piece jumping for the same player, otherwise the turn ends
// and counting descends one level for the opponent.
func perftTurn(b *Board, m Move, toMove Color, depth int, pc *perftCtx) uint64 {
	if m.IsCapture() {
		if caps := b.CapturesFrom(m.To()); len(caps) > 0 {
			var nodes uint64
			for _, cm := range caps {
				child := *b
				child.Apply(cm, toMove)
				nodes += perftTurn(&child, cm, toMove, depth, pc)
			}
			return nodes
		}
	}
	if depth == 1 {
		return 1
	}
	return perftRec(b, toMove.Opponent(), depth-1, pc)
}

// PerftDivide returns the node count under each first turn, keyed by the
// turn's notation with every jump spelled out ("12x19x26"). Useful for
// debugging a count mismatch against a reference.
func PerftDivide(b *Board, toMove Color, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves(toMove) {
		child := *b
		child.Apply(m, toMove)
		divideTurn(&child, m, m.String(), toMove, depth, result)
	}
	return result
}

func divideTurn(b *Board, m Move, label string, toMove Color, depth int, result map[string]uint64) {
	if m.IsCapture() {
		if caps := b.CapturesFrom(m.To()); len(caps) > 0 {
			for _, cm := range caps {
				child := *b
				child.Apply(cm, toMove)
				divideTurn(&child, cm, label+"x"+SquareString(cm.To()), toMove, depth, result)
			}
			return
		}
	}
	if depth == 1 {
		result[label] = 1
		return
	}
	result[label] = Perft(b, toMove.Opponent(), depth-1)
}
