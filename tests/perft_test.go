package checkers_engine_test

import (
	"testing"

	myengine "checkers-engine/checkersmg"
)

func TestPerftInitialPosition(t *testing.T) {
	board, turn, err := myengine.ParseFEN(myengine.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN failed for initial position: %v", err)
	}
	if got := myengine.Perft(board, turn, 1); got != 7 {
		t.Fatalf("perft depth1: got %d want %d", got, 7)
	}
	if got := myengine.Perft(board, turn, 2); got != 49 {
		t.Fatalf("perft depth2: got %d want %d", got, 49)
	}
}

func TestPerftInitialDepth3(t *testing.T) {
	board := myengine.NewBoard()
	if got := myengine.Perft(board, myengine.White, 3); got != 302 {
		t.Fatalf("Initial depth3: got %d want %d", got, 302)
	}
}

func TestPerftInitialDeep(t *testing.T) {
	// Reference counts for the standard opening position. No man can reach
	// the far rank within these depths, so crowning plays no part yet.
	board := myengine.NewBoard()

	if got := myengine.Perft(board, myengine.White, 4); got != 1469 {
		t.Fatalf("Initial depth4: got %d want %d", got, 1469)
	}
	if got := myengine.Perft(board, myengine.White, 5); got != 7361 {
		t.Fatalf("Initial depth5: got %d want %d", got, 7361)
	}
	if got := myengine.Perft(board, myengine.White, 6); got != 36768 {
		t.Fatalf("Initial depth6: got %d want %d", got, 36768)
	}

	if testing.Short() {
		t.Skip("skipping depth 7 perft in short mode")
	}
	if got := myengine.Perft(board, myengine.White, 7); got != 179740 {
		t.Fatalf("Initial depth7: got %d want %d", got, 179740)
	}
}

func TestPerftDepthZeroIsOne(t *testing.T) {
	board := myengine.NewBoard()
	if got := myengine.Perft(board, myengine.White, 0); got != 1 {
		t.Fatalf("depth0: got %d want 1", got)
	}
}

func TestPerftCountsChainsAsOneMove(t *testing.T) {
	// The white man must take the whole 5x14x23 chain as one turn; Black
	// answers with the lone man on 29.
	fen := "W:W5:B10,19,29"
	board, turn, err := myengine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if turn != myengine.White {
		t.Fatalf("expected White to move")
	}
	if got := myengine.Perft(board, turn, 1); got != 1 {
		t.Fatalf("chain depth1: got %d want 1", got)
	}
	if got := myengine.Perft(board, turn, 2); got != 2 {
		t.Fatalf("chain depth2: got %d want 2", got)
	}
	if got := myengine.Perft(board, turn, 3); got != 4 {
		t.Fatalf("chain depth3: got %d want 4", got)
	}
	if got := myengine.Perft(board, turn, 4); got != 6 {
		t.Fatalf("chain depth4: got %d want 6", got)
	}
}

func TestPerftTerminalPositionIsZero(t *testing.T) {
	// White's lone man is wedged in the corner with both its step and its
	// jump blocked: no turns exist at any depth.
	b := &myengine.Board{}
	b.SetPiece(0, myengine.WhiteMan)
	b.SetPiece(9, myengine.BlackMan)
	b.SetPiece(18, myengine.BlackMan)
	if got := myengine.Perft(b, myengine.White, 3); got != 0 {
		t.Fatalf("blocked side perft: got %d want 0", got)
	}
}

func TestPerftDivide_InitialDepth2(t *testing.T) {
	b := myengine.NewBoard()
	div := myengine.PerftDivide(b, myengine.White, 2)
	if len(div) != 7 {
		t.Fatalf("divide length: got %d want %d", len(div), 7)
	}
	var sum uint64
	var min, max uint64
	first := true
	for _, v := range div {
		sum += v
		if first {
			min, max = v, v
			first = false
		} else {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if sum != 49 {
		t.Fatalf("divide sum: got %d want %d", sum, 49)
	}
	if min != 7 || max != 7 {
		t.Fatalf("expected all child counts to be 7, got min=%d max=%d", min, max)
	}
}

func TestPerftDivide_ChainsLabelFullSequence(t *testing.T) {
	fen := "W:W5:B10,19,29"
	b, turn, err := myengine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	div := myengine.PerftDivide(b, turn, 2)
	if len(div) != 1 {
		t.Fatalf("divide length: got %d want 1 (%v)", len(div), div)
	}
	got, ok := div["5x14x23"]
	if !ok {
		t.Fatalf("expected the full jump sequence as the divide key, got %v", div)
	}
	if got != 2 {
		t.Fatalf("divide count for 5x14x23: got %d want 2", got)
	}
}

func TestPerftDivideSumsMatchPerft(t *testing.T) {
	positions := []string{
		myengine.FENStartPos,
		"W:W5,9:B10,19,29",
		"B:W5,6:B11",
	}
	for _, fen := range positions {
		b, turn, err := myengine.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		for depth := 1; depth <= 4; depth++ {
			div := myengine.PerftDivide(b, turn, depth)
			var sum uint64
			for _, v := range div {
				sum += v
			}
			if want := myengine.Perft(b, turn, depth); sum != want {
				t.Fatalf("%q depth %d: divide sum %d != perft %d", fen, depth, sum, want)
			}
		}
	}
}
