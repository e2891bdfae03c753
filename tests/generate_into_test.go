package checkers_engine_test

import (
	"testing"

	myengine "checkers-engine/checkersmg"
)

// Ensure GenerateMovesInto reuses the provided buffer and avoids allocations when capacity suffices.
func TestGenerateMovesInto_NoAlloc(t *testing.T) {
	b, _, err := myengine.ParseFEN(myengine.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]myengine.Move, 0, 64)

	allocs := testing.AllocsPerRun(100, func() {
		buf = b.GenerateMovesInto(buf, myengine.White)
		if len(buf) != 7 {
			t.Fatalf("expected 7 moves, got %d", len(buf))
		}
		buf = buf[:0]
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs, got %f", allocs)
	}
}

func TestGenerateCapturesInto_NoAlloc(t *testing.T) {
	// Forced-jump position with exactly one capture available.
	b, _, err := myengine.ParseFEN("W:W5,9:B10")
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]myengine.Move, 0, 64)
	allocs := testing.AllocsPerRun(100, func() {
		buf = b.GenerateCapturesInto(buf, myengine.White)
		if len(buf) != 1 {
			t.Fatalf("expected 1 capture, got %d", len(buf))
		}
		buf = buf[:0]
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs, got %f", allocs)
	}
}

func TestGenerateStepsInto_NoAlloc(t *testing.T) {
	b, _, err := myengine.ParseFEN(myengine.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]myengine.Move, 0, 64)
	allocs := testing.AllocsPerRun(100, func() {
		buf = b.GenerateStepsInto(buf, myengine.Black)
		if len(buf) != 7 {
			t.Fatalf("expected 7 quiet moves in the initial position, got %d", len(buf))
		}
		buf = buf[:0]
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs, got %f", allocs)
	}
}

func TestCapturesFromInto_NoAlloc(t *testing.T) {
	b := &myengine.Board{}
	b.SetPiece(9, myengine.WhiteMan)
	b.SetPiece(18, myengine.BlackMan)

	buf := make([]myengine.Move, 0, 8)
	allocs := testing.AllocsPerRun(100, func() {
		buf = b.CapturesFromInto(buf, 9)
		if len(buf) != 1 {
			t.Fatalf("expected 1 continuation, got %d", len(buf))
		}
		buf = buf[:0]
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs, got %f", allocs)
	}
}
