package bench

import (
	"testing"

	eng "checkers-engine/checkersmg"
)

const (
	// Mid-game melee with jumps available to both sides.
	fenMelee = "W:W14,15,18,19:B21,22,23,26,27,30"
	// Kings only, exercising the four-direction move rays.
	fenKings = "B:WK6,K25:BK14,K19,K23"
)

func benchGenerateMoves(b *testing.B, fen string) {
	board, turn, err := eng.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]eng.Move, 0, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMovesInto(buf, turn)
		buf = buf[:0]
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, eng.FENStartPos)
}

func BenchmarkGenerateMoves_Melee(b *testing.B) {
	benchGenerateMoves(b, fenMelee)
}

func BenchmarkGenerateMoves_Kings(b *testing.B) {
	benchGenerateMoves(b, fenKings)
}

func benchCaptures(b *testing.B, fen string) {
	board, turn, err := eng.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]eng.Move, 0, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateCapturesInto(buf, turn)
		buf = buf[:0]
	}
}

func BenchmarkGenerateCaptures_Melee(b *testing.B) {
	benchCaptures(b, fenMelee)
}

func benchSteps(b *testing.B, fen string) {
	board, turn, err := eng.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]eng.Move, 0, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateStepsInto(buf, turn)
		buf = buf[:0]
	}
}

func BenchmarkGenerateSteps_Initial(b *testing.B) {
	benchSteps(b, eng.FENStartPos)
}

func BenchmarkHasCaptures_Melee(b *testing.B) {
	board, turn, err := eng.ParseFEN(fenMelee)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.HasCaptures(turn)
	}
}

func BenchmarkApply_AllMoves_Initial(b *testing.B) {
	board, turn, err := eng.ParseFEN(eng.FENStartPos)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	moves := board.GenerateMoves(turn)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			cp := *board
			cp.Apply(m, turn)
		}
	}
}
