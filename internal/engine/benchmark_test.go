package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":  InitialFEN,
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p, toMove, _ := NewPositionFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.FEN(toMove)
			}
		})
	}
}

func BenchmarkAllLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p, toMove, _ := NewPositionFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.AllLegalMoves(toMove)
			}
		})
	}
}

func BenchmarkLegalMoves_King(b *testing.B) {
	p := mustFEN(b, benchFENs["Complex"])
	e1 := chess.Sq("e1")
	for i := 0; i < b.N; i++ {
		p.LegalMoves(e1)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	p := mustFEN(b, benchFENs["Complex"])
	for i := 0; i < b.N; i++ {
		p.IsInCheck(chess.White)
	}
}

func BenchmarkStatus(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p, toMove, _ := NewPositionFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.Status(toMove)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	from, to := chess.Sq("e2"), chess.Sq("e4")
	for i := 0; i < b.N; i++ {
		p := NewPosition()
		if _, err := p.ApplyMove(from, to, chess.NoCastle); err != nil {
			b.Fatal(err)
		}
	}
}
