package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustFEN builds a position from fen or aborts the test.
func mustFEN(t testing.TB, fen string) *Position {
	t.Helper()
	p, _, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return p
}

// play applies moves given in long algebraic form, e.g. "e2e4".
func play(t testing.TB, p *Position, moves ...string) {
	t.Helper()
	for _, uci := range moves {
		from, to := chess.Sq(uci[:2]), chess.Sq(uci[2:4])
		if _, err := p.ApplyMove(from, to, chess.NoCastle); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", uci, err)
		}
	}
}

// place builds an empty position holding the given pieces.
func place(pieces map[string]chess.Piece) *Position {
	p := NewEmptyPosition()
	for sq, piece := range pieces {
		p.Place(chess.Sq(sq), piece)
	}
	return p
}
