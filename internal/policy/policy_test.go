package policy

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func mustFEN(t *testing.T, fen string) *engine.Position {
	t.Helper()
	p, _, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return p
}

func TestGreedy_PrefersCaptureWithCheck(t *testing.T) {
	// The queen can take the rook on e8 with check, give a quiet check
	// from e6, or make a quiet move.
	p := mustFEN(t, "4r1k1/p7/8/8/8/8/8/4QK2 w - - 0 1")

	m, ok := Greedy{}.Choose(p, chess.White)
	if !ok {
		t.Fatal("Choose() ok = false")
	}
	testutil.AssertEqual(t, m.UCI(), "e1e8")
	testutil.AssertEqual(t, Score(p, m), CaptureScore+CheckScore)
}

func TestGreedy_PrefersCaptureOverCheck(t *testing.T) {
	// Rd8+ checks and Rxa1 captures. The capture is worth more.
	p := mustFEN(t, "6k1/8/8/8/8/8/8/n2R2K1 w - - 0 1")

	m, _ := Greedy{}.Choose(p, chess.White)
	testutil.AssertEqual(t, m.UCI(), "d1a1")
}

func TestGreedy_TiesKeepGenerationOrder(t *testing.T) {
	p := engine.NewPosition()

	m, ok := Greedy{}.Choose(p, chess.White)
	if !ok {
		t.Fatal("Choose() ok = false")
	}
	first := p.AllLegalMoves(chess.White)[0]
	testutil.AssertEqual(t, m, first)
}

func TestGreedy_NoMoves(t *testing.T) {
	p := engine.NewPosition()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if _, err := p.ApplyMove(chess.Sq(uci[:2]), chess.Sq(uci[2:]), chess.NoCastle); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", uci, err)
		}
	}

	if _, ok := (Greedy{}).Choose(p, chess.White); ok {
		t.Error("Choose() on a mated side ok = true; want false")
	}
	if _, ok := NewRandom(rand.New(rand.NewSource(1))).Choose(p, chess.White); ok {
		t.Error("Random.Choose() on a mated side ok = true; want false")
	}
}

func TestScore(t *testing.T) {
	p := mustFEN(t, "4r1k1/p7/8/8/8/8/8/4QK2 w - - 0 1")

	tests := []struct {
		uci  string
		want int
	}{
		{"e1e8", CaptureScore + CheckScore},
		{"e1a5", 0},
		{"e1b4", 0},
		{"e1e6", CheckScore},
		{"e1c3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.uci, func(t *testing.T) {
			m, ok := p.FindLegalMove(chess.Sq(tt.uci[:2]), chess.Sq(tt.uci[2:]), chess.NoCastle)
			if !ok {
				t.Fatalf("%s is not legal", tt.uci)
			}
			if got := Score(p, m); got != tt.want {
				t.Errorf("Score(%s) = %d, want %d", tt.uci, got, tt.want)
			}
		})
	}
}

func TestRandom_IsLegalAndSeeded(t *testing.T) {
	p := engine.NewPosition()

	a := NewRandom(rand.New(rand.NewSource(42)))
	b := NewRandom(rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		ma, ok := a.Choose(p, chess.White)
		if !ok {
			t.Fatal("Choose() ok = false")
		}
		mb, _ := b.Choose(p, chess.White)
		testutil.AssertEqual(t, ma, mb, "same seed, same move")
		testutil.AssertTrue(t, p.IsLegal(ma.From, ma.To), "chosen move %s is legal", ma.UCI())
	}
}

func TestFunc(t *testing.T) {
	want := chess.Move{From: chess.Sq("g1"), To: chess.Sq("f3"), Piece: chess.W(chess.Knight)}
	var pol Policy = Func(func(*engine.Position, chess.Colour) (chess.Move, bool) {
		return want, true
	})
	got, ok := pol.Choose(engine.NewPosition(), chess.White)
	testutil.AssertTrue(t, ok, "ok")
	testutil.AssertEqual(t, got, want)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"greedy", "Random", "GREEDY"} {
		if _, err := ByName(name, 1); err != nil {
			t.Errorf("ByName(%q) error: %v", name, err)
		}
	}
	_, err := ByName("minimax", 1)
	testutil.AssertErrorIs(t, err, errors.ErrUnknownPolicy)
}
