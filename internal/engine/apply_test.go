package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestApplyMove_Quiet(t *testing.T) {
	p := NewPosition()

	m, err := p.ApplyMove(chess.Sq("e2"), chess.Sq("e4"), chess.NoCastle)
	testutil.AssertNoError(t, err)

	want := chess.Move{From: chess.Sq("e2"), To: chess.Sq("e4"), Piece: chess.W(chess.Pawn)}
	testutil.AssertEqual(t, m, want)
	testutil.AssertEqual(t, p.PieceAt(chess.Sq("e4")), chess.W(chess.Pawn))
	testutil.AssertTrue(t, p.PieceAt(chess.Sq("e2")).IsEmpty(), "origin cleared")
	testutil.AssertEqual(t, p.History(), []chess.Move{want})

	last, ok := p.LastMove()
	testutil.AssertTrue(t, ok, "LastMove present")
	testutil.AssertEqual(t, last, want)
	testutil.AssertEqual(t, p.Ply(), 1)
	testutil.AssertEqual(t, p.Captured(chess.White), []chess.Piece{})
}

func TestApplyMove_Capture(t *testing.T) {
	p := NewPosition()
	play(t, p, "e2e4", "d7d5")

	m, err := p.ApplyMove(chess.Sq("e4"), chess.Sq("d5"), chess.NoCastle)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, m.Captured, chess.B(chess.Pawn))
	testutil.AssertEqual(t, m.Notation(), "Pd5x")
	testutil.AssertEqual(t, p.Captured(chess.White), []chess.Piece{chess.B(chess.Pawn)})
	testutil.AssertEqual(t, p.Captured(chess.Black), []chess.Piece{})

	play(t, p, "d8d5")
	testutil.AssertEqual(t, p.Captured(chess.Black), []chess.Piece{chess.W(chess.Pawn)})
	testutil.AssertEqual(t, len(p.History()), 4)
}

func TestApplyMove_RejectsIllegal(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"empty origin", "e4", "e5"},
		{"pawn three squares", "e2", "e5"},
		{"blocked rook", "a1", "a3"},
		{"onto own piece", "d1", "d2"},
		{"bishop through pawn", "c1", "e3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPosition()
			before := p.Board()

			_, err := p.ApplyMove(chess.Sq(tt.from), chess.Sq(tt.to), chess.NoCastle)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)

			var moveErr *errors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.From, tt.from)
			testutil.AssertEqual(t, moveErr.Ply, 1)

			testutil.AssertEqual(t, p.Board(), before, "board unchanged")
			testutil.AssertEqual(t, p.Ply(), 0)
		})
	}
}

func TestApplyMove_LeavingKingInCheckRejected(t *testing.T) {
	p := place(map[string]chess.Piece{
		"e1": chess.W(chess.King),
		"e2": chess.W(chess.Rook),
		"e8": chess.B(chess.Rook),
		"a8": chess.B(chess.King),
	})

	_, err := p.ApplyMove(chess.Sq("e2"), chess.Sq("a2"), chess.NoCastle)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)

	_, err = p.ApplyMove(chess.Sq("e2"), chess.Sq("e5"), chess.NoCastle)
	testutil.AssertNoError(t, err, "moving along the pin line")
}

func TestApplyMove_KingMoveRevokesRights(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	play(t, p, "e1f1")

	testutil.AssertEqual(t, p.CastlingRights(chess.White), chess.CastlingRights{})
	testutil.AssertEqual(t, p.CastlingRights(chess.Black), chess.FullCastlingRights())
	king, _ := p.KingLocation(chess.White)
	testutil.AssertEqual(t, king, chess.Sq("f1"))

	// Walking back home does not restore anything.
	play(t, p, "a8b8", "f1e1")
	testutil.AssertFalse(t, p.CanCastle(chess.White, chess.KingSide))
	testutil.AssertFalse(t, p.CanCastle(chess.White, chess.QueenSide))
}

func TestApplyMove_RookMoveRevokesOneRight(t *testing.T) {
	tests := []struct {
		name      string
		move      string
		colour    chess.Colour
		wantRight chess.CastlingRights
	}{
		{"white h1 rook", "h1h4", chess.White, chess.CastlingRights{QueenSide: true}},
		{"white a1 rook", "a1a4", chess.White, chess.CastlingRights{KingSide: true}},
		{"black h8 rook", "h8h4", chess.Black, chess.CastlingRights{QueenSide: true}},
		{"black a8 rook", "a8a4", chess.Black, chess.CastlingRights{KingSide: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			play(t, p, tt.move)
			testutil.AssertEqual(t, p.CastlingRights(tt.colour), tt.wantRight)
			testutil.AssertEqual(t, p.CastlingRights(tt.colour.Opposite()), chess.FullCastlingRights())
		})
	}
}

func TestApplyMove_RookCapturedOnHomeSquare(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	play(t, p, "a1a8")

	testutil.AssertEqual(t, p.CastlingRights(chess.Black), chess.CastlingRights{KingSide: true})
	testutil.AssertEqual(t, p.CastlingRights(chess.White), chess.CastlingRights{KingSide: true})
	testutil.AssertEqual(t, p.Captured(chess.White), []chess.Piece{chess.B(chess.Rook)})
}

func TestApplyMove_RightsNeverReturn(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	play(t, p, "h1h2", "h8h7", "h2h1", "h7h8")

	testutil.AssertFalse(t, p.CastlingRights(chess.White).KingSide, "white king side")
	testutil.AssertFalse(t, p.CastlingRights(chess.Black).KingSide, "black king side")
	testutil.AssertFalse(t, p.CanCastle(chess.White, chess.KingSide))
}

// Hand-placed positions can leave a king en prise; taking it must clear the
// king bookkeeping of that colour.
func TestApplyMove_CapturingKingClearsLocation(t *testing.T) {
	p := place(map[string]chess.Piece{
		"e1": chess.W(chess.Rook),
		"f1": chess.W(chess.King),
		"e8": chess.B(chess.King),
	})

	m, err := p.ApplyMove(chess.Sq("e1"), chess.Sq("e8"), chess.NoCastle)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Captured, chess.B(chess.King))

	_, ok := p.KingLocation(chess.Black)
	testutil.AssertFalse(t, ok, "KingLocation(black) after capture")
	testutil.AssertEqual(t, p.CastlingRights(chess.Black), chess.CastlingRights{})
	testutil.AssertFalse(t, p.IsInCheck(chess.Black), "kingless colour in check")
}
