package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Failing assertions cannot be observed without a fake *testing.T, so these
// cover the passing paths and the pure helpers.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Sq("e4"), chess.MustSquare(4, 4), "squares compare by value")
	AssertEqual(t, []chess.Move(nil), []chess.Move{}, "nil and empty are equal")
}

func TestAssertEqual_Moves(t *testing.T) {
	a := chess.Move{From: chess.Sq("e2"), To: chess.Sq("e4"), Piece: chess.W(chess.Pawn)}
	b := a
	AssertEqual(t, b, a)
}

func TestAssertSameSquares_IgnoresOrder(t *testing.T) {
	AssertSameSquares(t, []string{"e3", "e4"}, []string{"e4", "e3"})
	AssertSameSquares(t, nil, []string{})
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "value should be %v", false)
}

func TestDestinations(t *testing.T) {
	moves := []chess.Move{
		{From: chess.Sq("g1"), To: chess.Sq("h3")},
		{From: chess.Sq("g1"), To: chess.Sq("f3")},
	}
	AssertEqual(t, Destinations(moves), []string{"h3", "f3"})
	AssertEqual(t, UCIs(moves), []string{"g1f3", "g1h3"})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"format multiple", []interface{}{"%s %d", "ply", 3}, "ply 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
