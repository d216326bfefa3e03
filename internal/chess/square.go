package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a board coordinate. Row 0 is Black's back rank, row 7 White's;
// column 0 is the a-file. A Square can only be built on the board.
type Square struct {
	row int8
	col int8
}

// NewSquare creates a square, rejecting coordinates outside [0,7].
func NewSquare(row, col int) (Square, error) {
	if !onBoard(row, col) {
		return Square{}, fmt.Errorf("row %d col %d: %w", row, col, errors.ErrInvalidSquare)
	}
	return Square{row: int8(row), col: int8(col)}, nil
}

// MustSquare is like NewSquare but panics on invalid coordinates.
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare converts algebraic coordinates such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{row: int8(RankTop - rank), col: int8(file - FileBase)}, nil
}

// Sq is shorthand for MustSquare(ParseSquare(name)), for fixtures and tables.
func Sq(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// Row returns the row index (0 = rank 8).
func (s Square) Row() int { return int(s.row) }

// Col returns the column index (0 = file a).
func (s Square) Col() int { return int(s.col) }

// Offset returns the square dr rows and dc columns away, or false when that
// lands off the board.
func (s Square) Offset(dr, dc int) (Square, bool) {
	r, c := int(s.row)+dr, int(s.col)+dc
	if !onBoard(r, c) {
		return Square{}, false
	}
	return Square{row: int8(r), col: int8(c)}, true
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte(FileBase + int(s.col))
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte(RankTop - int(s.row))
}

// String returns algebraic coordinates, e.g. "e1".
func (s Square) String() string {
	return string([]byte{s.File(), s.Rank()})
}

// MarshalText implements encoding.TextMarshaler.
func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
