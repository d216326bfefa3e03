package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status summarises the situation of the colour to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for _, st := range []Status{Ongoing, Check, Checkmate, Stalemate} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown status %q: %w", text, errors.ErrInvalidInput)
}

// IsOver reports whether the status ends the game.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if colour is in check and has no legal move.
func (p *Position) IsCheckmate(colour chess.Colour) bool {
	return p.IsInCheck(colour) && !p.HasLegalMoves(colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func (p *Position) IsStalemate(colour chess.Colour) bool {
	return !p.IsInCheck(colour) && !p.HasLegalMoves(colour)
}

// Status returns the status of colour, computing check only once.
func (p *Position) Status(colour chess.Colour) Status {
	inCheck := p.IsInCheck(colour)
	hasMoves := p.HasLegalMoves(colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}
