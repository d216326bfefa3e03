// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, White first.
var Colours = [2]Colour{White, Black}

// String returns the lower-case name of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn step: White moves toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the back rank row of the colour.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row pawns of the colour start on.
func (c Colour) PawnRow() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// ParseColour converts "white"/"black" (any case, or "w"/"b") to a Colour.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return Black, fmt.Errorf("unknown colour %q: %w", s, errors.ErrInvalidInput)
}

// MarshalText implements encoding.TextMarshaler.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the name of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a Kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

var whiteSymbols = []string{" ", "♙", "♘", "♗", "♖", "♕", "♔"}
var blackSymbols = []string{" ", "♟", "♞", "♝", "♜", "♛", "♚"}

// Symbol returns the unicode chess figurine for the piece.
func (p Piece) Symbol() string {
	if p.Kind < 0 || int(p.Kind) >= len(whiteSymbols) {
		return "?"
	}
	if p.Colour == White {
		return whiteSymbols[p.Kind]
	}
	return blackSymbols[p.Kind]
}

// String returns a readable description such as "white Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// CastlingSide identifies which rook a castling move uses.
type CastlingSide int

const (
	NoCastle CastlingSide = iota
	KingSide
	QueenSide
)

// String returns the name of a castling side.
func (s CastlingSide) String() string {
	switch s {
	case KingSide:
		return "kingSide"
	case QueenSide:
		return "queenSide"
	}
	return ""
}

// ParseCastlingSide converts a side name to a CastlingSide. The empty string
// yields NoCastle.
func ParseCastlingSide(s string) (CastlingSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoCastle, nil
	case "kingside", "king", "o-o":
		return KingSide, nil
	case "queenside", "queen", "o-o-o":
		return QueenSide, nil
	}
	return NoCastle, fmt.Errorf("unknown castling side %q: %w", s, errors.ErrInvalidInput)
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankTop  = '8'
)

// Castling geometry on the home row.
const (
	KingCol          = 4
	KingSideRookCol  = 7
	QueenSideRookCol = 0
)

// RookHomeCol returns the original column of the rook used by side.
func RookHomeCol(side CastlingSide) int {
	if side == QueenSide {
		return QueenSideRookCol
	}
	return KingSideRookCol
}

// CastlingRights holds the remaining castling permissions for one colour.
// Rights only ever go from true to false.
type CastlingRights struct {
	KingSide  bool `json:"kingSide"`
	QueenSide bool `json:"queenSide"`
}

// FullCastlingRights returns rights with both sides available.
func FullCastlingRights() CastlingRights {
	return CastlingRights{KingSide: true, QueenSide: true}
}

// Has reports whether the right for side is still held.
func (r CastlingRights) Has(side CastlingSide) bool {
	switch side {
	case KingSide:
		return r.KingSide
	case QueenSide:
		return r.QueenSide
	}
	return false
}

// Revoke clears the right for side.
func (r *CastlingRights) Revoke(side CastlingSide) {
	switch side {
	case KingSide:
		r.KingSide = false
	case QueenSide:
		r.QueenSide = false
	}
}

// RevokeAll clears both rights.
func (r *CastlingRights) RevokeAll() {
	r.KingSide = false
	r.QueenSide = false
}
