// Package engine provides chess move generation, legality checking and
// move application over a single owned Position.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Position is the board plus the auxiliary state the rules need:
// castling rights, king locations, captured pieces and move history.
// A Position is owned by one game loop; it is not safe for concurrent use.
type Position struct {
	board chess.Board

	// Indexed by chess.Colour.
	rights   [2]chess.CastlingRights
	kings    [2]chess.Square
	hasKing  [2]bool
	captured [2][]chess.Piece

	history []chess.Move
}

// NewPosition returns the standard starting position with full castling rights.
func NewPosition() *Position {
	p := &Position{board: chess.NewInitialBoard()}
	p.rights[chess.White] = chess.FullCastlingRights()
	p.rights[chess.Black] = chess.FullCastlingRights()
	p.locateKings()
	return p
}

// NewEmptyPosition returns an empty board with full castling rights.
// Pieces are added with Place; castling still requires the rooks and
// king to be on their home squares.
func NewEmptyPosition() *Position {
	p := &Position{}
	p.rights[chess.White] = chess.FullCastlingRights()
	p.rights[chess.Black] = chess.FullCastlingRights()
	return p
}

// Place puts a piece on sq (NoPiece clears it) and keeps king
// locations in step with the board. It is meant for setting up positions,
// not for playing moves.
func (p *Position) Place(sq chess.Square, piece chess.Piece) {
	p.board.Set(sq, piece)
	p.locateKings()
}

// SetCastlingRights overrides the rights of a colour during setup.
func (p *Position) SetCastlingRights(colour chess.Colour, rights chess.CastlingRights) {
	p.rights[colour] = rights
}

// locateKings rescans the board for both kings.
func (p *Position) locateKings() {
	for _, colour := range chess.Colours {
		p.kings[colour], p.hasKing[colour] = p.board.FindKing(colour)
	}
}

// Board returns a copy of the board.
func (p *Position) Board() chess.Board {
	return p.board
}

// PieceAt returns the piece on sq.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.board.Get(sq)
}

// CastlingRights returns the remaining rights of a colour.
func (p *Position) CastlingRights(colour chess.Colour) chess.CastlingRights {
	return p.rights[colour]
}

// KingLocation returns the square of the colour's king, or false if the
// colour has no king on the board.
func (p *Position) KingLocation(colour chess.Colour) (chess.Square, bool) {
	return p.kings[colour], p.hasKing[colour]
}

// Captured returns the pieces taken by colour, in capture order.
func (p *Position) Captured(colour chess.Colour) []chess.Piece {
	out := make([]chess.Piece, len(p.captured[colour]))
	copy(out, p.captured[colour])
	return out
}

// History returns the applied moves in order.
func (p *Position) History() []chess.Move {
	out := make([]chess.Move, len(p.history))
	copy(out, p.history)
	return out
}

// LastMove returns the most recently applied move.
func (p *Position) LastMove() (chess.Move, bool) {
	if len(p.history) == 0 {
		return chess.Move{}, false
	}
	return p.history[len(p.history)-1], true
}

// Ply returns the number of moves applied so far.
func (p *Position) Ply() int {
	return len(p.history)
}

// Clone returns an independent deep copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	for _, colour := range chess.Colours {
		c.captured[colour] = append([]chess.Piece(nil), p.captured[colour]...)
	}
	c.history = append([]chess.Move(nil), p.history...)
	return &c
}
