package chess

// Move is a proposed or historical transition. It does not verify legality.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// Castling is NoCastle unless this is the king's part of a castle.
	Castling CastlingSide

	// Captured is NoPiece if nothing was taken.
	Captured Piece
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castling != NoCastle
}

// Notation returns the display form used by the move list: the uppercase
// piece letter, the destination square and an "x" suffix on captures.
// Castling moves are written O-O and O-O-O.
func (m Move) Notation() string {
	switch m.Castling {
	case KingSide:
		return "O-O"
	case QueenSide:
		return "O-O-O"
	}
	text := []byte{m.Piece.Kind.Letter(), m.To.File(), m.To.Rank()}
	if m.IsCapture() {
		text = append(text, 'x')
	}
	return string(text)
}

// UCI returns the long algebraic form, e.g. "e2e4".
func (m Move) UCI() string {
	return m.From.String() + m.To.String()
}

// String returns the long algebraic form.
func (m Move) String() string {
	return m.UCI()
}
