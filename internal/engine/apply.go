package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove plays from -> to for the piece standing on from. side may name a
// castle explicitly; a king moved two columns is treated as castling either
// way. Moves outside LegalMoves(from) are rejected with errors.ErrInvalidMove
// and leave the position untouched. The applied move is returned, including
// any captured piece.
//
// ApplyMove does not track whose turn it is; callers alternate colours.
func (p *Position) ApplyMove(from, to chess.Square, side chess.CastlingSide) (chess.Move, error) {
	m, ok := p.FindLegalMove(from, to, side)
	if !ok {
		return chess.Move{}, &errors.MoveError{
			Err:  errors.ErrInvalidMove,
			Ply:  len(p.history) + 1,
			From: from.String(),
			To:   to.String(),
		}
	}
	p.commit(m)
	return m, nil
}

// commit applies a validated move and updates the bookkeeping.
func (p *Position) commit(m chess.Move) {
	colour := m.Piece.Colour
	m.Captured = p.board.Get(m.To)
	m.Castling = castlingSideOf(m)

	playOnBoard(&p.board, m)

	if m.IsCapture() {
		p.captured[colour] = append(p.captured[colour], m.Captured)
		switch m.Captured.Kind {
		case chess.Rook:
			p.revokeForRookSquare(m.Captured.Colour, m.To)
		case chess.King:
			// Only reachable from hand-placed positions.
			p.hasKing[m.Captured.Colour] = false
			p.rights[m.Captured.Colour].RevokeAll()
		}
	}

	switch m.Piece.Kind {
	case chess.King:
		p.kings[colour] = m.To
		p.hasKing[colour] = true
		p.rights[colour].RevokeAll()
	case chess.Rook:
		p.revokeForRookSquare(colour, m.From)
	}

	p.history = append(p.history, m)
}

// playOnBoard moves the piece and, for a castle, its rook. It is shared by
// the live position and the hypothetical boards of the legality filter.
func playOnBoard(board *chess.Board, m chess.Move) {
	piece := board.Get(m.From)
	board.Set(m.From, chess.NoPiece)
	board.Set(m.To, piece)

	if side := castlingSideOf(m); side != chess.NoCastle {
		moveCastlingRook(board, m.From.Row(), side)
	}
}
