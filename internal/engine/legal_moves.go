package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the pseudo-legal moves of the piece on from that do not
// leave its own king attacked. An empty square yields no moves.
func (p *Position) LegalMoves(from chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range p.PseudoLegalMoves(from) {
		if p.keepsKingSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move of colour, square by square from
// a8 to h1.
func (p *Position) AllLegalMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	p.board.Squares(colour, func(sq chess.Square, _ chess.Piece) bool {
		moves = append(moves, p.LegalMoves(sq)...)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// The scan stops at the first one found.
func (p *Position) HasLegalMoves(colour chess.Colour) bool {
	found := false
	p.board.Squares(colour, func(sq chess.Square, _ chess.Piece) bool {
		for _, m := range p.PseudoLegalMoves(sq) {
			if p.keepsKingSafe(m) {
				found = true
				break
			}
		}
		return !found
	})
	return found
}

// FindLegalMove returns the legal move from -> to. side selects a castle
// explicitly; NoCastle also matches a castle given as a two-column king move.
func (p *Position) FindLegalMove(from, to chess.Square, side chess.CastlingSide) (chess.Move, bool) {
	for _, m := range p.LegalMoves(from) {
		if m.To != to {
			continue
		}
		if side != chess.NoCastle && m.Castling != side {
			continue
		}
		return m, true
	}
	return chess.Move{}, false
}

// IsLegal reports whether from -> to is a legal move.
func (p *Position) IsLegal(from, to chess.Square) bool {
	_, ok := p.FindLegalMove(from, to, chess.NoCastle)
	return ok
}

// keepsKingSafe plays m on a copy of the board and checks that the mover's
// king is not attacked afterwards.
func (p *Position) keepsKingSafe(m chess.Move) bool {
	colour := m.Piece.Colour
	king, ok := p.KingLocation(colour)
	if !ok {
		return true
	}
	if m.Piece.Kind == chess.King {
		king = m.To
	}

	board := p.board
	playOnBoard(&board, m)
	return !IsSquareAttacked(&board, king, colour)
}
