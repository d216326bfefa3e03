package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsSquareAttacked returns true if any piece of the colour opposing defender
// has an unfiltered pseudo-legal move landing on sq in the given board. A
// pawn therefore attacks the square it could push to, and a forward diagonal
// only while an enemy of the pawn stands there. Castling is never considered,
// so this never recurses into legality checks.
func IsSquareAttacked(board *chess.Board, sq chess.Square, defender chess.Colour) bool {
	attacked := false
	board.Squares(defender.Opposite(), func(from chess.Square, _ chess.Piece) bool {
		forEachTarget(board, from, func(to chess.Square) bool {
			if to == sq {
				attacked = true
				return false
			}
			return true
		})
		return !attacked
	})
	return attacked
}

// IsSquareAttacked reports whether sq is attacked on the live board by the
// opponent of defender.
func (p *Position) IsSquareAttacked(sq chess.Square, defender chess.Colour) bool {
	return IsSquareAttacked(&p.board, sq, defender)
}

// IsInCheck returns true if the given colour's king is attacked.
// A colour without a king is never in check.
func (p *Position) IsInCheck(colour chess.Colour) bool {
	king, ok := p.KingLocation(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(&p.board, king, colour)
}

// GivesCheck reports whether playing m would leave the opponent of the
// mover in check. The live position is not modified.
func (p *Position) GivesCheck(m chess.Move) bool {
	opponent := m.Piece.Colour.Opposite()
	king, ok := p.KingLocation(opponent)
	if !ok {
		return false
	}
	board := p.board
	playOnBoard(&board, m)
	return IsSquareAttacked(&board, king, opponent)
}
