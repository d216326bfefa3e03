package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs         = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	pawnCaptureCols = []int{-1, 1}
)

// forEachTarget calls fn with every pseudo-legal destination of the piece on
// from, castling excluded. Iteration stops when fn returns false; the return
// value reports whether it ran to completion. Attack detection walks the same
// targets, so a square is attacked exactly when some opposing piece could
// move onto it.
func forEachTarget(board *chess.Board, from chess.Square, fn func(to chess.Square) bool) bool {
	piece := board.Get(from)
	switch piece.Kind {
	case chess.Pawn:
		return pawnTargets(board, from, piece.Colour, fn)
	case chess.Knight:
		return offsetTargets(board, from, piece.Colour, knightOffsets, fn)
	case chess.Bishop:
		return rayTargets(board, from, piece.Colour, diagonalDirs, fn)
	case chess.Rook:
		return rayTargets(board, from, piece.Colour, straightDirs, fn)
	case chess.Queen:
		return rayTargets(board, from, piece.Colour, allDirs, fn)
	case chess.King:
		return offsetTargets(board, from, piece.Colour, kingOffsets, fn)
	}
	return true
}

// pawnTargets generates a single push onto an empty square, a double push
// from the starting row when the single push square is empty too, and
// diagonal captures onto opposing pieces.
func pawnTargets(board *chess.Board, from chess.Square, colour chess.Colour, fn func(chess.Square) bool) bool {
	dir := colour.Forward()

	if one, ok := from.Offset(dir, 0); ok && board.IsEmpty(one) {
		if !fn(one) {
			return false
		}
		if from.Row() == colour.PawnRow() {
			if two, ok := from.Offset(2*dir, 0); ok && board.IsEmpty(two) {
				if !fn(two) {
					return false
				}
			}
		}
	}

	for _, dc := range pawnCaptureCols {
		to, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour == colour {
			continue
		}
		if !fn(to) {
			return false
		}
	}
	return true
}

// offsetTargets handles knights and kings: each offset square that is on the
// board and empty or held by an opponent.
func offsetTargets(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int, fn func(chess.Square) bool) bool {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour == colour {
			continue
		}
		if !fn(to) {
			return false
		}
	}
	return true
}

// rayTargets casts rays until the first occupied square, which is included
// only when it holds an opponent.
func rayTargets(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int, fn func(chess.Square) bool) bool {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour && !fn(to) {
					return false
				}
				break // Blocked
			}
			if !fn(to) {
				return false
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return true
}

// PseudoLegalMoves returns the moves of the piece on from that obey its
// movement pattern, without regard to the safety of its own king. Castling
// moves are included for a king that is eligible to castle. An empty square
// yields no moves.
func (p *Position) PseudoLegalMoves(from chess.Square) []chess.Move {
	piece := p.board.Get(from)
	if piece.IsEmpty() {
		return nil
	}

	var moves []chess.Move
	forEachTarget(&p.board, from, func(to chess.Square) bool {
		moves = append(moves, chess.Move{
			From:     from,
			To:       to,
			Piece:    piece,
			Captured: p.board.Get(to),
		})
		return true
	})

	if piece.Kind == chess.King {
		for _, side := range []chess.CastlingSide{chess.KingSide, chess.QueenSide} {
			if p.CanCastle(piece.Colour, side) {
				moves = append(moves, castlingMove(piece.Colour, side))
			}
		}
	}
	return moves
}
