package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingPath describes the home-row columns a castle depends on.
type castlingPath struct {
	rookCol     int
	kingToCol   int
	rookToCol   int
	between     []int // must be empty
	kingPassing []int // must not be attacked; landing square excluded
}

var castlingPaths = map[chess.CastlingSide]castlingPath{
	chess.KingSide: {
		rookCol:     chess.KingSideRookCol,
		kingToCol:   6,
		rookToCol:   5,
		between:     []int{5, 6},
		kingPassing: []int{4, 5},
	},
	chess.QueenSide: {
		rookCol:     chess.QueenSideRookCol,
		kingToCol:   2,
		rookToCol:   3,
		between:     []int{1, 2, 3},
		kingPassing: []int{4, 3},
	},
}

// CanCastle reports whether colour may castle on side now. The clauses are
// checked in order: the right is held, the king stands on its home square
// and is not in check, the squares between king and rook are empty, the rook
// is in its corner, and no square the king starts on or crosses is attacked.
func (p *Position) CanCastle(colour chess.Colour, side chess.CastlingSide) bool {
	path, ok := castlingPaths[side]
	if !ok || !p.rights[colour].Has(side) {
		return false
	}

	row := colour.HomeRow()
	home := chess.MustSquare(row, chess.KingCol)
	if king, ok := p.KingLocation(colour); !ok || king != home {
		return false
	}
	if p.IsInCheck(colour) {
		return false
	}

	for _, col := range path.between {
		if !p.board.IsEmpty(chess.MustSquare(row, col)) {
			return false
		}
	}

	rook := p.board.Get(chess.MustSquare(row, path.rookCol))
	if rook != (chess.Piece{Colour: colour, Kind: chess.Rook}) {
		return false
	}

	for _, col := range path.kingPassing {
		if p.IsSquareAttacked(chess.MustSquare(row, col), colour) {
			return false
		}
	}
	return true
}

// castlingMove builds the king's move for a castle.
func castlingMove(colour chess.Colour, side chess.CastlingSide) chess.Move {
	row := colour.HomeRow()
	return chess.Move{
		From:     chess.MustSquare(row, chess.KingCol),
		To:       chess.MustSquare(row, castlingPaths[side].kingToCol),
		Piece:    chess.Piece{Colour: colour, Kind: chess.King},
		Castling: side,
	}
}

// castlingSideOf infers the side from a king move displaced two columns.
func castlingSideOf(m chess.Move) chess.CastlingSide {
	if m.Castling != chess.NoCastle {
		return m.Castling
	}
	if m.Piece.Kind != chess.King || m.From.Row() != m.To.Row() {
		return chess.NoCastle
	}
	switch m.To.Col() - m.From.Col() {
	case 2:
		return chess.KingSide
	case -2:
		return chess.QueenSide
	}
	return chess.NoCastle
}

// moveCastlingRook relocates the rook of a castle next to the king's new
// square on the same row.
func moveCastlingRook(board *chess.Board, row int, side chess.CastlingSide) {
	path := castlingPaths[side]
	from := chess.MustSquare(row, path.rookCol)
	to := chess.MustSquare(row, path.rookToCol)
	board.Set(to, board.Get(from))
	board.Set(from, chess.NoPiece)
}

// revokeForRookSquare clears the right tied to a rook home square, used when
// a rook leaves it or is captured on it.
func (p *Position) revokeForRookSquare(colour chess.Colour, sq chess.Square) {
	if sq.Row() != colour.HomeRow() {
		return
	}
	switch sq.Col() {
	case chess.KingSideRookCol:
		p.rights[colour].Revoke(chess.KingSide)
	case chess.QueenSideRookCol:
		p.rights[colour].Revoke(chess.QueenSide)
	}
}
