package chess

// Board is an 8x8 grid of optional pieces, indexed [row][col].
// It is a value type: assignment makes an independent copy.
type Board [BoardSize][BoardSize]Piece

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard returns the standard starting position.
func NewInitialBoard() Board {
	var b Board
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b[Black.HomeRow()][col] = B(backRank[col])
		b[Black.PawnRow()][col] = B(Pawn)
		b[White.PawnRow()][col] = W(Pawn)
		b[White.HomeRow()][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	*b = Board{}
}

// Get returns the piece at sq.
func (b *Board) Get(sq Square) Piece {
	return b[sq.row][sq.col]
}

// Set places a piece at sq. Setting NoPiece empties the square.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.row][sq.col] = p
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// FindKing returns the square of the colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := Piece{Colour: colour, Kind: King}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == king {
				return Square{row: int8(row), col: int8(col)}, true
			}
		}
	}
	return Square{}, false
}

// Squares calls fn for every occupied square of the colour in row-major
// order, stopping when fn returns false.
func (b *Board) Squares(colour Colour, fn func(sq Square, p Piece) bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b[row][col]
			if p.IsEmpty() || p.Colour != colour {
				continue
			}
			if !fn(Square{row: int8(row), col: int8(col)}, p) {
				return
			}
		}
	}
}

// String renders the board with unicode figurines, rank 8 first.
func (b *Board) String() string {
	out := make([]byte, 0, BoardSize*(BoardSize*4+3))
	for row := 0; row < BoardSize; row++ {
		out = append(out, byte(RankTop-row), ' ')
		for col := 0; col < BoardSize; col++ {
			p := b[row][col]
			if p.IsEmpty() {
				out = append(out, '.')
			} else {
				out = append(out, p.Symbol()...)
			}
		}
		out = append(out, '\n')
	}
	out = append(out, "  abcdefgh\n"...)
	return string(out)
}
