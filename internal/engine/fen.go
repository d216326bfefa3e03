package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string and returns it with
// the side to move. Only placement, side to move and castling availability
// are used; a missing side defaults to White and a missing castling field
// means no rights. En passant and clock fields are accepted and ignored.
// Each colour must have exactly one king and the side not to move must not
// be in check.
func NewPositionFromFEN(fen string) (*Position, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	p := &Position{}
	if err := parsePiecePositions(&p.board, parts[0]); err != nil {
		return nil, chess.White, err
	}
	p.locateKings()

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(p, parts); err != nil {
		return nil, chess.White, err
	}

	if err := p.validateKings(toMove); err != nil {
		return nil, chess.White, err
	}

	return p, toMove, nil
}

// validateKings requires exactly one king per colour and rejects positions
// where the side that just moved is left in check.
func (p *Position) validateKings(toMove chess.Colour) error {
	for _, colour := range chess.Colours {
		count := 0
		p.board.Squares(colour, func(_ chess.Square, piece chess.Piece) bool {
			if piece.Kind == chess.King {
				count++
			}
			return true
		})
		if count != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, count, errors.ErrInvalidFEN)
		}
	}
	if p.IsInCheck(toMove.Opposite()) {
		return fmt.Errorf("%v is in check with %v to move: %w", toMove.Opposite(), toMove, errors.ErrInvalidFEN)
	}
	return nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("row %d has %d squares: %w", row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq, err := chess.NewSquare(row, col)
			if err != nil {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(sq, chess.Piece{Colour: colour, Kind: kind})
			col++
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("placement %q is not 8x8: %w", positions, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(p *Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			p.rights[chess.White].KingSide = true
		case 'Q':
			p.rights[chess.White].QueenSide = true
		case 'k':
			p.rights[chess.Black].KingSide = true
		case 'q':
			p.rights[chess.Black].QueenSide = true
		default:
			return fmt.Errorf("invalid castling flag: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// FEN converts the position to a FEN string with the given side to move.
// The en passant field is always "-" and the clocks count applied plies.
func (p *Position) FEN(toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, p.rights)
	fmt.Fprintf(&sb, " - 0 %d", len(p.history)/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights [2]chess.CastlingRights) {
	start := sb.Len()
	if rights[chess.White].KingSide {
		sb.WriteByte('K')
	}
	if rights[chess.White].QueenSide {
		sb.WriteByte('Q')
	}
	if rights[chess.Black].KingSide {
		sb.WriteByte('k')
	}
	if rights[chess.Black].QueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}
