// Package game runs a single game on top of an engine.Position: it tracks
// whose turn it is, refuses moves once the game is decided and asks a
// policy for computer replies.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/policy"
)

// Result strings in PGN form.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// Game is a position plus the colour to move. It is not safe for
// concurrent use; internal/session serialises access.
type Game struct {
	ID       string
	pos      *engine.Position
	toMove   chess.Colour
	startFEN string
}

// New starts a game from the standard position with White to move.
func New(id string) *Game {
	return &Game{ID: id, pos: engine.NewPosition(), toMove: chess.White}
}

// FromFEN starts a game from a FEN position.
func FromFEN(id, fen string) (*Game, error) {
	pos, toMove, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{ID: id, pos: pos, toMove: toMove, startFEN: fen}, nil
}

// StartFEN returns the FEN the game was set up from, or "" for the
// standard starting position.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Position returns the underlying position. Callers must not apply moves
// to it directly or the turn tracking goes out of step.
func (g *Game) Position() *engine.Position {
	return g.pos
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return g.pos.Ply()
}

// Status reports the state of the side to move.
func (g *Game) Status() engine.Status {
	return g.pos.Status(g.toMove)
}

// IsOver reports whether the side to move is mated or stalemated.
func (g *Game) IsOver() bool {
	return !g.pos.HasLegalMoves(g.toMove)
}

// Result returns the game result: the side to move loses on checkmate,
// stalemate is a draw and anything else is unfinished.
func (g *Game) Result() string {
	switch g.Status() {
	case engine.Checkmate:
		if g.toMove == chess.White {
			return BlackWins
		}
		return WhiteWins
	case engine.Stalemate:
		return Draw
	}
	return Unfinished
}

// FEN returns the current position with the side to move.
func (g *Game) FEN() string {
	return g.pos.FEN(g.toMove)
}

// LegalMoves returns the legal moves from sq. Only the side to move has
// any; the other colour's pieces report none.
func (g *Game) LegalMoves(sq chess.Square) []chess.Move {
	if g.pos.PieceAt(sq).Colour != g.toMove {
		return nil
	}
	return g.pos.LegalMoves(sq)
}

// Play makes a move for colour and passes the turn.
func (g *Game) Play(colour chess.Colour, from, to chess.Square, side chess.CastlingSide) (chess.Move, error) {
	if err := g.checkTurn(colour, from, to); err != nil {
		return chess.Move{}, err
	}

	piece := g.pos.PieceAt(from)
	if piece.IsEmpty() || piece.Colour != colour {
		return chess.Move{}, g.moveError(errors.ErrInvalidMove, from, to)
	}

	m, err := g.pos.ApplyMove(from, to, side)
	if err != nil {
		var me *errors.MoveError
		if errors.As(err, &me) {
			me.GameID = g.ID
		}
		return chess.Move{}, err
	}
	g.toMove = g.toMove.Opposite()
	return m, nil
}

// PlayPolicy lets pol choose and play the move for the side to move.
func (g *Game) PlayPolicy(pol policy.Policy) (chess.Move, error) {
	m, ok := pol.Choose(g.pos, g.toMove)
	if !ok {
		return chess.Move{}, g.moveError(errors.ErrGameOver, chess.Square{}, chess.Square{})
	}
	return g.Play(g.toMove, m.From, m.To, m.Castling)
}

func (g *Game) checkTurn(colour chess.Colour, from, to chess.Square) error {
	if g.IsOver() {
		return g.moveError(errors.ErrGameOver, from, to)
	}
	if colour != g.toMove {
		return g.moveError(errors.ErrNotYourTurn, from, to)
	}
	return nil
}

func (g *Game) moveError(err error, from, to chess.Square) error {
	me := &errors.MoveError{Err: err, GameID: g.ID, Ply: g.pos.Ply() + 1}
	if from != to {
		me.From, me.To = from.String(), to.String()
	}
	return me
}
