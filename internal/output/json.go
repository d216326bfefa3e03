package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID             string                          `json:"id,omitempty"`
	Moves          []JSONMove                      `json:"moves"`
	Result         string                          `json:"result"`
	Status         engine.Status                   `json:"status"`
	ToMove         chess.Colour                    `json:"toMove"`
	PlyCount       int                             `json:"plyCount"`
	Captured       JSONCaptured                    `json:"captured"`
	CastlingRights map[string]chess.CastlingRights `json:"castlingRights"`
	InitialFEN     string                          `json:"initialFEN,omitempty"`
	FinalFEN       string                          `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Castling   string `json:"castling,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONCaptured lists captured pieces by the colour that took them.
type JSONCaptured struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// JSONOptions controls optional JSON fields.
type JSONOptions struct {
	AddFENs bool // Record the FEN after every move
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game, opts JSONOptions) *JSONGame {
	pos := g.Position()
	jg := &JSONGame{
		ID:         g.ID,
		Result:     g.Result(),
		Status:     g.Status(),
		ToMove:     g.ToMove(),
		PlyCount:   g.Ply(),
		InitialFEN: g.StartFEN(),
		FinalFEN:   g.FEN(),
		Captured: JSONCaptured{
			White: pieceNames(pos.Captured(chess.White)),
			Black: pieceNames(pos.Captured(chess.Black)),
		},
		CastlingRights: map[string]chess.CastlingRights{
			chess.White.String(): pos.CastlingRights(chess.White),
			chess.Black.String(): pos.CastlingRights(chess.Black),
		},
	}
	jg.Moves = convertMoveList(pos.History(), g.StartFEN(), opts.AddFENs)
	return jg
}

// convertMoveList converts the move history to JSON format. Move numbers
// count from the first move recorded, with White's moves numbered.
func convertMoveList(history []chess.Move, startFEN string, addFENs bool) []JSONMove {
	result := make([]JSONMove, 0, len(history))

	var replay *engine.Position
	var toMove chess.Colour
	if addFENs {
		replay, toMove = startPosition(startFEN)
	}

	moveNum := 1
	for _, m := range history {
		jm := MoveToJSON(m)
		if m.Piece.Colour == chess.White {
			jm.MoveNumber = moveNum
		} else {
			moveNum++
		}

		if replay != nil {
			if _, err := replay.ApplyMove(m.From, m.To, m.Castling); err == nil {
				toMove = toMove.Opposite()
				jm.FEN = replay.FEN(toMove)
			}
		}
		result = append(result, jm)
	}
	return result
}

// startPosition returns the position moves are replayed from.
func startPosition(fen string) (*engine.Position, chess.Colour) {
	if fen != "" {
		if pos, toMove, err := engine.NewPositionFromFEN(fen); err == nil {
			return pos, toMove
		}
	}
	return engine.NewPosition(), chess.White
}

// MoveToJSON converts a single move to JSON format.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		Color:    m.Piece.Colour.String(),
		Notation: m.Notation(),
		UCI:      m.UCI(),
		From:     m.From.String(),
		To:       m.To.String(),
		Piece:    kindName(m.Piece.Kind),
	}
	if m.IsCapture() {
		jm.Captured = kindName(m.Captured.Kind)
	}
	if m.IsCastle() {
		jm.Castling = m.Castling.String()
	}
	return jm
}

// pieceNames returns the kind names of pieces, never nil.
func pieceNames(pieces []chess.Piece) []string {
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = kindName(p.Kind)
	}
	return names
}

// kindName returns the lowercase kind name, e.g. "knight".
func kindName(k chess.Kind) string {
	return strings.ToLower(k.String())
}

// encodeJSON writes v to w, indented when pretty is set.
func encodeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
