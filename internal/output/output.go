// Package output writes finished or in-progress games as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game as text: a header line, the numbered move
// list, the result and optionally the final board.
func OutputGame(g *game.Game, cfg *config.OutputConfig, w io.Writer) {
	outputHeader(g, w)
	outputMoves(g, cfg, w)
	if cfg.ShowBoard {
		board := g.Position().Board()
		fmt.Fprint(w, board.String())
		outputCaptured(g, w)
	}
	// Blank line between games
	fmt.Fprintln(w)
}

// outputHeader writes the game id and status.
func outputHeader(g *game.Game, w io.Writer) {
	if g.ID != "" {
		fmt.Fprintf(w, "Game %s: ", g.ID)
	}
	fmt.Fprintf(w, "%s to move, %s\n", g.ToMove(), g.Status())
}

// outputMoves writes the move list followed by the result.
func outputMoves(g *game.Game, cfg *config.OutputConfig, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.MaxLineLength))

	moveNum := 1
	for i, m := range g.Position().History() {
		white := m.Piece.Colour == chess.White
		if cfg.KeepMoveNumbers {
			if white {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				// Black moved first
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}
		ow.Write(m.Notation())
		if !white {
			moveNum++
		}
	}

	ow.Write(g.Result())
	ow.NewLine()
}

// outputCaptured writes the captured trays under the board.
func outputCaptured(g *game.Game, w io.Writer) {
	for _, colour := range chess.Colours {
		fmt.Fprintf(w, "%s captured:", colour)
		for _, p := range g.Position().Captured(colour) {
			fmt.Fprintf(w, " %s", p.Symbol())
		}
		fmt.Fprintln(w)
	}
}
