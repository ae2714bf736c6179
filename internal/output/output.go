// Package output writes game reports as wrapped text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int // 0 = never wrap
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer. Continuation lines start with
// indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength < 0 {
		maxLineLength = 0
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprint(o.w, "\n", o.indent)
			o.lineLength = len(o.indent)
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

// OutputGame writes a text report for one game.
func OutputGame(game *chess.GameRecord, analysis *processing.GameAnalysis, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength), "  ")

	outputHeader(game, analysis, cfg, ow)

	if cfg.Output.ShowMoves && analysis.PlyCount() > 0 {
		ow.Write("Moves:")
		outputMoves(analysis.Moves, ow)
		ow.NewLine()
	}

	if cfg.Rules.CheckDraws && analysis.Draws.Any() {
		ow.Write("Draw:")
		for _, reason := range drawReasons(analysis) {
			ow.Write(reason)
		}
		ow.NewLine()
	}

	if analysis.Err != nil {
		fmt.Fprintf(w, "Error: %v\n", analysis.Err)
	}

	if cfg.Output.ShowBoard && analysis.FinalBoard != nil {
		fmt.Fprint(w, analysis.FinalBoard.String())
	}

	// Blank line between games
	fmt.Fprintln(w)
}

// outputHeader writes the one-line summary that starts every report.
func outputHeader(game *chess.GameRecord, analysis *processing.GameAnalysis, cfg *config.Config, ow *OutputWriter) {
	ow.Write(fmt.Sprintf("Game %d (line %d):", game.Number, game.Line))
	ow.Write(fmt.Sprintf("%d %s", analysis.PlyCount(), plural(analysis.PlyCount(), "ply", "plies")))
	if analysis.Truncated {
		ow.Write("(truncated)")
	}
	if cfg.Rules.ReportState {
		ow.Write(analysis.State.String())
	}
	if analysis.Err != nil {
		ow.Write("INVALID")
	}
	if analysis.DuplicateOf > 0 {
		ow.Write(fmt.Sprintf("DUPLICATE of game %d", analysis.DuplicateOf))
	}
	if game.Comment != "" {
		ow.Write("# " + game.Comment)
	}
	ow.NewLine()
}

// outputMoves writes the accepted moves with move numbers.
func outputMoves(moves []chess.Move, ow *OutputWriter) {
	for i, move := range moves {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		ow.Write(FormatMove(move))
	}
}

// drawReasons lists the draw rules that hold, in a fixed order.
func drawReasons(analysis *processing.GameAnalysis) []string {
	var reasons []string
	if analysis.Draws.ThreefoldRepetition {
		reasons = append(reasons, "threefold-repetition")
	}
	if analysis.Draws.FiftyMoveRule {
		reasons = append(reasons, "fifty-move-rule")
	}
	if analysis.Draws.InsufficientMaterial {
		reasons = append(reasons, "insufficient-material")
	}
	if analysis.DrawPly > 0 {
		reasons = append(reasons, fmt.Sprintf("(claimable from ply %d)", analysis.DrawPly))
	}
	return reasons
}

// FormatMove formats a committed move in long algebraic notation:
// "e2-e4", "Ng1-f3", "e4xd5", "e5xd6ep", "b7xa8=Q", "O-O" and "O-O-O".
func FormatMove(move chess.Move) string {
	if move.Type == chess.Castling {
		if move.To.X > move.From.X {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder

	if !move.IsPawnMove() {
		sb.WriteByte(move.MovedPiece.Type.Letter())
	}
	sb.WriteString(move.From.String())
	if move.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(move.To.String())

	switch {
	case move.Type == chess.EnPassant:
		sb.WriteString("ep")
	case move.IsPromotion():
		sb.WriteString("=Q")
	}

	return sb.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
