package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// JSONGame represents a game report in JSON format.
type JSONGame struct {
	Number    int        `json:"number"`
	Line      int        `json:"line"`
	Comment   string     `json:"comment,omitempty"`
	PlyCount  int        `json:"plyCount"`
	Truncated bool       `json:"truncated,omitempty"`
	Moves     []JSONMove `json:"moves,omitempty"`
	State     string     `json:"state,omitempty"`
	Draws     *JSONDraws `json:"draws,omitempty"`
	Error     string     `json:"error,omitempty"`
	Duplicate int        `json:"duplicateOf,omitempty"`
	Board     []string   `json:"board,omitempty"` // rank 8 first
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Color    string `json:"color"` // "white" or "black"
	Notation string `json:"notation"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Type     string `json:"type"`
}

// JSONDraws holds the draw rules that were evaluated.
type JSONDraws struct {
	ThreefoldRepetition  bool `json:"threefoldRepetition"`
	FiftyMoveRule        bool `json:"fiftyMoveRule"`
	InsufficientMaterial bool `json:"insufficientMaterial"`
	FirstClaimablePly    int  `json:"firstClaimablePly,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple game reports as a JSON array.
func OutputGamesJSON(games []*JSONGame, w io.Writer) error {
	if games == nil {
		games = []*JSONGame{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: games})
}

// GameToJSON converts a game and its analysis to JSON format.
func GameToJSON(game *chess.GameRecord, analysis *processing.GameAnalysis, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Number:    game.Number,
		Line:      game.Line,
		Comment:   game.Comment,
		PlyCount:  analysis.PlyCount(),
		Truncated: analysis.Truncated,
		Duplicate: analysis.DuplicateOf,
	}

	if cfg.Output.ShowMoves {
		jg.Moves = convertMoveList(analysis.Moves)
	}
	if cfg.Rules.ReportState {
		jg.State = analysis.State.String()
	}
	if cfg.Rules.CheckDraws {
		jg.Draws = &JSONDraws{
			ThreefoldRepetition:  analysis.Draws.ThreefoldRepetition,
			FiftyMoveRule:        analysis.Draws.FiftyMoveRule,
			InsufficientMaterial: analysis.Draws.InsufficientMaterial,
			FirstClaimablePly:    analysis.DrawPly,
		}
	}
	if analysis.Err != nil {
		jg.Error = analysis.Err.Error()
	}
	if cfg.Output.ShowBoard && analysis.FinalBoard != nil {
		jg.Board = strings.Split(strings.TrimSuffix(analysis.FinalBoard.String(), "\n"), "\n")
	}

	return jg
}

// convertMoveList converts committed moves to JSON format.
func convertMoveList(moves []chess.Move) []JSONMove {
	result := make([]JSONMove, len(moves))
	for i, move := range moves {
		result[i] = JSONMove{
			Ply:      i + 1,
			Color:    colorName(move.MovedPiece.Colour),
			Notation: FormatMove(move),
			From:     move.From.String(),
			To:       move.To.String(),
			Piece:    strings.ToLower(move.MovedPiece.Type.String()),
			Type:     move.Type.String(),
		}
	}
	return result
}
