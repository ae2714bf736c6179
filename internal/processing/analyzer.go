// Package processing replays parsed game records through the rules engine
// and collects what happened along the way.
package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard *chess.Board

	// Moves are the accepted half-moves, in order.
	Moves []chess.Move

	// Truncated is set when replay stopped at the configured ply limit.
	Truncated bool

	// State is the game state for the side to move after the last accepted
	// move. It is only derived when state reporting is enabled.
	State chess.BoardState

	// Draws holds the draw rules for the final position. DrawPly is the first
	// ply at which threefold repetition or the fifty-move rule held (0 if never).
	Draws   engine.DrawRuleResult
	DrawPly int

	// Move kind counters
	Captures   int
	Castlings  int
	EnPassants int
	Promotions int

	// DuplicateOf is the run-wide ordinal of an earlier game ending in the
	// same position, or 0. It is filled in by the caller, not by AnalyzeGame.
	DuplicateOf int

	// Err is the parse error when the line could not be read completely,
	// otherwise the first rejected move, wrapped in a *errors.GameError.
	// Moves before it are still analysed.
	Err error
}

// PlyCount returns the number of accepted half-moves.
func (ga *GameAnalysis) PlyCount() int {
	return len(ga.Moves)
}

// Valid reports whether every requested move was read and accepted.
func (ga *GameAnalysis) Valid() bool {
	return ga.Err == nil
}

// AnalyzeGame replays a game from the initial position. Replay stops at the
// first rejected move; the analysis then describes the position before it.
// A nil rules config uses the defaults.
func AnalyzeGame(game *chess.GameRecord, rules *config.RulesConfig) *GameAnalysis {
	if rules == nil {
		rules = config.NewRulesConfig()
	}

	m := engine.NewBoardManager()
	analysis := &GameAnalysis{Err: game.Err}

	for i, req := range game.Moves {
		if rules.MaxPlies > 0 && i >= rules.MaxPlies {
			analysis.Truncated = true
			break
		}

		move, err := m.PerformMove(req.From, req.To)
		if err != nil {
			if analysis.Err != nil {
				break
			}
			analysis.Err = &errors.GameError{
				Err:      err,
				GameNum:  game.Number,
				PlyNum:   i + 1,
				MoveText: req.String(),
				Line:     game.Line,
			}
			break
		}

		analysis.Moves = append(analysis.Moves, move)
		analysis.countMove(move)

		if rules.CheckDraws && analysis.DrawPly == 0 &&
			(m.CheckFiftyMoveRule() || m.CheckThreefoldRepetitionRule()) {
			analysis.DrawPly = i + 1
		}
	}

	if rules.ReportState {
		analysis.State = m.UpdateBoardState()
	}
	if rules.CheckDraws {
		analysis.Draws = m.AnalyzeDrawRules()
	}

	analysis.FinalBoard = m.Board()
	return analysis
}

func (ga *GameAnalysis) countMove(move chess.Move) {
	switch move.Type {
	case chess.Capture:
		ga.Captures++
	case chess.Castling:
		ga.Castlings++
	case chess.EnPassant:
		ga.EnPassants++
	}
	if move.IsPromotion() {
		ga.Promotions++
	}
}
