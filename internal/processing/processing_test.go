package processing

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// parseTestGame parses a single game line.
func parseTestGame(t *testing.T, line string) *chess.GameRecord {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	game, err := parser.NewParser(strings.NewReader(line), cfg).ParseGame()
	if err != nil || game == nil {
		t.Fatalf("failed to parse %q: %v", line, err)
	}
	return game
}

const (
	// e4 d5 exd5 c5 dxc6 e.p. bxc6 Nf3 e6 Bc4 Nf6 O-O Be7
	openingGame = "e2e4 d7d5 e4d5 c7c5 d5c6 b7c6 g1f3 e7e6 f1c4 g8f6 e1g1 f8e7"

	knightShuffle = "g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8"

	foolsMate = "f2f3 e7e5 g2g4 d8h4"

	// The a-pawn captures its way to a8 and promotes.
	promotionGame = "a2a4 b7b5 a4b5 a7a6 b5a6 c8b7 a6b7 b8c6 b7a8"
)

// TestAnalyzeGame verifies game analysis functionality
func TestAnalyzeGame(t *testing.T) {
	analysis := AnalyzeGame(parseTestGame(t, "4,1-4,3 4,6-4,4 6,0-5,2"), nil)

	if analysis.FinalBoard == nil {
		t.Fatal("Expected non-nil board")
	}
	testutil.AssertNoError(t, analysis.Err)
	testutil.AssertTrue(t, analysis.Valid())
	testutil.AssertEqual(t, analysis.PlyCount(), 3)
	testutil.AssertEqual(t, analysis.State, chess.Regular)
	testutil.AssertEqual(t, analysis.FinalBoard.SideToMove(), chess.Black)
	testutil.AssertFalse(t, analysis.Draws.Any())
}

func TestAnalyzeGame_MoveCounters(t *testing.T) {
	analysis := AnalyzeGame(parseTestGame(t, openingGame), nil)

	testutil.AssertNoError(t, analysis.Err)
	testutil.AssertEqual(t, analysis.PlyCount(), 12)
	testutil.AssertEqual(t, analysis.Captures, 2)
	testutil.AssertEqual(t, analysis.EnPassants, 1)
	testutil.AssertEqual(t, analysis.Castlings, 1)
	testutil.AssertEqual(t, analysis.Promotions, 0)
	testutil.AssertEqual(t, analysis.Moves[4].Type, chess.EnPassant)
}

func TestAnalyzeGame_Promotion(t *testing.T) {
	analysis := AnalyzeGame(parseTestGame(t, promotionGame), nil)

	testutil.AssertNoError(t, analysis.Err)
	testutil.AssertEqual(t, analysis.Captures, 4)
	testutil.AssertEqual(t, analysis.Promotions, 1)

	queen := analysis.FinalBoard.PieceAt(chess.Sq(0, 7))
	testutil.AssertTrue(t, queen.Is(chess.Queen, chess.White), "a8 holds %v", queen)
}

// TestAnalyzeGame_Repetition verifies repetition detection
func TestAnalyzeGame_Repetition(t *testing.T) {
	analysis := AnalyzeGame(parseTestGame(t, knightShuffle), nil)

	if !analysis.Draws.ThreefoldRepetition {
		t.Error("Expected repetition to be detected")
	}
	testutil.AssertEqual(t, analysis.DrawPly, 8)
	testutil.AssertFalse(t, analysis.Draws.FiftyMoveRule)
}

func TestAnalyzeGame_DrawChecksDisabled(t *testing.T) {
	rules := config.NewRulesConfig()
	rules.CheckDraws = false

	analysis := AnalyzeGame(parseTestGame(t, knightShuffle), rules)

	testutil.AssertFalse(t, analysis.Draws.Any())
	testutil.AssertEqual(t, analysis.DrawPly, 0)
}

func TestAnalyzeGame_Checkmate(t *testing.T) {
	analysis := AnalyzeGame(parseTestGame(t, foolsMate), nil)

	testutil.AssertEqual(t, analysis.State, chess.CheckMate)
	testutil.AssertTrue(t, analysis.State.IsTerminal())
}

func TestAnalyzeGame_StateReportDisabled(t *testing.T) {
	rules := config.NewRulesConfig()
	rules.ReportState = false

	analysis := AnalyzeGame(parseTestGame(t, foolsMate), rules)

	testutil.AssertEqual(t, analysis.State, chess.Regular)
}

func TestAnalyzeGame_RejectedMove(t *testing.T) {
	game := parseTestGame(t, "e2e4 e7e5 e4e5 d7d5")
	analysis := AnalyzeGame(game, nil)

	testutil.AssertErrorIs(t, analysis.Err, errors.ErrInvalidMove)
	testutil.AssertContains(t, analysis.Err.Error(), `ply 3, move "e4e5"`)
	testutil.AssertEqual(t, analysis.PlyCount(), 2)
	testutil.AssertFalse(t, analysis.Valid())

	// The position before the rejected move is kept.
	pawn := analysis.FinalBoard.PieceAt(chess.Sq(4, 3))
	testutil.AssertTrue(t, pawn.Is(chess.Pawn, chess.White))
}

func TestAnalyzeGame_KingLeftInCheck(t *testing.T) {
	// Qh4 checks the king on f2. Blocking on g3 is legal, a3 is not.
	game := parseTestGame(t, "f2f3 e7e5 e1f2 d8h4 g2g3 h4g3 f2g3")
	analysis := AnalyzeGame(game, nil)

	testutil.AssertNoError(t, analysis.Err)
	testutil.AssertEqual(t, analysis.Captures, 2)

	game = parseTestGame(t, "f2f3 e7e5 e1f2 d8h4 a2a3")
	analysis = AnalyzeGame(game, nil)

	testutil.AssertErrorIs(t, analysis.Err, errors.ErrKingInCheck)
	testutil.AssertErrorIs(t, analysis.Err, errors.ErrInvalidMove)
}

func TestAnalyzeGame_MaxPlies(t *testing.T) {
	rules := config.NewRulesConfig()
	rules.MaxPlies = 5

	analysis := AnalyzeGame(parseTestGame(t, openingGame), rules)

	testutil.AssertTrue(t, analysis.Truncated)
	testutil.AssertEqual(t, analysis.PlyCount(), 5)
	testutil.AssertEqual(t, analysis.EnPassants, 1)
}

func TestAnalyzeGame_ParseErrorKeepsEarlierMoves(t *testing.T) {
	analysis := AnalyzeGame(parseTestGame(t, "e2e4 Nf6 e7e5"), nil)

	testutil.AssertErrorIs(t, analysis.Err, errors.ErrMalformedGame)
	testutil.AssertEqual(t, analysis.PlyCount(), 1)
}

func TestAnalyzeGame_ParseErrorNotOverwritten(t *testing.T) {
	analysis := AnalyzeGame(parseTestGame(t, "e2e4 e2e4 ???"), nil)

	testutil.AssertErrorIs(t, analysis.Err, errors.ErrMalformedGame)
	testutil.AssertFalse(t, stderrors.Is(analysis.Err, errors.ErrInvalidMove), "rejected move replaced the parse error")
	testutil.AssertEqual(t, analysis.PlyCount(), 1)
	testutil.AssertEqual(t, len(analysis.FinalBoard.History), 1)
}

func TestAnalyzeGame_RejectedMoves(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantPly  int
		wantErr  error
		accepted int
	}{
		{"off board", "4,1-4,8", 1, errors.ErrInvalidMove, 0},
		{"wrong side", "e7e5", 1, errors.ErrInvalidMove, 0},
		{"occupied by own piece", "e2e4 e7e5 d1e2 b8c6 e2e4", 5, errors.ErrInvalidMove, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := AnalyzeGame(parseTestGame(t, tt.line), nil)

			testutil.AssertErrorIs(t, analysis.Err, tt.wantErr)
			testutil.AssertEqual(t, analysis.PlyCount(), tt.accepted)
			var gameErr *errors.GameError
			if !stderrors.As(analysis.Err, &gameErr) {
				t.Fatalf("Err %v is not a *GameError", analysis.Err)
			}
			testutil.AssertEqual(t, gameErr.PlyNum, tt.wantPly)
		})
	}
}

