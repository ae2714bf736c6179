package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const (
	openingGame   = "e2e4 d7d5 e4d5 c7c5 d5c6 b7c6 g1f3 e7e6 f1c4 g8f6 e1g1 f8e7"
	knightShuffle = "g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8"
)

func analyzeTestGame(t *testing.T, line string, cfg *config.Config) (*chess.GameRecord, *processing.GameAnalysis) {
	t.Helper()
	game, err := parser.NewParser(strings.NewReader(line), cfg).ParseGame()
	if err != nil || game == nil {
		t.Fatalf("failed to parse %q: %v", line, err)
	}
	return game, processing.AnalyzeGame(game, cfg.Rules)
}

func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

// TestTextWriter_WriteGame verifies the text report layout
func TestTextWriter_WriteGame(t *testing.T) {
	cfg := quietConfig()
	game, analysis := analyzeTestGame(t, openingGame+" # Scandinavian", cfg)

	var buf bytes.Buffer
	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteGame(game, analysis); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	want := "Game 1 (line 1): 12 plies REGULAR # Scandinavian\n" +
		"Moves: 1. e2-e4 d7-d5 2. e4xd5 c7-c5 3. d5xc6ep b7xc6 4. Ng1-f3 e7-e6 5. Bf1-c4\n" +
		"  Ng8-f6 6. O-O Bf8-e7\n" +
		"\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestTextWriter_DrawAndError(t *testing.T) {
	cfg := quietConfig()
	game, analysis := analyzeTestGame(t, knightShuffle+" e2e5", cfg)

	var buf bytes.Buffer
	if err := NewTextWriter(&buf, cfg).WriteGame(game, analysis); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	output := buf.String()

	testutil.AssertContains(t, output, "8 plies REGULAR INVALID")
	testutil.AssertContains(t, output, "Draw: threefold-repetition (claimable from ply 8)")
	testutil.AssertContains(t, output, `Error: game 1, ply 9, move "e2e5"`)
}

func TestTextWriter_ShowBoard(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithVerbosity(0).
		ShowMoves(false).
		ShowBoard(true).
		WithStateReport(false).
		Build()
	game, analysis := analyzeTestGame(t, "e2e4", cfg)

	var buf bytes.Buffer
	if err := NewTextWriter(&buf, cfg).WriteGame(game, analysis); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	want := "Game 1 (line 1): 1 ply\n" +
		"rnbqkbnr\n" +
		"pppppppp\n" +
		"........\n" +
		"........\n" +
		"....P...\n" +
		"........\n" +
		"PPPP.PPP\n" +
		"RNBQKBNR\n" +
		"\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestWriters_Duplicate(t *testing.T) {
	cfg := quietConfig()
	game, analysis := analyzeTestGame(t, "e2e4", cfg)
	analysis.DuplicateOf = 3

	var buf bytes.Buffer
	if err := NewTextWriter(&buf, cfg).WriteGame(game, analysis); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	testutil.AssertContains(t, buf.String(), "Game 1 (line 1): 1 ply REGULAR DUPLICATE of game 3\n")

	testutil.AssertEqual(t, GameToJSON(game, analysis, cfg).Duplicate, 3)
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	cfg := quietConfig()

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, cfg)
	for _, line := range []string{"f2f3 e7e5 g2g4 d8h4", "e2e4 e2e4"} {
		game, analysis := analyzeTestGame(t, line, cfg)
		if err := writer.WriteGame(game, analysis); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Flush")

	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(decoded.Games))
	}

	mate := decoded.Games[0]
	testutil.AssertEqual(t, mate.State, "CHECK_MATE")
	testutil.AssertEqual(t, mate.PlyCount, 4)
	testutil.AssertEqual(t, mate.Moves[3], JSONMove{
		Ply: 4, Color: "black", Notation: "Qd8-h4", From: "d8", To: "h4", Piece: "queen", Type: "MOVEMENT",
	})
	testutil.AssertEqual(t, *mate.Draws, JSONDraws{})
	testutil.AssertEqual(t, mate.Error, "")

	broken := decoded.Games[1]
	testutil.AssertEqual(t, broken.PlyCount, 1)
	testutil.AssertContains(t, broken.Error, "ply 2")
}

func TestJSONWriter_Options(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithVerbosity(0).
		ShowMoves(false).
		ShowBoard(true).
		WithDrawChecks(false).
		Build()
	game, analysis := analyzeTestGame(t, "e2e4", cfg)

	jg := GameToJSON(game, analysis, cfg)

	testutil.AssertEqual(t, len(jg.Moves), 0)
	testutil.AssertTrue(t, jg.Draws == nil, "draws omitted")
	testutil.AssertEqual(t, len(jg.Board), 8)
	testutil.AssertEqual(t, jg.Board[4], "....P...")
}

func TestJSONWriter_Single(t *testing.T) {
	cfg := quietConfig()

	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, cfg)
	for _, line := range []string{"e2e4", "d2d4 d7d5"} {
		game, analysis := analyzeTestGame(t, line, cfg)
		if err := writer.WriteGame(game, analysis); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	var second JSONGame
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	testutil.AssertEqual(t, second.PlyCount, 2)
}

// TestJSONWriter_CloseEmpty verifies an empty batch writes nothing
func TestJSONWriter_CloseEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONWriter(&buf, quietConfig()).Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestOutputGamesJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputGamesJSON(nil, &buf); err != nil {
		t.Fatalf("OutputGamesJSON failed: %v", err)
	}
	testutil.AssertEqual(t, strings.TrimSpace(buf.String()), "{\n  \"games\": []\n}")
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	cfg := quietConfig()
	var buf bytes.Buffer

	var _ GameWriter = NewTextWriter(&buf, cfg)
	var _ GameWriter = NewJSONWriter(&buf, cfg)

	if _, ok := NewGameWriter(&buf, cfg).(*TextWriter); !ok {
		t.Error("text format should give a TextWriter")
	}
	cfg.Output.Format = config.JSONFormat
	if _, ok := NewGameWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("json format should give a JSONWriter")
	}
}

func TestFormatMove(t *testing.T) {
	tests := []struct {
		move chess.Move
		want string
	}{
		{chess.NewMove(chess.Sq(4, 1), chess.Sq(4, 3), chess.Movement, chess.W(chess.Pawn)), "e2-e4"},
		{chess.NewMove(chess.Sq(6, 0), chess.Sq(5, 2), chess.Movement, chess.W(chess.Knight)), "Ng1-f3"},
		{chess.NewMove(chess.Sq(4, 3), chess.Sq(3, 4), chess.Capture, chess.W(chess.Pawn)), "e4xd5"},
		{chess.NewMove(chess.Sq(4, 4), chess.Sq(3, 5), chess.EnPassant, chess.W(chess.Pawn)), "e5xd6ep"},
		{chess.NewMove(chess.Sq(1, 6), chess.Sq(0, 7), chess.Capture, chess.W(chess.Pawn)), "b7xa8=Q"},
		{chess.NewMove(chess.Sq(2, 1), chess.Sq(2, 0), chess.Movement, chess.B(chess.Pawn)), "c2-c1=Q"},
		{chess.NewMove(chess.Sq(4, 0), chess.Sq(6, 0), chess.Castling, chess.W(chess.King)), "O-O"},
		{chess.NewMove(chess.Sq(4, 7), chess.Sq(2, 7), chess.Castling, chess.B(chess.King)), "O-O-O"},
		{chess.NewMove(chess.Sq(3, 3), chess.Sq(5, 5), chess.Capture, chess.B(chess.Dragon)), "Dd4xf6"},
	}

	for _, tt := range tests {
		if got := FormatMove(tt.move); got != tt.want {
			t.Errorf("FormatMove(%v) = %q, want %q", tt.move, got, tt.want)
		}
	}
}

func TestOutputWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 20, "  ")
	for _, word := range []string{"alpha", "bravo", "charlie", "delta", "echo"} {
		ow.Write(word)
	}
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "alpha bravo charlie\n  delta echo\n")
}

func TestOutputWriter_NoWrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 0, "")
	for i := 0; i < 30; i++ {
		ow.Write("word")
	}
	testutil.AssertFalse(t, strings.Contains(buf.String(), "\n"))
}
