package parser

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// parseTestGames is a helper that parses input and returns every game.
func parseTestGames(t *testing.T, input string) []*chess.GameRecord {
	t.Helper()
	p := NewParser(strings.NewReader(input), config.NewConfig())
	games, err := p.ParseAllGames()
	if err != nil {
		t.Fatalf("ParseAllGames error: %v", err)
	}
	return games
}

func TestParseSimpleGame(t *testing.T) {
	games := parseTestGames(t, "4,1-4,3 4,6-4,4 6,0-5,2\n")

	if len(games) != 1 {
		t.Fatalf("got %d games, want 1", len(games))
	}
	game := games[0]

	testutil.AssertEqual(t, game.Number, 1)
	testutil.AssertEqual(t, game.Line, 1)
	testutil.AssertEqual(t, game.PlyCount(), 3)
	testutil.AssertEqual(t, game.Moves[0].From, chess.Sq(4, 1))
	testutil.AssertEqual(t, game.Moves[0].To, chess.Sq(4, 3))
	testutil.AssertEqual(t, game.Moves[2].Text, "6,0-5,2")
	testutil.AssertNoError(t, game.Err)
}

func TestParseAlgebraicMoves(t *testing.T) {
	games := parseTestGames(t, "1. e2-e4 e7e5 2. g1-f3 b8xc6\n")

	want := []chess.MoveRequest{
		{From: chess.Sq(4, 1), To: chess.Sq(4, 3), Text: "e2-e4"},
		{From: chess.Sq(4, 6), To: chess.Sq(4, 4), Text: "e7e5"},
		{From: chess.Sq(6, 0), To: chess.Sq(5, 2), Text: "g1-f3"},
		{From: chess.Sq(1, 7), To: chess.Sq(2, 5), Text: "b8xc6"},
	}
	testutil.AssertEqual(t, games[0].Moves, want)
}

func TestParseMultipleGames(t *testing.T) {
	input := `# opening lines
4,1-4,3 4,6-4,4

# second game
3,1-3,3  # queen's pawn
6,0-5,2 6,7-5,5 5,2-6,0`

	games := parseTestGames(t, input)

	if len(games) != 3 {
		t.Fatalf("got %d games, want 3", len(games))
	}
	testutil.AssertEqual(t, games[0].Line, 2)
	testutil.AssertEqual(t, games[1].Number, 2)
	testutil.AssertEqual(t, games[1].Line, 5)
	testutil.AssertEqual(t, games[1].Comment, "queen's pawn")
	testutil.AssertEqual(t, games[2].PlyCount(), 3, "last line without newline")
}

func TestParseOutOfBoundsCoordinates(t *testing.T) {
	games := parseTestGames(t, "8,6-7,6\n")

	testutil.AssertNoError(t, games[0].Err, "range is checked by the engine")
	testutil.AssertEqual(t, games[0].Moves[0].From, chess.Sq(8, 6))
}

func TestParseMalformedMove(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPly  int
		wantText string
		wantKept int
	}{
		{"garbage word", "4,1-4,3 hello 4,6-4,4", 2, "hello", 1},
		{"missing target", "4,1-", 1, "4,1-", 0},
		{"bad file", "i2-i4", 1, "i2-i4", 0},
		{"stray symbol", "4,1-4,3 @@ 4,6-4,4", 2, "@@", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games := parseTestGames(t, tt.input+"\n")
			if len(games) != 1 {
				t.Fatalf("got %d games, want 1", len(games))
			}
			game := games[0]

			testutil.AssertErrorIs(t, game.Err, errors.ErrMalformedGame)
			var gameErr *errors.GameError
			if !stderrors.As(game.Err, &gameErr) {
				t.Fatalf("Err %v is not a *GameError", game.Err)
			}
			testutil.AssertEqual(t, gameErr.PlyNum, tt.wantPly)
			testutil.AssertEqual(t, gameErr.MoveText, tt.wantText)
			testutil.AssertEqual(t, game.PlyCount(), tt.wantKept)
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only a comment\n", "   \t\n"} {
		games := parseTestGames(t, input)
		testutil.AssertEqual(t, len(games), 0, "input %q", input)
	}
}

func TestParseGame_ReturnsNilAtEOF(t *testing.T) {
	p := NewParser(strings.NewReader("4,1-4,3\n"), nil)

	game, err := p.ParseGame()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, game != nil, "first game")

	game, err = p.ParseGame()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, game == nil, "no second game")
}

func TestLexer_LogsUnknownCharacters(t *testing.T) {
	var log bytes.Buffer
	cfg := config.NewConfig()
	cfg.Verbosity = 2
	cfg.LogFile = &log

	NewParser(strings.NewReader("4,1-4,3 @\n"), cfg).ParseAllGames() //nolint:errcheck // only the log matters

	testutil.AssertContains(t, log.String(), "Unknown character @")
	testutil.AssertContains(t, log.String(), "line 1")
}

func TestDecodeMove(t *testing.T) {
	tests := []struct {
		text    string
		want    chess.MoveRequest
		wantErr bool
	}{
		{text: "0,0-7,7", want: chess.MoveRequest{From: chess.Sq(0, 0), To: chess.Sq(7, 7), Text: "0,0-7,7"}},
		{text: "1,4x2,5", want: chess.MoveRequest{From: chess.Sq(1, 4), To: chess.Sq(2, 5), Text: "1,4x2,5"}},
		{text: "a1h8", want: chess.MoveRequest{From: chess.Sq(0, 0), To: chess.Sq(7, 7), Text: "a1h8"}},
		{text: "e1-g1", want: chess.MoveRequest{From: chess.Sq(4, 0), To: chess.Sq(6, 0), Text: "e1-g1"}},
		{text: "Nf3", wantErr: true},
		{text: "e2-e9", wantErr: true},
		{text: "1,2,3-4", wantErr: true},
		{text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeMove(tt.text)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrMalformedGame)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestIsMoveNumber(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"1.", true},
		{"12.", true},
		{"3...", true},
		{"1", false},
		{".", false},
		{"1.e4", false},
		{"4,1-4,3", false},
	}

	for _, tt := range tests {
		if got := isMoveNumber(tt.text); got != tt.want {
			t.Errorf("isMoveNumber(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	testutil.AssertEqual(t, MoveToken.String(), "MOVE")
	testutil.AssertEqual(t, EOLToken.String(), "EOL")
	testutil.AssertEqual(t, TokenType(99).String(), "UNKNOWN")
}
