package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// sq is shorthand for chess.Sq in tables.
var sq = chess.Sq

// mustPerform performs a move and fails the test if it is rejected.
func mustPerform(t testing.TB, m *BoardManager, from, to chess.Coordinate) chess.Move {
	t.Helper()
	move, err := m.PerformMove(from, to)
	if err != nil {
		t.Fatalf("PerformMove(%v, %v) error: %v", from, to, err)
	}
	return move
}

// managerFromFEN builds a manager over a FEN snapshot.
func managerFromFEN(t testing.TB, fen string) *BoardManager {
	t.Helper()
	return NewBoardManagerFromBoard(testutil.MustParseFEN(t, fen))
}

// snapshot builds a manager over an empty board with the given side to move
// and the listed pieces placed.
func snapshot(toMove chess.Colour, placements ...placement) *BoardManager {
	b := testutil.EmptyBoardWithDummyMove(toMove)
	for _, p := range placements {
		b.SetPieceAt(p.piece, p.at)
	}
	return NewBoardManagerFromBoard(b)
}

type placement struct {
	piece chess.Piece
	at    chess.Coordinate
}

func at(p chess.Piece, x, y int) placement {
	return placement{piece: p, at: chess.Sq(x, y)}
}
