package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestEmptyBoardWithDummyMove(t *testing.T) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		b := EmptyBoardWithDummyMove(colour)
		if got := b.SideToMove(); got != colour {
			t.Errorf("SideToMove() = %v, want %v", got, colour)
		}
		if got := b.PieceCount(); got != 0 {
			t.Errorf("PieceCount() = %d, want 0", got)
		}
	}
}

func TestAddDummyMoves(t *testing.T) {
	b := chess.NewBoard()
	AddDummyMoves(b, 5)

	if len(b.History) != 5 {
		t.Fatalf("len(History) = %d, want 5", len(b.History))
	}
	for i, m := range b.History {
		want := chess.White
		if i%2 == 1 {
			want = chess.Black
		}
		if m.MovedPiece.Colour != want {
			t.Errorf("move %d colour = %v, want %v", i, m.MovedPiece.Colour, want)
		}
		if m.IsPawnMove() || m.Type.IsIrreversible() {
			t.Errorf("move %d = %v is not a quiet move", i, m)
		}
	}
}

func TestPlaceAndCount(t *testing.T) {
	b := chess.NewBoard()
	Place(b, chess.W(chess.Rook), chess.Sq(0, 1), chess.Sq(1, 0))
	Place(b, chess.B(chess.King), chess.Sq(4, 0))

	if got := CountPieces(b, chess.White); got != 2 {
		t.Errorf("CountPieces(White) = %d, want 2", got)
	}
	if got := CountPieces(b, chess.Black); got != 1 {
		t.Errorf("CountPieces(Black) = %d, want 1", got)
	}
	if !b.PieceAt(chess.Sq(0, 1)).Moved {
		t.Error("rook on a2 not marked moved")
	}
}
