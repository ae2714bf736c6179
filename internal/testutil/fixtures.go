package testutil

import "github.com/lgbarn/chess-rules-go/internal/chess"

// DummyMove returns a no-op half-move for the given colour: a rook "moving"
// from a1 to a1. It only advances the turn and never counts as a pawn move
// or capture.
func DummyMove(colour chess.Colour) chess.Move {
	return chess.NewMove(chess.Sq(0, 0), chess.Sq(0, 0), chess.Movement, chess.NewPiece(chess.Rook, colour))
}

// AddDummyMoves appends n dummy half-moves, alternating colours starting with
// the side to move.
func AddDummyMoves(b *chess.Board, n int) {
	for i := 0; i < n; i++ {
		b.AppendMove(DummyMove(b.SideToMove()))
	}
}

// EmptyBoardWithDummyMove returns an empty board on which the given colour
// is to move. Black to move is arranged with a single dummy White move.
func EmptyBoardWithDummyMove(toMove chess.Colour) *chess.Board {
	b := chess.NewBoard()
	if toMove == chess.Black {
		AddDummyMoves(b, 1)
	}
	return b
}

// Place puts p on every listed square, applying the board's moved inference.
func Place(b *chess.Board, p chess.Piece, squares ...chess.Coordinate) {
	for _, c := range squares {
		b.SetPieceAt(p, c)
	}
}

// CountPieces returns the number of pieces of the given colour.
func CountPieces(b *chess.Board, colour chess.Colour) int {
	return len(b.Occupied(colour))
}
