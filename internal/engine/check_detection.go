package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// isKingInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func (m *BoardManager) isKingInCheck(colour chess.Colour) bool {
	king, ok := m.board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return m.isSquareAttacked(king, colour.Opposite())
}

// isSquareAttacked returns true if any piece of the given colour could
// capture on the square, walking each attacker's own capture patterns.
func (m *BoardManager) isSquareAttacked(square chess.Coordinate, byColour chess.Colour) bool {
	// The walk only records enemy-occupied squares, so an empty target is
	// probed with a stand-in of the defending colour.
	if m.board.PieceAt(square).IsEmpty() {
		probe := m.board.Copy()
		probe.Squares[square.X][square.Y] = chess.NewPiece(chess.Pawn, byColour.Opposite())
		return NewBoardManagerFromBoard(probe).isSquareAttacked(square, byColour)
	}

	for _, from := range m.board.Occupied(byColour) {
		attacker := m.board.PieceAt(from)
		if slices.Contains(m.walkCapture(from, attacker.CapturePaths(), byColour), square) {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the side to move is in check.
func (m *BoardManager) IsInCheck() bool {
	return m.isKingInCheck(m.sideToMove())
}
