package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isDoubleMove reports whether a pawn may advance two squares from 'from' to
// 'to': it must be unmoved, on its starting rank, and both squares ahead empty.
func (m *BoardManager) isDoubleMove(from, to chess.Coordinate, pawn chess.Piece) bool {
	if pawn.Moved || !pawn.IsStartingSquare(from) {
		return false
	}

	for _, p := range pawn.DoubleMovePaths() {
		if from.Add(p.DX, p.DY) != to {
			continue
		}
		dir := chess.ColourOffset(pawn.Colour)
		return m.board.PieceAt(from.Add(0, dir)).IsEmpty() && m.board.PieceAt(to).IsEmpty()
	}
	return false
}

// isEnPassant reports whether a pawn may take the enemy pawn that has just
// advanced two squares beside it, landing on the square that pawn skipped.
func (m *BoardManager) isEnPassant(from, to chess.Coordinate, pawn chess.Piece) bool {
	last, ok := m.board.LastMove()
	if !ok || !last.IsDoublePawnStep() || last.MovedPiece.Colour == pawn.Colour {
		return false
	}
	if !m.board.PieceAt(to).IsEmpty() {
		return false
	}

	// The capturing pawn must stand on an adjacent file of the same rank.
	if abs(last.To.X-from.X) != 1 || last.To.Y != from.Y {
		return false
	}

	passed := chess.Sq(last.To.X, (last.To.Y+last.From.Y)/2)
	if to != passed {
		return false
	}

	dir := chess.ColourOffset(pawn.Colour)
	return to.Y-from.Y == dir
}
