package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canCastle reports whether the king on 'from' may castle to 'to'.
// Whether the king ends up attacked is left to the self-check guard.
func (m *BoardManager) canCastle(from, to chess.Coordinate, king chess.Piece) bool {
	if king.Moved {
		return false
	}

	matched := false
	for _, p := range king.CastlingPaths() {
		if from.Add(p.DX, p.DY) == to {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	dir := sign(to.X - from.X)
	rookSquare := castlingRookSquare(from, to)
	rook := m.board.PieceAt(rookSquare)
	if !rook.Is(chess.Rook, king.Colour) || rook.Moved {
		return false
	}

	// Every square between king and rook must be empty.
	for c := from.Add(dir, 0); c != rookSquare; c = c.Add(dir, 0) {
		if !m.board.PieceAt(c).IsEmpty() {
			return false
		}
	}

	if m.isKingInCheck(king.Colour) {
		return false
	}
	return !m.isSquareAttacked(from.Add(dir, 0), king.Colour.Opposite())
}

// castlingRookSquare returns the corner the rook comes from.
func castlingRookSquare(from, to chess.Coordinate) chess.Coordinate {
	if to.X < from.X {
		return chess.Sq(0, from.Y)
	}
	return chess.Sq(chess.BoardSize-1, from.Y)
}

// castlingRookTarget returns the square the rook lands on: beside the king,
// on the side it came from.
func castlingRookTarget(from, to chess.Coordinate) chess.Coordinate {
	if to.X < from.X {
		return chess.Sq(to.X+1, to.Y)
	}
	return chess.Sq(to.X-1, to.Y)
}
