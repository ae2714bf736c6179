package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// addMove commits an already validated move: the piece travels, side effects
// of castling, en passant and promotion are applied, and the move is appended
// to the history. Nothing is re-validated.
func (m *BoardManager) addMove(move chess.Move) {
	switch move.Type {
	case chess.Castling:
		m.moveRook(move)
	case chess.EnPassant:
		// The captured pawn is the one that made the previous move.
		if last, ok := m.board.LastMove(); ok {
			m.board.Clear(last.To)
		}
	}

	m.movePiece(move.From, move.To)
	m.promote(move.To)
	m.board.AppendMove(move)
}

// movePiece relocates whatever stands on 'from' and marks it moved.
func (m *BoardManager) movePiece(from, to chess.Coordinate) {
	if !from.InBounds() || !to.InBounds() || from == to {
		return
	}
	piece := m.board.PieceAt(from)
	piece.Moved = true
	m.board.Clear(from)
	m.board.Squares[to.X][to.Y] = piece
}

// moveRook performs the rook half of a castling move.
func (m *BoardManager) moveRook(move chess.Move) {
	m.movePiece(castlingRookSquare(move.From, move.To), castlingRookTarget(move.From, move.To))
}

// promote replaces a pawn standing on its last rank with a queen.
func (m *BoardManager) promote(at chess.Coordinate) {
	piece := m.board.PieceAt(at)
	if piece.Type != chess.Pawn {
		return
	}

	lastRank := chess.BoardSize - 1
	if piece.Colour == chess.Black {
		lastRank = 0
	}
	if at.Y == lastRank {
		queen := chess.NewPiece(chess.Queen, piece.Colour)
		queen.Moved = true
		m.board.Squares[at.X][at.Y] = queen
	}
}
