package chess

// Move is one committed half-move. It is built by the validator, appended to
// the board history and never changed afterwards, so histories may share it.
type Move struct {
	From Coordinate
	To   Coordinate
	Type MoveType

	// MovedPiece is the piece as it stood on From before the move.
	MovedPiece Piece
}

// NewMove creates a move record.
func NewMove(from, to Coordinate, t MoveType, moved Piece) Move {
	return Move{From: from, To: to, Type: t, MovedPiece: moved}
}

// IsPawnMove returns true if a pawn made this move.
func (m Move) IsPawnMove() bool {
	return m.MovedPiece.Type == Pawn
}

// IsCapture returns true if this move removed an enemy piece.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == EnPassant
}

// IsDoublePawnStep returns true for a pawn advancing two ranks, the only move
// that enables an en passant reply.
func (m Move) IsDoublePawnStep() bool {
	dy := m.To.Y - m.From.Y
	return m.IsPawnMove() && m.From.X == m.To.X && (dy == 2 || dy == -2)
}

// IsPromotion returns true for a pawn reaching its last rank. The pawn is
// always promoted to a queen.
func (m Move) IsPromotion() bool {
	if !m.IsPawnMove() {
		return false
	}
	if m.MovedPiece.Colour == Black {
		return m.To.Y == 0
	}
	return m.To.Y == BoardSize-1
}

// String returns the move in long algebraic form, e.g. "e2-e4" or "e4xd5".
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	s := m.From.String() + sep + m.To.String()
	switch m.Type {
	case Castling:
		s += " (castling)"
	case EnPassant:
		s += " e.p."
	}
	return s
}
