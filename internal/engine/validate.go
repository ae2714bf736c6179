package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// validateMove turns a (from, to) request into a legal Move for the side to
// move, or explains why it is not one. The board is never modified.
func (m *BoardManager) validateMove(from, to chess.Coordinate) (chess.Move, error) {
	if !from.InBounds() {
		return chess.Move{}, invalid(from, to, errors.ReasonBadStart)
	}
	if !to.InBounds() {
		return chess.Move{}, invalid(from, to, errors.ReasonBadFinal)
	}

	piece := m.board.PieceAt(from)
	if piece.IsEmpty() {
		return chess.Move{}, invalid(from, to, errors.ReasonNoPiece)
	}
	if piece.Colour != m.sideToMove() {
		return chess.Move{}, invalid(from, to, errors.ReasonNotYourPiece)
	}

	var (
		move chess.Move
		err  error
	)
	target := m.board.PieceAt(to)
	switch {
	case target.IsEmpty():
		move, err = m.validateMovement(from, to, piece)
	case target.Colour == piece.Colour:
		err = invalid(from, to, errors.ReasonOwnPiece)
	default:
		move, err = m.validateCapture(from, to, piece)
	}
	if err != nil {
		return chess.Move{}, err
	}

	if m.exposesKing(move) {
		return chess.Move{}, errors.NewMoveError(errors.ErrKingInCheck, from, to, errors.ReasonExposesKing)
	}
	return move, nil
}

// validateMovement classifies a move onto an empty square.
func (m *BoardManager) validateMovement(from, to chess.Coordinate, piece chess.Piece) (chess.Move, error) {
	if slices.Contains(m.walkMovement(from, piece.MovePaths()), to) {
		return chess.NewMove(from, to, chess.Movement, piece), nil
	}

	switch piece.Type {
	case chess.Pawn:
		if m.isDoubleMove(from, to, piece) {
			return chess.NewMove(from, to, chess.Movement, piece), nil
		}
		if m.isEnPassant(from, to, piece) {
			return chess.NewMove(from, to, chess.EnPassant, piece), nil
		}
	case chess.King:
		if m.canCastle(from, to, piece) {
			return chess.NewMove(from, to, chess.Castling, piece), nil
		}
	}

	return chess.Move{}, invalid(from, to, errors.ReasonNoPath)
}

// validateCapture classifies a move onto an enemy-occupied square.
func (m *BoardManager) validateCapture(from, to chess.Coordinate, piece chess.Piece) (chess.Move, error) {
	if slices.Contains(m.walkCapture(from, piece.CapturePaths(), piece.Colour), to) {
		return chess.NewMove(from, to, chess.Capture, piece), nil
	}
	return chess.Move{}, invalid(from, to, errors.ReasonNoPath)
}

// exposesKing commits the move on a copy of the board and reports whether
// the mover's king is then attacked.
func (m *BoardManager) exposesKing(move chess.Move) bool {
	sim := NewBoardManagerFromBoard(m.board.Copy())
	sim.addMove(move)
	return sim.isKingInCheck(move.MovedPiece.Colour)
}

func invalid(from, to chess.Coordinate, reason string) error {
	return errors.NewMoveError(errors.ErrInvalidMove, from, to, reason)
}
