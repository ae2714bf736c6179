package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// UpdateBoardState classifies the position for the side to move, stores the
// result on the board and returns it.
func (m *BoardManager) UpdateBoardState() chess.BoardState {
	colour := m.sideToMove()
	inCheck := m.isKingInCheck(colour)
	canMove := m.isAnyMoveValid(colour)

	var state chess.BoardState
	switch {
	case inCheck && canMove:
		state = chess.Check
	case inCheck:
		state = chess.CheckMate
	case canMove:
		state = chess.Regular
	default:
		state = chess.StaleMate
	}

	m.board.State = state
	return state
}

// isAnyMoveValid returns true if the given colour has at least one legal
// move. It tries every own piece against every square and stops at the first
// success; both rejection kinds simply mean "not this one".
func (m *BoardManager) isAnyMoveValid(colour chess.Colour) bool {
	for _, from := range m.board.Occupied(colour) {
		for x := 0; x < chess.BoardSize; x++ {
			for y := 0; y < chess.BoardSize; y++ {
				if _, err := m.validateMove(from, chess.Sq(x, y)); err == nil {
					return true
				}
			}
		}
	}
	return false
}

// LegalDestinations returns every square the piece on 'from' may legally move
// to, in file-then-rank order. It is empty when the square is empty or holds
// a piece of the side not on move.
func (m *BoardManager) LegalDestinations(from chess.Coordinate) []chess.Coordinate {
	var squares []chess.Coordinate
	for _, move := range m.legalMovesFrom(from) {
		squares = append(squares, move.To)
	}
	return squares
}

// LegalMoves returns every legal move for the side to move.
func (m *BoardManager) LegalMoves() []chess.Move {
	var moves []chess.Move
	for _, from := range m.board.Occupied(m.sideToMove()) {
		moves = append(moves, m.legalMovesFrom(from)...)
	}
	return moves
}

func (m *BoardManager) legalMovesFrom(from chess.Coordinate) []chess.Move {
	var moves []chess.Move
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			if move, err := m.validateMove(from, chess.Sq(x, y)); err == nil {
				moves = append(moves, move)
			}
		}
	}
	return moves
}
