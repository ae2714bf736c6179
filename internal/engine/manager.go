// Package engine provides chess move validation and game-state derivation.
//
// A BoardManager owns one chess.Board. PerformMove validates a request
// against the full rules (movement and capture patterns, castling, en
// passant, promotion and the self-check guard) and commits it. Game state and
// draw rules are always recomputed from the grid and history; nothing is cached
// between mutations.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// BoardManager validates and commits moves on a single board.
// A manager is not safe for concurrent use.
type BoardManager struct {
	board *chess.Board
}

// NewBoardManager creates a manager holding the standard initial position.
func NewBoardManager() *BoardManager {
	return &BoardManager{board: chess.NewInitialBoard()}
}

// NewBoardManagerFromMoves creates a manager by replaying moves onto the
// initial position. The moves are committed without validation.
func NewBoardManagerFromMoves(moves []chess.Move) *BoardManager {
	m := NewBoardManager()
	for _, move := range moves {
		m.addMove(move)
	}
	return m
}

// NewBoardManagerFromBoard creates a manager over an existing board snapshot.
// The board is used in place, not copied: moves performed through the manager
// are visible to the caller.
func NewBoardManagerFromBoard(board *chess.Board) *BoardManager {
	return &BoardManager{board: board}
}

// Board returns the live board.
func (m *BoardManager) Board() *chess.Board {
	return m.board
}

// PerformMove validates the move from one square to another and commits it.
// On failure the returned error is a *errors.MoveError and the board is left
// untouched.
func (m *BoardManager) PerformMove(from, to chess.Coordinate) (chess.Move, error) {
	move, err := m.validateMove(from, to)
	if err != nil {
		return chess.Move{}, err
	}

	m.addMove(move)
	return move, nil
}

// sideToMove returns the colour whose turn it is.
func (m *BoardManager) sideToMove() chess.Colour {
	return m.board.SideToMove()
}
