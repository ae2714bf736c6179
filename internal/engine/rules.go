package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// fiftyMoveWindow is fifty full moves counted in half-moves.
const fiftyMoveWindow = 100

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// ThreefoldRepetition is true if the current position has occurred
	// at least three times since the last irreversible move.
	ThreefoldRepetition bool

	// FiftyMoveRule is true if the last 100 half-moves contain no pawn move,
	// capture, castling or en passant.
	FiftyMoveRule bool

	// InsufficientMaterial is true if neither side has enough material to mate.
	InsufficientMaterial bool
}

// Any reports whether any draw condition holds.
func (r DrawRuleResult) Any() bool {
	return r.ThreefoldRepetition || r.FiftyMoveRule || r.InsufficientMaterial
}

// AnalyzeDrawRules evaluates every draw rule on the current position.
func (m *BoardManager) AnalyzeDrawRules() DrawRuleResult {
	return DrawRuleResult{
		ThreefoldRepetition:  m.CheckThreefoldRepetitionRule(),
		FiftyMoveRule:        m.CheckFiftyMoveRule(),
		InsufficientMaterial: HasInsufficientMaterial(m.board),
	}
}

// CheckThreefoldRepetitionRule reports whether the current grid has occurred
// at least three times, counting the current occurrence. Only positions since
// the most recent irreversible move are considered, including the initial
// position when no such move exists; they are rebuilt by replaying the history
// from the initial position.
func (m *BoardManager) CheckThreefoldRepetitionRule() bool {
	history := m.board.History
	start := lastIrreversibleMove(history)

	sim := NewBoardManagerFromMoves(history[:start])

	count := 0
	if start == 0 && (len(history) == 0 || !history[0].Type.IsIrreversible()) {
		if sim.board.SamePosition(m.board) {
			count++
		}
	}
	for _, move := range history[start:] {
		sim.addMove(move)
		if sim.board.SamePosition(m.board) {
			count++
		}
	}
	return count >= 3
}

// CheckFiftyMoveRule reports whether the last 100 half-moves were all plain
// movement by pieces other than pawns.
func (m *BoardManager) CheckFiftyMoveRule() bool {
	history := m.board.History
	if len(history) < fiftyMoveWindow {
		return false
	}

	window := history[len(history)-fiftyMoveWindow:]
	return !slices.ContainsFunc(window, func(move chess.Move) bool {
		return move.Type.IsIrreversible() || move.IsPawnMove()
	})
}

// lastIrreversibleMove returns the index of the most recent move that is not
// plain movement, or 0 if there is none.
func lastIrreversibleMove(history []chess.Move) int {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Type.IsIrreversible() {
			return i
		}
	}
	return 0
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			piece := board.Squares[x][y]
			switch piece.Type {
			case chess.Empty, chess.King:
				continue
			case chess.Bishop, chess.Knight:
			default:
				// Pawns, rooks, queens and dragons count as mating material.
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Type)
				if piece.Type == chess.Bishop {
					whiteBishopOnLight = isLightSquare(x, y)
				}
			} else {
				blackPieces = append(blackPieces, piece.Type)
				if piece.Type == chess.Bishop {
					blackBishopOnLight = isLightSquare(x, y)
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return true
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return true
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(x, y int) bool {
	return (x+y)%2 == 1
}
