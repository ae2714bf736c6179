package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// walkMovement returns every empty square reachable from 'from' along the
// given paths. Each walk stops at the board edge or the first occupied square.
func (m *BoardManager) walkMovement(from chess.Coordinate, paths []chess.Path) []chess.Coordinate {
	var squares []chess.Coordinate

	for _, p := range paths {
		c := from.Add(p.DX, p.DY)
		for c.InBounds() && m.board.PieceAt(c).IsEmpty() {
			squares = append(squares, c)
			if !p.Repeat {
				break
			}
			c = c.Add(p.DX, p.DY)
		}
	}
	return squares
}

// walkCapture returns every enemy-occupied square an attacker of the given
// colour could take from 'from' along the given paths. Empty squares are
// passed over but not recorded; a walk ends on the first occupied square,
// which is recorded only if it holds an enemy piece.
func (m *BoardManager) walkCapture(from chess.Coordinate, paths []chess.Path, attacker chess.Colour) []chess.Coordinate {
	var squares []chess.Coordinate

	for _, p := range paths {
		c := from.Add(p.DX, p.DY)
		for c.InBounds() {
			piece := m.board.PieceAt(c)
			if !piece.IsEmpty() {
				if piece.Colour != attacker {
					squares = append(squares, c)
				}
				break // Blocked
			}
			if !p.Repeat {
				break
			}
			c = c.Add(p.DX, p.DY)
		}
	}
	return squares
}
