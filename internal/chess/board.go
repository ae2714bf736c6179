package chess

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Board represents the authoritative position: the piece grid, the ordered
// move history and the last derived game state.
type Board struct {
	// The board squares, indexed Squares[x][y] (file, rank).
	Squares [BoardSize][BoardSize]Piece

	// Every committed move, oldest first. Append-only during play.
	History []Move

	// Game state computed by the last state update.
	State BoardState
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{State: Regular}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position and
// clears the history.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 0; x < BoardSize; x++ {
		b.Squares[x][0] = W(backRank[x])
		b.Squares[x][1] = W(Pawn)
		b.Squares[x][6] = B(Pawn)
		b.Squares[x][7] = B(backRank[x])
	}

	b.History = nil
	b.State = Regular
}

// PieceAt returns the piece at c. Off-board coordinates read as empty.
func (b *Board) PieceAt(c Coordinate) Piece {
	if !c.InBounds() {
		return Piece{}
	}
	return b.Squares[c.X][c.Y]
}

// SetPieceAt places a copy of p at c. A piece placed outside its starting
// squares is marked as moved, so snapshots built square by square behave as
// if the piece had travelled there. Off-board coordinates are ignored.
func (b *Board) SetPieceAt(p Piece, c Coordinate) {
	if !c.InBounds() {
		return
	}
	if !p.IsEmpty() && !p.IsStartingSquare(c) {
		p.Moved = true
	}
	b.Squares[c.X][c.Y] = p
}

// Clear empties the square at c.
func (b *Board) Clear(c Coordinate) {
	if c.InBounds() {
		b.Squares[c.X][c.Y] = Piece{}
	}
}

// Copy creates a deep copy of the board. The grid is copied by value; the
// history slice is cloned but shares the immutable Move records.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.History = slices.Clone(b.History)
	return newBoard
}

// SideToMove derives whose turn it is from the history length.
func (b *Board) SideToMove() Colour {
	if len(b.History)%2 == 0 {
		return White
	}
	return Black
}

// AppendMove records m at the end of the history.
func (b *Board) AppendMove(m Move) {
	b.History = append(b.History, m)
}

// LastMove returns the most recent move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.History) == 0 {
		return Move{}, false
	}
	return b.History[len(b.History)-1], true
}

// PieceCount returns the number of occupied squares.
func (b *Board) PieceCount() int {
	n := 0
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if !b.Squares[x][y].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Occupied returns the coordinates of every piece of the given colour,
// file by file.
func (b *Board) Occupied(colour Colour) []Coordinate {
	var squares []Coordinate
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			p := b.Squares[x][y]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Sq(x, y))
			}
		}
	}
	return squares
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Coordinate, bool) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.Squares[x][y].Is(King, colour) {
				return Sq(x, y), true
			}
		}
	}
	return Coordinate{}, false
}

// SamePosition reports whether both grids hold the same piece types and
// colours on every square. History and moved flags are not compared.
func (b *Board) SamePosition(other *Board) bool {
	for x := 0; x < BoardSize; x++ {
		if !slices.EqualFunc(b.Squares[x][:], other.Squares[x][:], Piece.Equal) {
			return false
		}
	}
	return true
}

// String renders the grid as an eight-line diagram, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(b.Squares[x][y].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
