// Package chess provides the board model used by the rules engine: colours,
// piece kinds with their movement catalog, coordinates, moves and the board.
package chess

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceType identifies the kind of a piece. The set is closed: every
// behaviour a kind has lives in the catalog in piece.go.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Dragon
	numPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "Dragon"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K', 'D'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// MoveType categorizes a committed move.
type MoveType int

const (
	Movement MoveType = iota
	Capture
	Castling
	EnPassant
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	switch t {
	case Movement:
		return "MOVEMENT"
	case Capture:
		return "CAPTURE"
	case Castling:
		return "CASTLING"
	case EnPassant:
		return "EN_PASSANT"
	default:
		return "UNKNOWN"
	}
}

// IsIrreversible reports whether a move of this type can never be undone by
// later play. Only plain movement is reversible.
func (t MoveType) IsIrreversible() bool {
	return t != Movement
}

// BoardState is the game-state tag derived for the side to move.
type BoardState int

const (
	Regular BoardState = iota
	Check
	CheckMate
	StaleMate
)

// String returns the string representation of a board state.
func (s BoardState) String() string {
	switch s {
	case Regular:
		return "REGULAR"
	case Check:
		return "CHECK"
	case CheckMate:
		return "CHECK_MATE"
	case StaleMate:
		return "STALE_MATE"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether no further move is possible.
func (s BoardState) IsTerminal() bool {
	return s == CheckMate || s == StaleMate
}
