package chess

import "unicode"

// Piece is a coloured piece value. The zero value is an empty square.
// Pieces are stored by value in the board grid, so two squares never share one.
type Piece struct {
	Type   PieceType
	Colour Colour
	Moved  bool
}

// NewPiece creates an unmoved piece.
func NewPiece(t PieceType, colour Colour) Piece {
	return Piece{Type: t, Colour: colour}
}

// W creates a white piece.
func W(t PieceType) Piece {
	return NewPiece(t, White)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return NewPiece(t, Black)
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Is reports whether the piece has the given type and colour.
func (p Piece) Is(t PieceType, colour Colour) bool {
	return p.Type == t && p.Colour == colour && t != Empty
}

// Equal compares type and colour only. The Moved flag is ignored, so two
// positions reached by different routes compare equal.
func (p Piece) Equal(o Piece) bool {
	if p.IsEmpty() || o.IsEmpty() {
		return p.IsEmpty() && o.IsEmpty()
	}
	return p.Type == o.Type && p.Colour == o.Colour
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Letter returns the board-diagram letter: uppercase for White, lowercase
// for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l = byte(unicode.ToLower(rune(l)))
	}
	return l
}

// MovePaths returns the patterns the piece may use to reach an empty square.
// The returned slice is shared and must not be modified.
func (p Piece) MovePaths() []Path {
	return p.info().move
}

// CapturePaths returns the patterns the piece may use to take an enemy piece.
// The returned slice is shared and must not be modified.
func (p Piece) CapturePaths() []Path {
	return p.info().capture
}

// DoubleMovePaths returns the pawn's two-square advance. Nil for other pieces.
func (p Piece) DoubleMovePaths() []Path {
	return p.info().double
}

// CastlingPaths returns the king's two-square castling steps. Nil for other pieces.
func (p Piece) CastlingPaths() []Path {
	return p.info().castling
}

// StartingSquares returns every square a piece of this type and colour may
// occupy in the standard initial position (or, for the Dragon, its home square).
func (p Piece) StartingSquares() []Coordinate {
	return p.info().start
}

// IsStartingSquare reports whether c is one of the piece's starting squares.
func (p Piece) IsStartingSquare(c Coordinate) bool {
	for _, s := range p.info().start {
		if s == c {
			return true
		}
	}
	return false
}

func (p Piece) info() *pieceInfo {
	if p.Type <= Empty || p.Type >= numPieceTypes {
		return &catalog[0][Empty]
	}
	return &catalog[p.Colour&1][p.Type]
}

// pieceInfo is one row of the pattern catalog.
type pieceInfo struct {
	move     []Path
	capture  []Path
	double   []Path
	castling []Path
	start    []Coordinate
}

// catalog is indexed by [colour][piece type]. Only White's rows are written
// out; Black's are derived by mirroring ranks.
var catalog [2][numPieceTypes]pieceInfo

var (
	kingSteps = []Path{
		Step(-1, -1), Step(-1, 0), Step(-1, 1), Step(0, -1),
		Step(0, 1), Step(1, -1), Step(1, 0), Step(1, 1),
	}
	knightSteps = []Path{
		Step(-2, -1), Step(-2, 1), Step(-1, -2), Step(-1, 2),
		Step(1, -2), Step(1, 2), Step(2, -1), Step(2, 1),
	}
	diagonalRays = []Path{Ray(-1, -1), Ray(-1, 1), Ray(1, -1), Ray(1, 1)}
	straightRays = []Path{Ray(-1, 0), Ray(1, 0), Ray(0, -1), Ray(0, 1)}
)

func whiteCatalog() [numPieceTypes]pieceInfo {
	var s [numPieceTypes]pieceInfo

	pawns := make([]Coordinate, 0, BoardSize)
	for x := 0; x < BoardSize; x++ {
		pawns = append(pawns, Sq(x, 1))
	}
	s[Pawn] = pieceInfo{
		move:    []Path{Step(0, 1)},
		capture: []Path{Step(-1, 1), Step(1, 1)},
		double:  []Path{Step(0, 2)},
		start:   pawns,
	}
	s[Knight] = pieceInfo{move: knightSteps, capture: knightSteps, start: []Coordinate{Sq(1, 0), Sq(6, 0)}}
	s[Bishop] = pieceInfo{move: diagonalRays, capture: diagonalRays, start: []Coordinate{Sq(2, 0), Sq(5, 0)}}
	s[Rook] = pieceInfo{move: straightRays, capture: straightRays, start: []Coordinate{Sq(0, 0), Sq(7, 0)}}

	queen := append(append([]Path{}, diagonalRays...), straightRays...)
	s[Queen] = pieceInfo{move: queen, capture: queen, start: []Coordinate{Sq(3, 0)}}
	s[King] = pieceInfo{
		move:     kingSteps,
		capture:  kingSteps,
		castling: []Path{Step(-2, 0), Step(2, 0)},
		start:    []Coordinate{Sq(4, 0)},
	}

	// The Dragon leaps anywhere within three squares but only takes adjacent pieces.
	var leaps []Path
	for dx := -3; dx <= 3; dx++ {
		for dy := -3; dy <= 3; dy++ {
			if dx != 0 || dy != 0 {
				leaps = append(leaps, Step(dx, dy))
			}
		}
	}
	s[Dragon] = pieceInfo{move: leaps, capture: kingSteps, start: []Coordinate{Sq(4, 2)}}

	return s
}

func init() {
	white := whiteCatalog()
	for t := Pawn; t < numPieceTypes; t++ {
		w := white[t]
		catalog[White][t] = w

		b := pieceInfo{
			move:     w.move,
			capture:  w.capture,
			double:   w.double,
			castling: w.castling,
			start:    mirrorSquares(w.start),
		}
		if t == Pawn {
			b.move = mirrorPaths(w.move)
			b.capture = mirrorPaths(w.capture)
			b.double = mirrorPaths(w.double)
		}
		catalog[Black][t] = b
	}
}

func mirrorPaths(paths []Path) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = p.mirror()
	}
	return out
}

func mirrorSquares(squares []Coordinate) []Coordinate {
	out := make([]Coordinate, len(squares))
	for i, c := range squares {
		out[i] = Sq(c.X, BoardSize-1-c.Y)
	}
	return out
}
