package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceLetters maps FEN letters to piece types. 'D' is the Dragon, which
// only this package understands.
var pieceLetters = map[rune]chess.PieceType{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
	'd': chess.Dragon,
}

// ParseFEN builds a board snapshot from a FEN string.
//
// The board model has no side-to-move, castling or en passant fields, so
// those are expressed the way the engine derives them: dummy moves fix the
// turn parity, a missing castling right marks that rook as moved,
// and an en passant square becomes a double pawn step as the last move.
// Clocks are ignored.
func ParseFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	b := chess.NewBoard()
	if err := parsePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			toMove = chess.Black
		default:
			return nil, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	castling := "-"
	if len(parts) >= 3 {
		castling = parts[2]
	}
	applyCastlingRights(b, castling)

	epMove, hasEP, err := parseEnPassant(parts, toMove)
	if err != nil {
		return nil, err
	}

	// History parity: even means White to move.
	dummies := 0
	if toMove == chess.Black {
		dummies = 1
	}
	if hasEP {
		dummies = 1 - dummies
	}
	AddDummyMoves(b, dummies)
	if hasEP {
		b.AppendMove(epMove)
	}

	return b, nil
}

// MustParseFEN parses a FEN string and calls t.Fatal on failure.
func MustParseFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return b
}

// parsePlacement parses the piece placement field of a FEN string.
func parsePlacement(b *chess.Board, placement string) error {
	x, y := 0, chess.BoardSize-1

	for _, c := range placement {
		switch {
		case c == '/':
			y--
			x = 0
		case c >= '1' && c <= '8':
			x += int(c - '0')
		default:
			pt, ok := pieceLetters[unicode.ToLower(c)]
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if x >= chess.BoardSize || y < 0 {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			b.SetPieceAt(chess.NewPiece(pt, colour), chess.Sq(x, y))
			x++
		}
	}
	if y != 0 {
		return fmt.Errorf("expected 8 ranks: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// applyCastlingRights marks rooks as moved for every right the field lacks.
func applyCastlingRights(b *chess.Board, field string) {
	rights := []struct {
		letter byte
		colour chess.Colour
		rookX  int
	}{
		{'K', chess.White, chess.BoardSize - 1},
		{'Q', chess.White, 0},
		{'k', chess.Black, chess.BoardSize - 1},
		{'q', chess.Black, 0},
	}

	for _, r := range rights {
		if strings.IndexByte(field, r.letter) >= 0 {
			continue
		}
		y := 0
		if r.colour == chess.Black {
			y = chess.BoardSize - 1
		}
		rook := b.PieceAt(chess.Sq(r.rookX, y))
		if rook.Is(chess.Rook, r.colour) {
			rook.Moved = true
			b.Squares[r.rookX][y] = rook
		}
	}
}

// parseEnPassant turns the en passant field into the double step that
// created it.
func parseEnPassant(parts []string, toMove chess.Colour) (chess.Move, bool, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.Move{}, false, nil
	}

	sq := parts[3]
	if len(sq) != 2 || sq[0] < 'a' || sq[0] > 'h' || (sq[1] != '3' && sq[1] != '6') {
		return chess.Move{}, false, fmt.Errorf("invalid en passant square: %s: %w", sq, errors.ErrInvalidFEN)
	}

	mover := toMove.Opposite()
	passed := chess.Sq(int(sq[0]-'a'), int(sq[1]-'1'))
	dir := chess.ColourOffset(mover)
	from := passed.Add(0, -dir)
	to := passed.Add(0, dir)

	pawn := chess.NewPiece(chess.Pawn, mover)
	return chess.NewMove(from, to, chess.Movement, pawn), true, nil
}

// FEN converts a board to a FEN string. Castling rights are read from the
// moved flags of kings and rooks; the en passant square from the last move.
func FEN(b *chess.Board) string {
	var sb strings.Builder

	writePlacement(&sb, b)
	sb.WriteByte(' ')
	if b.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, b)
	sb.WriteByte(' ')
	writeEnPassant(&sb, b)
	fmt.Fprintf(&sb, " %d %d", halfmoveClock(b), len(b.History)/2+1)

	return sb.String()
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, b *chess.Board) {
	for y := chess.BoardSize - 1; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece := b.PieceAt(chess.Sq(x, y))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, b *chess.Board) {
	n := sb.Len()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		y := 0
		if colour == chess.Black {
			y = chess.BoardSize - 1
		}
		king := b.PieceAt(chess.Sq(4, y))
		if !king.Is(chess.King, colour) || king.Moved {
			continue
		}

		sides := []struct {
			rookX  int
			letter byte
		}{{chess.BoardSize - 1, 'K'}, {0, 'Q'}}
		for _, s := range sides {
			rook := b.PieceAt(chess.Sq(s.rookX, y))
			if rook.Is(chess.Rook, colour) && !rook.Moved {
				letter := s.letter
				if colour == chess.Black {
					letter = byte(unicode.ToLower(rune(letter)))
				}
				sb.WriteByte(letter)
			}
		}
	}
	if sb.Len() == n {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, b *chess.Board) {
	last, ok := b.LastMove()
	if !ok || !last.IsDoublePawnStep() {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(chess.Sq(last.To.X, (last.From.Y+last.To.Y)/2).String())
}

// halfmoveClock counts half-moves since the last pawn move or irreversible move.
func halfmoveClock(b *chess.Board) int {
	n := 0
	for i := len(b.History) - 1; i >= 0; i-- {
		m := b.History[i]
		if m.IsPawnMove() || m.Type.IsIrreversible() {
			break
		}
		n++
	}
	return n
}
