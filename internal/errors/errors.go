// Package errors provides sentinel errors and error types for the chess rules
// engine and its batch tool. Structured types keep the square or game context
// of a failure while still allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move request that violates the rules.
	ErrInvalidMove = errors.New("invalid move")

	// ErrKingInCheck indicates a move that would leave the mover's own king attacked.
	ErrKingInCheck = errors.New("king would be in check")

	// ErrInvalidCoordinate indicates a square that cannot be parsed or lies off the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedGame indicates an input line that is not a move list.
	ErrMalformedGame = errors.New("malformed game")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// Rejection reasons reported with ErrInvalidMove.
const (
	ReasonBadStart     = "Incorrect start position."
	ReasonBadFinal     = "Incorrect final position."
	ReasonNoPiece      = "There is no piece at the start position."
	ReasonNotYourPiece = "This is not your piece."
	ReasonOwnPiece     = "You can't capture your own pieces."
	ReasonNoPath       = "You can't move this piece there."
	ReasonExposesKing  = "This move leaves your king in check."
)

// Square is the minimal view of a board coordinate needed to describe a
// move failure. It is satisfied by chess.Coordinate.
type Square interface {
	String() string
}

// MoveError reports a rejected move request. It unwraps to ErrInvalidMove or
// ErrKingInCheck; a king-in-check rejection also matches ErrInvalidMove, so
// one errors.Is check covers every rejection.
type MoveError struct {
	Err    error  // The sentinel kind
	From   Square // Requested origin square
	To     Square // Requested destination square
	Reason string // Human-readable explanation
}

// NewMoveError creates a MoveError of the given kind.
func NewMoveError(kind error, from, to Square, reason string) *MoveError {
	return &MoveError{Err: kind, From: from, To: to, Reason: reason}
}

// Error returns a message naming the squares and the reason.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != nil && e.To != nil {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the sentinel kind.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports ErrKingInCheck failures as invalid moves too.
func (e *MoveError) Is(target error) bool {
	return target == ErrInvalidMove && e.Err == ErrKingInCheck
}

// GameError wraps errors with game context, including game number,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the input
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
