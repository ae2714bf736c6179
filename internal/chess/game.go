package chess

import "strings"

// MoveRequest is a move as read from input, before validation.
type MoveRequest struct {
	From Coordinate
	To   Coordinate

	// Text is the source form of the request, kept for diagnostics.
	Text string
}

// String returns the source text, or the coordinates when there is none.
func (r MoveRequest) String() string {
	if r.Text != "" {
		return r.Text
	}
	return r.From.String() + "-" + r.To.String()
}

// GameRecord is one game read from input: the requested moves in order.
type GameRecord struct {
	// Number is the 1-based position of the game in its input.
	Number int

	// Line is the input line the game was read from.
	Line int

	Moves []MoveRequest

	// Comment holds any trailing comment text on the game's line.
	Comment string

	// Err is set when the line could not be read completely. Moves before
	// the offending token are kept.
	Err error
}

// NewGameRecord creates an empty game record.
func NewGameRecord(number, line int) *GameRecord {
	return &GameRecord{Number: number, Line: line}
}

// PlyCount returns the number of requested half-moves.
func (g *GameRecord) PlyCount() int {
	return len(g.Moves)
}

// MoveText returns the requests joined by spaces.
func (g *GameRecord) MoveText() string {
	parts := make([]string, len(g.Moves))
	for i, m := range g.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
