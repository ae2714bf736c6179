package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// coordinateMove matches "fx,fy-tx,ty". Coordinates are not range
	// checked here; the engine rejects off-board squares itself.
	coordinateMove = regexp.MustCompile(`^(\d+),(\d+)[-x:](\d+),(\d+)$`)

	// algebraicMove matches "e2-e4", "e2xd3" and "e2e4".
	algebraicMove = regexp.MustCompile(`^([a-h][1-8])[-x:]?([a-h][1-8])$`)
)

// DecodeMove converts the text of a single move into a request.
func DecodeMove(text string) (chess.MoveRequest, error) {
	if m := coordinateMove.FindStringSubmatch(text); m != nil {
		var n [4]int
		for i := range n {
			v, err := strconv.Atoi(m[i+1])
			if err != nil {
				return chess.MoveRequest{}, fmt.Errorf("coordinate %q in %q: %w", m[i+1], text, errors.ErrInvalidCoordinate)
			}
			n[i] = v
		}
		return chess.MoveRequest{
			From: chess.Sq(n[0], n[1]),
			To:   chess.Sq(n[2], n[3]),
			Text: text,
		}, nil
	}

	if m := algebraicMove.FindStringSubmatch(text); m != nil {
		return chess.MoveRequest{
			From: decodeSquare(m[1]),
			To:   decodeSquare(m[2]),
			Text: text,
		}, nil
	}

	return chess.MoveRequest{}, fmt.Errorf("unrecognised move %q: %w", text, errors.ErrMalformedGame)
}

// decodeSquare converts an already matched square name such as "e4".
func decodeSquare(s string) chess.Coordinate {
	return chess.Sq(int(s[0]-'a'), int(s[1]-'1'))
}

// isMoveNumber reports whether text is a move number such as "12." or "3...".
func isMoveNumber(text string) bool {
	digits := 0
	for digits < len(text) && text[digits] >= '0' && text[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits == len(text) {
		return false
	}
	for _, c := range text[digits:] {
		if c != '.' {
			return false
		}
	}
	return true
}
