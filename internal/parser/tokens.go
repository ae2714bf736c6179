// Package parser reads game lists: one game per line, each a sequence of
// move requests in coordinate form ("4,1-4,3") or long algebraic form
// ("e2-e4", "e2e4"). Move numbers ("1.") are skipped and '#' starts a comment
// that runs to the end of the line.
package parser

import "github.com/lgbarn/chess-rules-go/internal/chess"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	EOLToken
	MoveToken
	MoveNumber
	CommentToken

	// Internal tokens used for identification
	Whitespace
	CommentStart
	Dot
	Alpha
	Digit
	NoToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:     "EOF",
	EOLToken:     "EOL",
	MoveToken:    "MOVE",
	MoveNumber:   "MOVE_NUMBER",
	CommentToken: "COMMENT",
	Whitespace:   "WHITESPACE",
	CommentStart: "COMMENT_START",
	Dot:          "DOT",
	Alpha:        "ALPHA",
	Digit:        "DIGIT",
	NoToken:      "NO_TOKEN",
	ErrorToken:   "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// TokenString is the source text of the token
	TokenString string

	// Move holds the decoded request for MoveToken
	Move chess.MoveRequest

	// Err explains an ErrorToken
	Err error

	// Line and column for error reporting
	Line   int
	Column int
}
