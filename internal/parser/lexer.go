package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Lexer tokenizes game-list input one line at a time.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	inLine  bool
	err     error
	cfg     *config.Config
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}
	chTab['#'] = CommentStart
	chTab['.'] = Dot

	for c := '0'; c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := 'a'; c <= 'z'; c++ {
		chTab[c] = Alpha
	}
	for c := 'A'; c <= 'Z'; c++ {
		chTab[c] = Alpha
	}
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			l.err = err
			return false
		}
		if len(line) == 0 {
			return false
		}
	}
	l.line = strings.TrimRight(line, "\r\n")
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input. Every line, including
// the last, is terminated by an EOLToken before EOFToken is returned.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if !l.inLine {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		l.inLine = true
	}
	if l.pos >= len(l.line) {
		l.inLine = false
		return &Token{Type: EOLToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos

	switch chTab[ch] {
	case Whitespace:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return &Token{Type: NoToken}

	case CommentStart:
		text := strings.TrimSpace(l.line[l.pos+1:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, TokenString: text, Column: symbolStart + 1}

	case Digit, Alpha:
		return l.gatherWord(symbolStart)

	default:
		for l.pos < len(l.line) && !l.endsWord(l.currentChar()) {
			l.advance()
		}
		text := l.line[symbolStart:l.pos]
		if l.cfg.Verbosity > 1 && l.cfg.LogFile != nil {
			fmt.Fprintf(l.cfg.LogFile, "Unknown character %c (0x%x) on line %d.\n", ch, ch, l.lineNum)
		}
		return &Token{
			Type:        ErrorToken,
			TokenString: text,
			Err:         fmt.Errorf("unexpected %q: %w", text, errors.ErrMalformedGame),
			Column:      symbolStart + 1,
		}
	}
}

// endsWord reports whether c terminates a word.
func (l *Lexer) endsWord(c byte) bool {
	return chTab[c] == Whitespace || chTab[c] == CommentStart
}

// gatherWord reads a whitespace-delimited word and classifies it as a move
// number, a move, or an error.
func (l *Lexer) gatherWord(start int) *Token {
	for l.pos < len(l.line) && !l.endsWord(l.currentChar()) {
		l.advance()
	}
	text := l.line[start:l.pos]

	if isMoveNumber(text) {
		return &Token{Type: MoveNumber, TokenString: text, Column: start + 1}
	}

	move, err := DecodeMove(text)
	if err != nil {
		return &Token{Type: ErrorToken, TokenString: text, Err: err, Column: start + 1}
	}
	return &Token{Type: MoveToken, TokenString: text, Move: move, Column: start + 1}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}
