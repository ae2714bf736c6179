package parser

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Parser parses game-list input into GameRecord structures.
type Parser struct {
	lexer     *Lexer
	gameCount int
	cfg       *config.Config
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
	}
}

// ParseGame parses the next game from the input.
// Blank and comment-only lines are skipped. Returns nil at end of input.
// A malformed token does not fail the call: it is recorded in the game's
// Err field and the rest of the line is discarded.
func (p *Parser) ParseGame() (*chess.GameRecord, error) {
	var game *chess.GameRecord

	for {
		token := p.lexer.NextToken()

		switch token.Type {
		case EOFToken:
			return game, p.lexer.Err()

		case EOLToken:
			if game != nil {
				return game, nil
			}

		case CommentToken:
			if game != nil {
				game.Comment = token.TokenString
			}

		case MoveNumber:
			game = p.startGame(game, token)

		case MoveToken:
			game = p.startGame(game, token)
			if game.Err == nil {
				game.Moves = append(game.Moves, token.Move)
			}

		case ErrorToken:
			game = p.startGame(game, token)
			if game.Err == nil {
				game.Err = &errors.GameError{
					Err:      token.Err,
					GameNum:  game.Number,
					PlyNum:   len(game.Moves) + 1,
					MoveText: token.TokenString,
					Line:     token.Line,
				}
			}
		}
	}
}

// startGame returns game, creating it on the first meaningful token of a line.
func (p *Parser) startGame(game *chess.GameRecord, token *Token) *chess.GameRecord {
	if game != nil {
		return game
	}
	p.gameCount++
	return chess.NewGameRecord(p.gameCount, token.Line)
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*chess.GameRecord, error) {
	games := make([]*chess.GameRecord, 0, 100)

	for {
		game, err := p.ParseGame()
		if game != nil {
			games = append(games, game)
		}
		if err != nil {
			return games, err
		}
		if game == nil {
			break
		}
	}

	return games, nil
}
