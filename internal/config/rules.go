package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RulesConfig holds settings for how each game is replayed and judged.
type RulesConfig struct {
	// ReportState evaluates check, checkmate and stalemate after the last move.
	ReportState bool

	// CheckDraws evaluates the threefold, fifty-move and material draw rules.
	CheckDraws bool

	// StopOnError aborts the whole run at the first rejected move instead of
	// reporting the game and moving on.
	StopOnError bool

	// MaxPlies stops replaying a game after this many half-moves (0 = no limit).
	MaxPlies int

	// FindDuplicates marks games whose final position repeats an earlier
	// game. ExactDuplicates also requires the same number of plies.
	FindDuplicates    bool
	ExactDuplicates   bool
	DuplicateCapacity int // stored positions (0 = unlimited)
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		ReportState: true,
		CheckDraws:  true,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.MaxPlies < 0 {
		return fmt.Errorf("ply limit (%d) is negative: %w", r.MaxPlies, errors.ErrInvalidConfig)
	}
	if r.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) is negative: %w", r.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
