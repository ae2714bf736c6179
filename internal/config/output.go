package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MinLineLength is the narrowest wrap width the text writer accepts.
const MinLineLength = 20

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format selects text or JSON reports
	Format OutputFormat

	// MaxLineLength wraps the move list in text reports (0 = no wrapping)
	MaxLineLength uint

	// ShowMoves includes the replayed move list in each report
	ShowMoves bool

	// ShowBoard includes a diagram of the final position in text reports
	// and its FEN in JSON reports
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        TextFormat,
		MaxLineLength: 80,
		ShowMoves:     true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength != 0 && o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d is below %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
