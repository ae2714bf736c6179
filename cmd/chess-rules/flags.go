// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length (0 = no wrapping)")
	outputFormat = flag.String("format", "", "Output format: text or json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noMoves      = flag.Bool("nomoves", false, "Don't list the replayed moves")
	showBoard    = flag.Bool("board", false, "Show the final position of each game")

	// Rules
	noState     = flag.Bool("nostate", false, "Don't report check, checkmate or stalemate")
	noDraws     = flag.Bool("nodraws", false, "Don't evaluate the draw rules")
	stopOnError = flag.Bool("stoponerror", false, "Stop at the first game with an illegal move")
	plyLimit    = flag.Int("plylimit", 0, "Replay at most N plies of each game (0 = no limit)")

	// Duplicates
	findDuplicates  = flag.Bool("D", false, "Mark games ending in the same position as an earlier game")
	exactDuplicates = flag.Bool("exactdupes", false, "With -D, also require the same number of plies")
	duplicateCap    = flag.Int("dupcap", 0, "Maximum number of final positions remembered by -D (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no summary)")
	verbose   = flag.Bool("verbose", false, "Log every rejected game as it is found")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 0, "Work queue length (0 = four per worker)")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of game files to process (one per line)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyRulesFlags(cfg)

	cfg.Workers = *workers
	cfg.BufferSize = *bufferSize

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	return cfg.Validate()
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	if *jsonOutput {
		format = config.JSONFormat
	}

	cfg.Output.Format = format
	cfg.Output.MaxLineLength = uint(max(*lineLength, 0))
	cfg.Output.ShowMoves = !*noMoves
	cfg.Output.ShowBoard = *showBoard
	return nil
}

// applyRulesFlags configures how games are judged.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.ReportState = !*noState
	cfg.Rules.CheckDraws = !*noDraws
	cfg.Rules.StopOnError = *stopOnError
	cfg.Rules.MaxPlies = *plyLimit
	cfg.Rules.FindDuplicates = *findDuplicates || *exactDuplicates
	cfg.Rules.ExactDuplicates = *exactDuplicates
	cfg.Rules.DuplicateCapacity = *duplicateCap
}
