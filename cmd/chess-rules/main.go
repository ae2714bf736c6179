// chess-rules replays chess games from game-list files and reports whether
// every move is legal, how each game stands after its last move and which
// draw rules can be claimed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

// Exit statuses
const (
	exitOK      = 0
	exitInvalid = 1 // at least one game had a rejected move
	exitUsage   = 2
	exitIO      = 3
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	inputs, err := collectInputs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	ctx := NewProcessingContext(cfg)
	status := processAllInputs(ctx, inputs)
	if err := ctx.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		status = exitIO
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, ctx.stats)
	}
	os.Exit(status)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(exitIO)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(exitIO)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitIO)
	}
	cfg.SetOutput(file)
}

// collectInputs returns the files named on the command line followed by
// those listed in the -f file. An empty result means standard input.
func collectInputs(args []string) ([]string, error) {
	inputs := append([]string(nil), args...)
	if *fileListFile != "" {
		listed, err := loadFileList(*fileListFile)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, listed...)
	}
	return inputs, nil
}

// loadFileList reads one file name per line, skipping blank lines and
// # comments.
func loadFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("opening file list: %w", err)
	}
	defer file.Close()

	var files []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file list %s: %w", path, err)
	}
	return files, nil
}

// processAllInputs processes all input files or stdin and returns the exit
// status.
func processAllInputs(ctx *ProcessingContext, inputs []string) int {
	if len(inputs) == 0 {
		return processReader(ctx, os.Stdin, "stdin")
	}

	status := exitOK
	for _, filename := range inputs {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			status = exitIO
			continue
		}

		fileStatus := processReader(ctx, file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file

		if fileStatus > status {
			status = fileStatus
		}
		if fileStatus == exitInvalid && ctx.cfg.Rules.StopOnError {
			break
		}
	}
	return status
}

// processReader parses and replays one input.
func processReader(ctx *ProcessingContext, r io.Reader, name string) int {
	status := exitOK

	games, err := processInput(r, name, ctx.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", name, err)
		status = exitIO
	}

	invalidBefore := ctx.stats.Invalid
	if err := processGames(games, name, ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Stopped: %v\n", err)
	}
	if ctx.stats.Invalid > invalidBefore && status == exitOK {
		status = exitInvalid
	}
	return status
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, stats Statistics) {
	fmt.Fprintf(w, "%d game(s) replayed: %d legal, %d with errors.\n", stats.Games, stats.Valid, stats.Invalid)
	if stats.Checkmates+stats.Stalemates+stats.Draws > 0 {
		fmt.Fprintf(w, "%d checkmate(s), %d stalemate(s), %d claimable draw(s).\n",
			stats.Checkmates, stats.Stalemates, stats.Draws)
	}
	if stats.Duplicates > 0 {
		fmt.Fprintf(w, "%d duplicate game(s).\n", stats.Duplicates)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games and checks every move against the rules.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput format: one game per line, moves separated by spaces.\n")
	fmt.Fprintf(os.Stderr, "  4,1-4,3   file,rank pairs counted from 0 (a1 = 0,0)\n")
	fmt.Fprintf(os.Stderr, "  e2-e4     square names, also e2e4 and e4xd5\n")
	fmt.Fprintf(os.Stderr, "  1.        move numbers are ignored\n")
	fmt.Fprintf(os.Stderr, "  # text    comment to end of line\n")
}
