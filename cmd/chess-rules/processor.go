// processor.go - Game replay and report output
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Statistics counts report outcomes across all inputs.
type Statistics struct {
	Games      int
	Valid      int
	Invalid    int
	Checkmates int
	Stalemates int
	Draws      int
	Duplicates int
}

// add records the outcome of one game.
func (s *Statistics) add(analysis *processing.GameAnalysis) {
	s.Games++
	if analysis.Valid() {
		s.Valid++
	} else {
		s.Invalid++
	}
	switch analysis.State {
	case chess.CheckMate:
		s.Checkmates++
	case chess.StaleMate:
		s.Stalemates++
	}
	if analysis.Draws.Any() {
		s.Draws++
	}
	if analysis.DuplicateOf > 0 {
		s.Duplicates++
	}
}

// ProcessingContext holds the state shared by every input of one run.
type ProcessingContext struct {
	cfg    *config.Config
	writer output.GameWriter
	stats  Statistics

	// duplicates is nil unless duplicate detection is enabled.
	duplicates *hashing.DuplicateDetector
}

// NewProcessingContext creates a context writing reports to cfg.OutputFile.
func NewProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:    cfg,
		writer: output.NewGameWriter(cfg.OutputFile, cfg),
	}
	if cfg.Rules.FindDuplicates {
		ctx.duplicates = hashing.NewDuplicateDetector(cfg.Rules.ExactDuplicates, cfg.Rules.DuplicateCapacity)
	}
	return ctx
}

// Close flushes any batched reports.
func (ctx *ProcessingContext) Close() error {
	return ctx.writer.Close()
}

// processInput parses every game of one input.
func processInput(r io.Reader, name string, cfg *config.Config) ([]*chess.GameRecord, error) {
	p := parser.NewParser(r, cfg)
	games, err := p.ParseAllGames()
	return games, errors.Wrapf(err, "reading %s", name)
}

// processGames replays and reports games, in parallel when it pays off.
// Reports are always written in input order. The returned error is non-nil
// only when stop-on-error is set and a game was rejected.
func processGames(games []*chess.GameRecord, name string, ctx *ProcessingContext) error {
	numWorkers := ctx.cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	if numWorkers > 1 && len(games) > 2 {
		return processGamesParallel(games, name, ctx)
	}
	return processGamesSequential(games, name, ctx)
}

// processGamesSequential replays games one at a time.
func processGamesSequential(games []*chess.GameRecord, name string, ctx *ProcessingContext) error {
	for i, game := range games {
		result := processGameWorker(worker.WorkItem{Game: game, Index: i}, name, ctx.cfg)
		if err := handleResult(result, ctx); err != nil {
			return err
		}
	}
	return nil
}

// processGamesParallel replays games using a worker pool.
//
// Workers only read shared state. Results are re-sequenced and consumed by
// this goroutine alone, so the writer and statistics need no locking.
func processGamesParallel(games []*chess.GameRecord, name string, ctx *ProcessingContext) error {
	cfg := ctx.cfg

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return processGameWorker(item, name, cfg)
	}

	opts := []worker.PoolOption{worker.WithWorkers(cfg.Workers)}
	if cfg.BufferSize > 0 {
		opts = append(opts, worker.WithBufferSize(cfg.BufferSize))
	}
	pool := worker.NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for i, game := range games {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Game: game, Index: i})
		}
		pool.Close()
	}()

	var firstErr error
	for result := range pool.OrderedResults() {
		if firstErr != nil {
			continue // drain
		}
		if err := handleResult(result, ctx); err != nil {
			firstErr = err
			pool.Stop()
		}
	}
	return firstErr
}

// processGameWorker replays a single game. It is safe to call from several
// goroutines at once.
func processGameWorker(item worker.WorkItem, name string, cfg *config.Config) worker.ProcessResult {
	analysis := processing.AnalyzeGame(item.Game, cfg.Rules)

	var gameErr *errors.GameError
	if stderrors.As(analysis.Err, &gameErr) && gameErr.File == "" {
		gameErr.File = name
	}

	return worker.ProcessResult{
		Game:   item.Game,
		Index:  item.Index,
		Board:  analysis.FinalBoard,
		Report: analysis,
		Error:  analysis.Err,
	}
}

// handleResult writes one report and updates the statistics.
func handleResult(result worker.ProcessResult, ctx *ProcessingContext) error {
	analysis, ok := result.Report.(*processing.GameAnalysis)
	if !ok {
		return fmt.Errorf("game %d: missing analysis", result.Game.Number)
	}

	if ctx.duplicates != nil && analysis.FinalBoard != nil {
		// IDs are run-wide ordinals, 1-based.
		if first, dup := ctx.duplicates.CheckAndAdd(analysis.FinalBoard, ctx.stats.Games+1); dup {
			analysis.DuplicateOf = first
		}
	}
	ctx.stats.add(analysis)
	if err := ctx.writer.WriteGame(result.Game, analysis); err != nil {
		return err
	}

	if result.Error == nil {
		return nil
	}
	if ctx.cfg.Verbosity > 1 {
		fmt.Fprintf(ctx.cfg.LogFile, "%v\n", result.Error)
	}
	if ctx.cfg.Rules.StopOnError {
		return result.Error
	}
	return nil
}
