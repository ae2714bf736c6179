// Package worker provides a worker pool that replays games in parallel.
package worker

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is a parsed game waiting to be replayed.
type WorkItem struct {
	Game  *chess.GameRecord
	Index int // Position in the input, starting at 0
}

// ProcessResult is the outcome of replaying one game.
type ProcessResult struct {
	Game   *chess.GameRecord
	Index  int
	Board  *chess.Board // Final position (nil if the game never started)
	Report interface{}  // Analysis payload; typed by consumer
	Error  error        // First rejected move, if any
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 keep the
// default of one worker per CPU.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; by default there
// is one worker per CPU and the buffer holds four items per worker.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  runtime.NumCPU(),
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize == 0 {
		p.bufferSize = 4 * p.numWorkers
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without replaying
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full and silently
// drops the item once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) {
	if p.IsStopped() {
		return
	}
	p.workChan <- item
}

// Stop signals workers to skip any item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// OrderedResults returns the results in input order. Results that arrive
// early are held back until every lower index has been delivered. Indexes
// that never arrive, because the pool was stopped, are skipped once the
// result channel closes.
func (p *Pool) OrderedResults() <-chan ProcessResult {
	return InOrder(p.resultChan)
}

// InOrder re-sequences results by Index, starting at 0.
func InOrder(results <-chan ProcessResult) <-chan ProcessResult {
	out := make(chan ProcessResult)
	go func() {
		defer close(out)
		pending := make(map[int]ProcessResult)
		next := 0
		for r := range results {
			pending[r.Index] = r
			for {
				ready, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				out <- ready
				next++
			}
		}
		flushPending(pending, out)
	}()
	return out
}

// flushPending sends whatever is left, lowest index first.
func flushPending(pending map[int]ProcessResult, out chan<- ProcessResult) {
	for len(pending) > 0 {
		lowest := -1
		for idx := range pending {
			if lowest < 0 || idx < lowest {
				lowest = idx
			}
		}
		out <- pending[lowest]
		delete(pending, lowest)
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
