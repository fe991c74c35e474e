package hasher

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

// DefaultBufferSize is the capacity of the task and result channels
const DefaultBufferSize = 256

// Result carries one file's digest out of the pool. Err is set when the
// file became unreadable during hashing; the entry is then excluded from
// content grouping by the caller.
type Result struct {
	Entry  *models.FileEntry
	Digest string
	Err    error
}

// Pool hashes files on a bounded set of workers. Each worker owns one
// file's read handle at a time; results are drained by a single consumer.
type Pool struct {
	workers int
	algo    Algorithm
	logger  *zap.Logger

	tasks   chan *models.FileEntry
	results chan Result
	wg      sync.WaitGroup
	pool    *ants.Pool
}

// NewPool creates a hash pool with the given number of workers
func NewPool(workers int, algo Algorithm, logger *zap.Logger) *Pool {
	return &Pool{
		workers: workers,
		algo:    algo,
		logger:  logger,
		tasks:   make(chan *models.FileEntry, DefaultBufferSize),
		results: make(chan Result, DefaultBufferSize),
	}
}

// Start launches the workers. The results channel is closed once every
// worker has drained the task channel and exited.
func (p *Pool) Start(ctx context.Context) error {
	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	p.pool = pool

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(func() { p.worker(ctx) }); err != nil {
			p.wg.Done()
			return fmt.Errorf("submit hash worker: %w", err)
		}
	}

	go func() {
		p.wg.Wait()
		p.pool.Release()
		close(p.results)
	}()

	return nil
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for entry := range p.tasks {
		select {
		case <-ctx.Done():
			// Abandon remaining work, keep draining so Submit never blocks
			continue
		default:
		}

		digest, err := HashFile(ctx, entry.Path, p.algo)
		if err != nil {
			p.logger.Warn("Failed to hash file",
				zap.String("path", entry.Path),
				zap.Error(err))
		}
		p.results <- Result{Entry: entry, Digest: digest, Err: err}
	}
}

// Submit queues one file for hashing
func (p *Pool) Submit(entry *models.FileEntry) {
	p.tasks <- entry
}

// CloseSubmit signals that no further tasks will be submitted
func (p *Pool) CloseSubmit() {
	close(p.tasks)
}

// Results returns the channel hash results are delivered on
func (p *Pool) Results() <-chan Result {
	return p.results
}
