package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
)

// Queue executes [Operation]s concurrently, honouring their dependencies.
// Operations submitted together in one Add call may depend on each other.
type Queue struct {
	sem    chan struct{}
	logger *logger.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewQueue returns a queue running at most maxConcurrent operation bodies at
// once. Values below 1 are treated as 1.
func NewQueue(maxConcurrent int, log *logger.Logger) *Queue {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Queue{
		sem:    make(chan struct{}, maxConcurrent),
		logger: log,
	}
}

// Add schedules ops. Each operation waits for its dependencies, then for a
// free slot, then runs with ctx. Cancelling ctx settles operations that have
// not started yet with ctx.Err().
//
// Add never blocks on execution; use [Operation.Wait] to collect results.
func (q *Queue) Add(ctx context.Context, ops ...*Operation) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, op := range ops {
		deps, err := op.markEnqueued()
		if err != nil {
			q.logger.Warn().Str("func", "Queue.Add").Str("operation", op.Name()).Msg("operation added twice, ignoring")
			continue
		}
		if q.closed {
			op.settle(ErrQueueClosed)
			continue
		}

		q.wg.Add(1)
		go q.process(ctx, op, deps)
	}
}

func (q *Queue) process(ctx context.Context, op *Operation, deps []*Operation) {
	defer q.wg.Done()

	for _, dep := range deps {
		select {
		case <-dep.Done():
		case <-ctx.Done():
			op.settle(ctx.Err())
			return
		}
	}

	select {
	case q.sem <- struct{}{}:
	case <-ctx.Done():
		op.settle(ctx.Err())
		return
	}
	defer func() { <-q.sem }()

	if err := ctx.Err(); err != nil {
		op.settle(err)
		return
	}

	start := time.Now()
	err := op.execute(ctx)
	op.settle(err)

	event := q.logger.Debug()
	if err != nil {
		event = q.logger.Warn().Err(err)
	}
	event.
		Str("operation", op.Name()).
		Str("operation_id", op.ID()).
		Dur("duration", time.Since(start)).
		Msg("operation settled")
}

// Close rejects further operations and waits for the scheduled ones to
// settle.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.wg.Wait()
}
