package workers

import (
	"context"
	"errors"
	"sync"
)

// Workers runs a fixed set of [Worker]s side by side.
type Workers struct {
	workers []Worker
}

// New groups workers for a single [Workers.Run] call.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. A failing worker does not stop the others. Errors other than
// context cancellation are joined into the result.
func (w *Workers) Run(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			err := worker.Run(ctx)
			if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}(worker)
	}

	wg.Wait()
	return errors.Join(errs...)
}
