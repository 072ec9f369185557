package workers

import (
	"sync"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
)

// SerialExecutor runs jobs one at a time, in dispatch order, on a single
// goroutine. The backlog is unbounded so Dispatch never blocks.
type SerialExecutor struct {
	logger *logger.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	jobs   []func()
	closed bool
	done   chan struct{}
}

// NewSerialExecutor starts the executor goroutine.
func NewSerialExecutor(log *logger.Logger) *SerialExecutor {
	e := &SerialExecutor{
		logger: log,
		done:   make(chan struct{}),
	}
	e.cond = sync.NewCond(&e.mu)

	go e.loop()
	return e
}

// Dispatch appends job to the backlog.
func (e *SerialExecutor) Dispatch(job func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrExecutorClosed
	}
	e.jobs = append(e.jobs, job)
	e.cond.Signal()
	return nil
}

// Close stops accepting jobs, drains the backlog and waits for the executor
// goroutine to exit. It must not be called from inside a job.
func (e *SerialExecutor) Close() {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		e.cond.Signal()
	}
	e.mu.Unlock()

	<-e.done
}

func (e *SerialExecutor) loop() {
	defer close(e.done)

	for {
		e.mu.Lock()
		for len(e.jobs) == 0 && !e.closed {
			e.cond.Wait()
		}
		if len(e.jobs) == 0 {
			e.mu.Unlock()
			return
		}
		job := e.jobs[0]
		e.jobs[0] = nil
		e.jobs = e.jobs[1:]
		e.mu.Unlock()

		e.run(job)
	}
}

func (e *SerialExecutor) run(job func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Str("func", "SerialExecutor.run").Interface("panic", r).Msg("job panicked")
		}
	}()
	job()
}
