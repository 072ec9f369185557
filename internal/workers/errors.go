package workers

import "errors"

var (
	// ErrQueueClosed settles operations added after [Queue.Close].
	ErrQueueClosed = errors.New("operation queue is closed")
	// ErrExecutorClosed is returned by [SerialExecutor.Dispatch] after Close.
	ErrExecutorClosed = errors.New("serial executor is closed")
	// ErrAlreadyEnqueued is returned when an operation is modified or added
	// to a queue a second time.
	ErrAlreadyEnqueued = errors.New("operation already enqueued")
)
