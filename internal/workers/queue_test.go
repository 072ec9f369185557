package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_RunsOperation(t *testing.T) {
	q := NewQueue(2, logger.Nop())
	defer q.Close()

	op := NewOperation("fetch", func(context.Context) error { return nil })
	assert.False(t, op.Settled())
	q.Add(context.Background(), op)

	require.NoError(t, op.Wait(context.Background()))
	assert.True(t, op.Settled())
	assert.NotEmpty(t, op.ID())
	assert.Equal(t, "fetch", op.Name())
}

func TestQueue_PropagatesError(t *testing.T) {
	q := NewQueue(1, logger.Nop())
	defer q.Close()

	boom := errors.New("boom")
	op := NewOperation("modify", func(context.Context) error { return boom })
	q.Add(context.Background(), op)

	assert.ErrorIs(t, op.Wait(context.Background()), boom)
	assert.ErrorIs(t, op.Err(), boom)
}

func TestQueue_DependencyGatesExecutionNotSuccess(t *testing.T) {
	q := NewQueue(4, logger.Nop())
	defer q.Close()

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, name)
	}

	release := make(chan struct{})
	first := NewOperation("zone", func(context.Context) error {
		<-release
		record("zone")
		return errors.New("zone failed")
	})
	second := NewOperation("subscription", func(context.Context) error {
		record("subscription")
		return nil
	})
	require.NoError(t, second.AddDependency(first))

	q.Add(context.Background(), first, second)

	select {
	case <-second.Done():
		t.Fatal("dependent operation ran before its dependency settled")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)

	require.NoError(t, second.Wait(context.Background()))
	assert.Error(t, first.Err())
	assert.Equal(t, []string{"zone", "subscription"}, order)
}

func TestQueue_BoundsConcurrency(t *testing.T) {
	q := NewQueue(2, logger.Nop())
	defer q.Close()

	var running, peak atomic.Int32
	ops := make([]*Operation, 6)
	for i := range ops {
		ops[i] = NewOperation("op", func(context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return nil
		})
	}
	q.Add(context.Background(), ops...)

	for _, op := range ops {
		require.NoError(t, op.Wait(context.Background()))
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestQueue_CancelledContextSettlesPendingOperations(t *testing.T) {
	q := NewQueue(1, logger.Nop())
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	block := make(chan struct{})
	first := NewOperation("blocking", func(context.Context) error {
		<-block
		return nil
	})
	var ran atomic.Bool
	second := NewOperation("dependent", func(context.Context) error {
		ran.Store(true)
		return nil
	})
	require.NoError(t, second.AddDependency(first))

	q.Add(ctx, first, second)
	cancel()

	assert.ErrorIs(t, second.Wait(context.Background()), context.Canceled)
	assert.False(t, ran.Load())
	close(block)
}

func TestQueue_RecoversPanic(t *testing.T) {
	q := NewQueue(1, logger.Nop())
	defer q.Close()

	op := NewOperation("panicky", func(context.Context) error { panic("bad") })
	q.Add(context.Background(), op)

	err := op.Wait(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicky")
}

func TestQueue_AddAfterClose(t *testing.T) {
	q := NewQueue(1, logger.Nop())
	q.Close()

	op := NewOperation("late", func(context.Context) error { return nil })
	q.Add(context.Background(), op)

	assert.ErrorIs(t, op.Wait(context.Background()), ErrQueueClosed)
}

func TestOperation_AddDependencyAfterEnqueue(t *testing.T) {
	q := NewQueue(1, logger.Nop())
	defer q.Close()

	op := NewOperation("op", func(context.Context) error { return nil })
	q.Add(context.Background(), op)

	err := op.AddDependency(NewOperation("dep", func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrAlreadyEnqueued)
}

func TestOperation_WaitHonoursContext(t *testing.T) {
	op := NewOperation("never-enqueued", func(context.Context) error { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, op.Wait(ctx), context.DeadlineExceeded)
	assert.NoError(t, op.Err())
}
