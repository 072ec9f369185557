// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cloud-sync/internal/utils"
)

// Operation is a unit of remote work executed by a [Queue].
//
// An operation settles exactly once, with the error returned by its body, the
// context error if it was cancelled before running, or a recovered panic.
type Operation struct {
	id   string
	name string
	run  func(ctx context.Context) error

	mu       sync.Mutex
	deps     []*Operation
	enqueued bool

	once sync.Once
	done chan struct{}
	err  error
}

// NewOperation returns an operation named name that executes run.
func NewOperation(name string, run func(ctx context.Context) error) *Operation {
	return &Operation{
		id:   utils.NewID(),
		name: name,
		run:  run,
		done: make(chan struct{}),
	}
}

// ID returns the unique, time-ordered operation ID.
func (o *Operation) ID() string { return o.id }

// Name returns the human-readable operation name.
func (o *Operation) Name() string { return o.name }

// AddDependency makes o wait until dep has settled, successfully or not,
// before executing. It must be called before o is added to a queue.
// Dependency cycles are not detected and never settle.
func (o *Operation) AddDependency(dep *Operation) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.enqueued {
		return ErrAlreadyEnqueued
	}
	o.deps = append(o.deps, dep)
	return nil
}

// Done is closed once the operation has settled.
func (o *Operation) Done() <-chan struct{} { return o.done }

// Settled reports whether the operation has settled. Results written by
// the operation body are safe to read once it returns true.
func (o *Operation) Settled() bool {
	select {
	case <-o.done:
		return true
	default:
		return false
	}
}

// Err returns the settlement error. It is nil until Done is closed.
func (o *Operation) Err() error {
	select {
	case <-o.done:
		return o.err
	default:
		return nil
	}
}

// Wait blocks until the operation settles or ctx is done.
func (o *Operation) Wait(ctx context.Context) error {
	select {
	case <-o.done:
		return o.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *Operation) markEnqueued() ([]*Operation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.enqueued {
		return nil, ErrAlreadyEnqueued
	}
	o.enqueued = true
	return append([]*Operation(nil), o.deps...), nil
}

func (o *Operation) execute(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation %s panicked: %v", o.name, r)
		}
	}()
	return o.run(ctx)
}

func (o *Operation) settle(err error) {
	o.once.Do(func() {
		o.err = err
		close(o.done)
	})
}
