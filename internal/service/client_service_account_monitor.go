package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/workers"
	"github.com/MKhiriev/go-cloud-sync/models"
)

// AccountStatusMonitor tracks the availability of the remote account.
//
// Observers run on a single serial executor, in the order the status changed,
// and only when the status actually changes.
type AccountStatusMonitor struct {
	account  adapter.AccountService
	executor *workers.SerialExecutor
	logger   *logger.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	unobserve func()

	mu        sync.Mutex
	status    models.AccountAvailability
	observers map[uint64]func(*AccountStatusMonitor)
	nextID    uint64
	closed    bool
}

// NewAccountStatusMonitor registers for account-changed signals from
// notifier and starts the first refresh. Close must be called to unregister.
func NewAccountStatusMonitor(account adapter.AccountService, notifier AccountChangeNotifier, log *logger.Logger) *AccountStatusMonitor {
	ctx, cancel := context.WithCancel(context.Background())
	m := &AccountStatusMonitor{
		account:   account,
		executor:  workers.NewSerialExecutor(log),
		logger:    log,
		ctx:       ctx,
		cancel:    cancel,
		observers: make(map[uint64]func(*AccountStatusMonitor)),
	}

	m.unobserve = notifier.ObserveAccountChanges(func() { m.refresh(nil) })
	m.refresh(nil)

	return m
}

// Status returns the current availability.
func (m *AccountStatusMonitor) Status() models.AccountAvailability {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Subscribe registers fn to be called after every status transition.
func (m *AccountStatusMonitor) Subscribe(fn func(*AccountStatusMonitor)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.observers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.observers, id)
	}
}

// ForceRefresh resets the status to unknown before returning, then queries
// the account in the background. completion, if non-nil, receives the
// resolved availability on the serial executor just before it is assigned.
// After Close it does nothing.
func (m *AccountStatusMonitor) ForceRefresh(completion func(models.AccountAvailability)) {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return
	}

	m.setStatus(models.AccountUnknown)
	m.refresh(completion)
}

// Close unregisters from account-changed signals, waits for in-flight
// queries and drains pending notifications.
func (m *AccountStatusMonitor) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	m.unobserve()
	m.cancel()
	m.wg.Wait()
	m.executor.Close()
}

func (m *AccountStatusMonitor) refresh(completion func(models.AccountAvailability)) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()

		status, err := m.account.AccountStatus(m.ctx)
		if m.ctx.Err() != nil {
			// closing; the query was cut short and says nothing about the account
			return
		}
		availability := availabilityFromStatus(status, err)
		if err != nil {
			m.logger.Warn().Err(err).
				Str("func", "AccountStatusMonitor.refresh").
				Msg("could not determine account status")
		}

		dispatchErr := m.executor.Dispatch(func() {
			if completion != nil {
				completion(availability)
			}
			m.setStatus(availability)
		})
		if dispatchErr != nil {
			m.logger.Debug().Err(dispatchErr).
				Str("func", "AccountStatusMonitor.refresh").
				Msg("dropping refresh result")
		}
	}()
}

// setStatus assigns status and queues observer calls if it changed. The
// status is frozen once the monitor is closed.
func (m *AccountStatusMonitor) setStatus(status models.AccountAvailability) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || m.status == status {
		return
	}
	previous := m.status
	m.status = status

	m.logger.Info().
		Str("func", "AccountStatusMonitor.setStatus").
		Stringer("from", previous).
		Stringer("to", status).
		Msg("account availability changed")

	observers := make([]func(*AccountStatusMonitor), 0, len(m.observers))
	for _, fn := range m.observers {
		observers = append(observers, fn)
	}
	// dispatched under mu so notifications keep mutation order
	err := m.executor.Dispatch(func() {
		for _, fn := range observers {
			fn(m)
		}
	})
	if err != nil {
		m.logger.Warn().Err(err).
			Str("func", "AccountStatusMonitor.setStatus").
			Msg("observers not notified")
	}
}

func availabilityFromStatus(status models.AccountStatus, err error) models.AccountAvailability {
	if err != nil {
		return models.AccountUnknown
	}
	switch status {
	case models.AccountStatusAvailable:
		return models.AccountAvailable
	case models.AccountStatusNoAccount, models.AccountStatusRestricted:
		return models.AccountUnavailable
	default:
		return models.AccountUnknown
	}
}
