package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/models"
)

// DefaultSyncInterval is used when Start gets a non-positive interval.
const DefaultSyncInterval = 5 * time.Minute

// AccountTransitionSource lets the job react to the account becoming
// available.
type AccountTransitionSource interface {
	AccountAvailabilityProvider
	Subscribe(fn func(*AccountStatusMonitor)) (cancel func())
}

type clientSyncJob struct {
	zoneSync ZoneSync
	account  AccountTransitionSource
	zones    ZoneChangeNotifier
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls zoneSync.Sync on a ticker, on
// zone-changed signals for its zone and when the account becomes available.
// The job is idle until Start or Run is called.
func NewClientSyncJob(zoneSync ZoneSync, account AccountTransitionSource, zones ZoneChangeNotifier, interval time.Duration, log *logger.Logger) SyncJob {
	return &clientSyncJob{
		zoneSync: zoneSync,
		account:  account,
		zones:    zones,
		interval: interval,
		logger:   log,
	}
}

func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	// coalesces triggers that arrive while a sync is running
	trigger := make(chan struct{}, 1)
	poke := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	zone := j.zoneSync.Zone()
	stopZone := j.zones.ObserveZoneChanges(func(changed models.ZoneID) {
		if changed.Key() == zone.Key() {
			poke()
		}
	})
	stopAccount := j.account.Subscribe(func(m *AccountStatusMonitor) {
		if m.Status() == models.AccountAvailable {
			poke()
		}
	})

	go func() {
		defer j.wg.Done()
		defer stopZone()
		defer stopAccount()

		t := time.NewTicker(interval)
		defer t.Stop()

		if j.account.Status() == models.AccountAvailable {
			j.sync(jobCtx)
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sync(jobCtx)
			case <-trigger:
				j.sync(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements workers.Worker.
func (j *clientSyncJob) Run(ctx context.Context) error {
	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()
	return nil
}

func (j *clientSyncJob) sync(ctx context.Context) {
	zone := j.zoneSync.Zone()
	err := j.zoneSync.Sync(ctx)

	switch {
	case err == nil:
		j.logger.Debug().Str("func", "clientSyncJob.sync").Str("zone", zone.Key()).Msg("zone synced")
	case errors.Is(err, ErrAccountUnavailable):
		j.logger.Debug().Err(err).Str("func", "clientSyncJob.sync").Str("zone", zone.Key()).Msg("sync skipped")
	case errors.Is(err, context.Canceled):
	default:
		j.logger.Err(err).Str("func", "clientSyncJob.sync").Str("zone", zone.Key()).Msg("sync failed")
	}
}
