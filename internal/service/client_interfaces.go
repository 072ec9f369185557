// Package service is the synchronization core: remote failure
// classification, account availability tracking, zone provisioning, the
// change-feed puller and the batch pusher, plus the zone synchronizer and
// background job that drive them for one zone.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cloud-sync/models"
)

// CloudStore is the remote-facing half of the core. Every method blocks until
// the underlying operations settle and returns either nil or a [*SyncError].
type CloudStore interface {
	// CreateAndSubscribe creates zone and a silent zone-wide change
	// subscription for it. The subscription is submitted together with the
	// zone but executes only after the zone operation settles. An existing
	// subscription counts as success, so repeated calls succeed.
	CreateAndSubscribe(ctx context.Context, zone models.ZoneID) error

	// ClearAllSubscriptions deletes every subscription of the account.
	ClearAllSubscriptions(ctx context.Context) error

	// FetchChanges pages through every change in zone after since (nil means
	// from the beginning). Only the checkpoint of the last page is returned.
	// Any failure fails the whole call without a partial result.
	FetchChanges(ctx context.Context, zone models.ZoneID, since *models.ChangeCheckpoint, desiredKeys ...models.FieldKey) (models.PullResult, error)

	// PerformBatch saves toSave and deletes idsToDelete in one remote
	// operation. Atomic batches (the default) return a zero result on
	// failure. Non-atomic batches return the committed subset alongside the
	// error, so callers must inspect the result even when err is non-nil.
	PerformBatch(ctx context.Context, toSave []models.RemoteRecord, idsToDelete []models.RecordID, opts ...BatchOption) (models.PushResult, error)
}

// AccountAvailabilityProvider exposes the tracked account availability.
type AccountAvailabilityProvider interface {
	Status() models.AccountAvailability
}

// AccountChangeNotifier delivers external account-changed signals.
type AccountChangeNotifier interface {
	ObserveAccountChanges(fn func()) (cancel func())
}

// ZoneChangeNotifier delivers zone-changed push signals.
type ZoneChangeNotifier interface {
	ObserveZoneChanges(fn func(models.ZoneID)) (cancel func())
}

// ZoneSync keeps the local state of one zone in step with the remote store.
type ZoneSync interface {
	// Zone returns the synchronized zone.
	Zone() models.ZoneID

	// Provision creates the remote zone and its subscription unless the
	// local store already marks it provisioned.
	Provision(ctx context.Context) error

	// Pull applies remote changes since the stored checkpoint to the local
	// store and returns them.
	Pull(ctx context.Context) (models.PullResult, error)

	// Push submits local changes and records what the remote store
	// accepted.
	Push(ctx context.Context, toSave []models.RemoteRecord, toDelete []models.RecordID) (models.PushResult, error)

	// Sync provisions and pulls when the account is available.
	Sync(ctx context.Context) error
}

// SyncJob runs Sync in the background.
type SyncJob interface {
	// Start launches the job. It syncs every interval, defaulting to 5
	// minutes, and whenever the zone changes remotely or the account
	// becomes available. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and blocks until it has exited.
	Stop()

	// Run starts the job and blocks until ctx is done.
	Run(ctx context.Context) error
}
