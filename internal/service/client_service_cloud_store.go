package service

import (
	"context"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/workers"
	"github.com/MKhiriev/go-cloud-sync/models"
)

type batchOptions struct {
	atomic     bool
	savePolicy models.SavePolicy
}

// BatchOption configures PerformBatch.
type BatchOption func(*batchOptions)

// WithAtomic sets whether the batch commits all-or-nothing. Default true.
func WithAtomic(atomic bool) BatchOption {
	return func(o *batchOptions) { o.atomic = atomic }
}

// WithSavePolicy sets how saved records merge with the server copy. Default
// [models.SavePolicyChangedKeys].
func WithSavePolicy(policy models.SavePolicy) BatchOption {
	return func(o *batchOptions) { o.savePolicy = policy }
}

type cloudStore struct {
	db       adapter.RecordDatabase
	queue    *workers.Queue
	pageSize int
	logger   *logger.Logger
}

// NewCloudStore returns a CloudStore submitting its remote operations to
// queue. pageSize limits each change page; zero lets the server choose.
func NewCloudStore(db adapter.RecordDatabase, queue *workers.Queue, pageSize int, log *logger.Logger) CloudStore {
	return &cloudStore{
		db:       db,
		queue:    queue,
		pageSize: pageSize,
		logger:   log,
	}
}

func (c *cloudStore) CreateAndSubscribe(ctx context.Context, zone models.ZoneID) error {
	zoneOp := workers.NewOperation("create-zone", func(ctx context.Context) error {
		_, err := c.db.ModifyZones(ctx, []models.RemoteZone{{ID: zone}}, nil)
		return err
	})

	sub := models.Subscription{
		ID:           models.ZoneSubscriptionID(zone),
		Zone:         zone,
		Notification: models.NotificationInfo{ShouldSendContentAvailable: true},
	}
	subOp := workers.NewOperation("create-subscription", func(ctx context.Context) error {
		_, err := c.db.ModifySubscriptions(ctx, []models.Subscription{sub}, nil)
		if adapter.HasPartialCode(err, adapter.CodeServerRejectedRequest) {
			// already subscribed
			return nil
		}
		return err
	})
	if err := subOp.AddDependency(zoneOp); err != nil {
		return classified(err)
	}

	c.queue.Add(ctx, zoneOp, subOp)

	zoneErr := zoneOp.Wait(ctx)
	subErr := subOp.Wait(ctx)

	if err := firstError(zoneErr, subErr); err != nil {
		c.logger.Err(err).
			Str("func", "cloudStore.CreateAndSubscribe").
			Str("zone", zone.Key()).
			Msg("failed to provision zone")
		return classified(err)
	}

	c.logger.Debug().
		Str("func", "cloudStore.CreateAndSubscribe").
		Str("zone", zone.Key()).
		Str("subscription_id", sub.ID).
		Msg("zone provisioned")
	return nil
}

func (c *cloudStore) ClearAllSubscriptions(ctx context.Context) error {
	var ids []string
	fetchOp := workers.NewOperation("fetch-subscriptions", func(ctx context.Context) error {
		subs, err := c.db.FetchAllSubscriptions(ctx)
		if err != nil {
			return err
		}
		for _, sub := range subs {
			ids = append(ids, sub.ID)
		}
		return nil
	})
	deleteOp := workers.NewOperation("delete-subscriptions", func(ctx context.Context) error {
		if fetchOp.Err() != nil || len(ids) == 0 {
			return nil
		}
		_, err := c.db.ModifySubscriptions(ctx, nil, ids)
		return err
	})
	if err := deleteOp.AddDependency(fetchOp); err != nil {
		return classified(err)
	}

	c.queue.Add(ctx, fetchOp, deleteOp)

	if err := firstError(fetchOp.Wait(ctx), deleteOp.Wait(ctx)); err != nil {
		c.logger.Err(err).
			Str("func", "cloudStore.ClearAllSubscriptions").
			Msg("failed to clear subscriptions")
		return classified(err)
	}

	c.logger.Debug().
		Str("func", "cloudStore.ClearAllSubscriptions").
		Int("deleted", len(ids)).
		Msg("subscriptions cleared")
	return nil
}

func (c *cloudStore) FetchChanges(ctx context.Context, zone models.ZoneID, since *models.ChangeCheckpoint, desiredKeys ...models.FieldKey) (models.PullResult, error) {
	var (
		result models.PullResult
		pages  int
	)
	op := workers.NewOperation("fetch-zone-changes", func(ctx context.Context) error {
		cursor := since
		for {
			page, err := c.db.FetchZoneChanges(ctx, models.ZoneChangesRequest{
				Zone:         zone,
				Since:        cursor,
				DesiredKeys:  desiredKeys,
				ResultsLimit: c.pageSize,
			})
			if err != nil {
				return err
			}
			pages++

			result.Upserted = append(result.Upserted, page.Upserted...)
			result.Deleted = append(result.Deleted, page.Deleted...)

			if !page.MoreComing {
				result.Checkpoint = page.Checkpoint
				return nil
			}
			if page.Checkpoint == nil {
				return ErrMissingCheckpoint
			}
			cursor = page.Checkpoint
		}
	})

	c.queue.Add(ctx, op)

	if err := op.Wait(ctx); err != nil {
		c.logger.Err(err).
			Str("func", "cloudStore.FetchChanges").
			Str("zone", zone.Key()).
			Msg("failed to fetch zone changes")
		return models.PullResult{}, classified(err)
	}

	c.logger.Debug().
		Str("func", "cloudStore.FetchChanges").
		Str("zone", zone.Key()).
		Int("pages", pages).
		Int("upserted", len(result.Upserted)).
		Int("deleted", len(result.Deleted)).
		Msg("zone changes fetched")
	return result, nil
}

func (c *cloudStore) PerformBatch(ctx context.Context, toSave []models.RemoteRecord, idsToDelete []models.RecordID, opts ...BatchOption) (models.PushResult, error) {
	options := batchOptions{atomic: true, savePolicy: models.SavePolicyChangedKeys}
	for _, opt := range opts {
		opt(&options)
	}

	if len(toSave) == 0 && len(idsToDelete) == 0 {
		return models.PushResult{}, nil
	}

	var committed models.ModifyRecordsResult
	op := workers.NewOperation("modify-records", func(ctx context.Context) error {
		var err error
		committed, err = c.db.ModifyRecords(ctx, models.ModifyRecordsRequest{
			Save:       toSave,
			Delete:     idsToDelete,
			SavePolicy: options.savePolicy,
			Atomic:     options.atomic,
		})
		return err
	})

	c.queue.Add(ctx, op)

	err := op.Wait(ctx)
	if err != nil && (options.atomic || !op.Settled()) {
		c.logger.Err(err).
			Str("func", "cloudStore.PerformBatch").
			Bool("atomic", options.atomic).
			Msg("batch rejected")
		return models.PushResult{}, classified(err)
	}

	result := models.PushResult{Accepted: committed.Saved, DeletedIDs: committed.Deleted}
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "cloudStore.PerformBatch").
			Int("accepted", len(result.Accepted)).
			Int("deleted", len(result.DeletedIDs)).
			Msg("batch partially committed")
		return result, classified(err)
	}

	return result, nil
}

// firstError returns the first non-nil error in submission order.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
