package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cloud-sync/internal/codec"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/store"
	"github.com/MKhiriev/go-cloud-sync/models"
)

// ZoneSyncOptions configures a zone synchronizer.
type ZoneSyncOptions struct {
	Zone          models.ZoneID
	DesiredKeys   []models.FieldKey
	NonAtomicPush bool
}

type zoneSynchronizer struct {
	cloud   CloudStore
	zones   store.ZoneStateRepository
	records store.RecordRepository
	account AccountAvailabilityProvider

	recordCoder     *codec.RecordCoder
	checkpointCoder *codec.CheckpointCoder

	opts   ZoneSyncOptions
	logger *logger.Logger

	// mu serializes calls touching the zone's local state.
	mu sync.Mutex
}

func NewZoneSynchronizer(
	cloud CloudStore,
	storages *store.ClientStorages,
	account AccountAvailabilityProvider,
	opts ZoneSyncOptions,
	log *logger.Logger,
) ZoneSync {
	return &zoneSynchronizer{
		cloud:           cloud,
		zones:           storages.ZoneStateRepository,
		records:         storages.RecordRepository,
		account:         account,
		recordCoder:     codec.NewRecordCoder(),
		checkpointCoder: codec.NewCheckpointCoder(),
		opts:            opts,
		logger:          log,
	}
}

func (s *zoneSynchronizer) Zone() models.ZoneID { return s.opts.Zone }

func (s *zoneSynchronizer) Provision(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provision(ctx)
}

func (s *zoneSynchronizer) provision(ctx context.Context) error {
	zone := s.opts.Zone

	provisioned, err := s.zones.IsProvisioned(ctx, zone)
	if err != nil {
		return fmt.Errorf("load provisioning state: %w", err)
	}
	if provisioned {
		return nil
	}

	if err = s.cloud.CreateAndSubscribe(ctx, zone); err != nil {
		return err
	}

	if err = s.zones.MarkProvisioned(ctx, zone); err != nil {
		return fmt.Errorf("mark zone provisioned: %w", err)
	}
	return nil
}

func (s *zoneSynchronizer) Pull(ctx context.Context) (models.PullResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pull(ctx)
}

func (s *zoneSynchronizer) pull(ctx context.Context) (models.PullResult, error) {
	zone := s.opts.Zone

	since, err := s.loadCheckpoint(ctx)
	if err != nil {
		return models.PullResult{}, err
	}

	result, err := s.cloud.FetchChanges(ctx, zone, since, s.opts.DesiredKeys...)
	switch {
	case errors.Is(err, ErrTokenExpired) && since != nil:
		s.logger.Info().
			Str("func", "zoneSynchronizer.Pull").
			Str("zone", zone.Key()).
			Msg("checkpoint expired, resyncing from empty")
		// tombstones compacted on the server never come back, so the
		// resync starts from an empty local zone
		if err = s.zones.ResetZone(ctx, zone); err != nil {
			return models.PullResult{}, fmt.Errorf("reset expired zone: %w", err)
		}
		result, err = s.cloud.FetchChanges(ctx, zone, nil, s.opts.DesiredKeys...)
		if err != nil {
			return models.PullResult{}, err
		}

	case errors.Is(err, ErrUserDeletedZone):
		s.logger.Warn().
			Str("func", "zoneSynchronizer.Pull").
			Str("zone", zone.Key()).
			Msg("zone was deleted remotely, forgetting local state")
		if forgetErr := s.zones.ForgetZone(ctx, zone); forgetErr != nil {
			return models.PullResult{}, errors.Join(err, fmt.Errorf("forget zone: %w", forgetErr))
		}
		return models.PullResult{}, err

	case err != nil:
		return models.PullResult{}, err
	}

	if err = s.apply(ctx, result.Upserted, recordIDs(result.Deleted)); err != nil {
		return models.PullResult{}, err
	}

	blob, err := s.checkpointCoder.Encode(result.Checkpoint)
	if err != nil {
		return models.PullResult{}, fmt.Errorf("encode checkpoint: %w", err)
	}
	if err = s.zones.SaveCheckpoint(ctx, zone, blob); err != nil {
		return models.PullResult{}, fmt.Errorf("save checkpoint: %w", err)
	}

	s.logger.Debug().
		Str("func", "zoneSynchronizer.Pull").
		Str("zone", zone.Key()).
		Int("upserted", len(result.Upserted)).
		Int("deleted", len(result.Deleted)).
		Msg("pulled zone changes")
	return result, nil
}

func (s *zoneSynchronizer) Push(ctx context.Context, toSave []models.RemoteRecord, toDelete []models.RecordID) (models.PushResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.cloud.PerformBatch(ctx, toSave, toDelete, WithAtomic(!s.opts.NonAtomicPush))
	if errors.Is(err, ErrUserDeletedZone) {
		if forgetErr := s.zones.ForgetZone(ctx, s.opts.Zone); forgetErr != nil {
			return result, errors.Join(err, fmt.Errorf("forget zone: %w", forgetErr))
		}
		return result, err
	}

	// a non-atomic batch may have committed a subset even when err != nil
	if applyErr := s.apply(ctx, result.Accepted, result.DeletedIDs); applyErr != nil {
		return result, errors.Join(err, applyErr)
	}
	return result, err
}

func (s *zoneSynchronizer) Sync(ctx context.Context) error {
	if status := s.account.Status(); status != models.AccountAvailable {
		return fmt.Errorf("%w: %s", ErrAccountUnavailable, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.provision(ctx); err != nil {
		return fmt.Errorf("provision zone: %w", err)
	}
	if _, err := s.pull(ctx); err != nil {
		return fmt.Errorf("pull zone: %w", err)
	}
	return nil
}

func (s *zoneSynchronizer) loadCheckpoint(ctx context.Context) (*models.ChangeCheckpoint, error) {
	blob, err := s.zones.LoadCheckpoint(ctx, s.opts.Zone)
	if err != nil {
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}

	checkpoint, err := s.checkpointCoder.Decode(blob)
	if err != nil {
		// unreadable checkpoints are treated as absent
		s.logger.Warn().Err(err).
			Str("func", "zoneSynchronizer.loadCheckpoint").
			Str("zone", s.opts.Zone.Key()).
			Msg("discarding malformed checkpoint")
		return nil, nil
	}
	return checkpoint, nil
}

// apply persists record system fields and removes deleted rows.
func (s *zoneSynchronizer) apply(ctx context.Context, upserted []models.RemoteRecord, deleted []models.RecordID) error {
	if len(upserted) > 0 {
		rows := make([]store.StoredRecord, 0, len(upserted))
		for _, rec := range upserted {
			blob, err := s.recordCoder.Encode(rec)
			if err != nil {
				return fmt.Errorf("encode record %s: %w", rec.ID.Key(), err)
			}
			rows = append(rows, store.StoredRecord{ID: rec.ID, Type: rec.Type, SystemFields: blob})
		}
		if err := s.records.SaveRecords(ctx, rows...); err != nil {
			return fmt.Errorf("save records: %w", err)
		}
	}

	if len(deleted) > 0 {
		if err := s.records.DeleteRecords(ctx, deleted...); err != nil {
			return fmt.Errorf("delete records: %w", err)
		}
	}
	return nil
}

func recordIDs(deleted []models.DeletedRecord) []models.RecordID {
	ids := make([]models.RecordID, 0, len(deleted))
	for _, d := range deleted {
		ids = append(ids, d.ID)
	}
	return ids
}
