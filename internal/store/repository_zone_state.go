package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/models"
)

type zoneStateRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewZoneStateRepository(db *DB, logger *logger.Logger) ZoneStateRepository {
	return &zoneStateRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (z *zoneStateRepository) IsProvisioned(ctx context.Context, zone models.ZoneID) (bool, error) {
	query, args, err := buildIsProvisionedQuery(zone)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = z.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "zoneStateRepository.IsProvisioned").
			Str("zone", zone.Key()).
			Msg("failed to query zone provisioning state")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (z *zoneStateRepository) MarkProvisioned(ctx context.Context, zone models.ZoneID) error {
	query, args, err := buildMarkProvisionedQuery(zone, z.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = z.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "zoneStateRepository.MarkProvisioned").
			Str("zone", zone.Key()).
			Msg("failed to mark zone provisioned")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (z *zoneStateRepository) LoadCheckpoint(ctx context.Context, zone models.ZoneID) ([]byte, error) {
	query, args, err := buildLoadCheckpointQuery(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob []byte
	err = z.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "zoneStateRepository.LoadCheckpoint").
			Str("zone", zone.Key()).
			Msg("failed to load checkpoint")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return blob, nil
}

// SaveCheckpoint stores blob for zone. An empty blob removes the checkpoint.
func (z *zoneStateRepository) SaveCheckpoint(ctx context.Context, zone models.ZoneID, blob []byte) error {
	if len(blob) == 0 {
		return z.DeleteCheckpoint(ctx, zone)
	}

	query, args, err := buildSaveCheckpointQuery(zone, blob, z.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = z.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "zoneStateRepository.SaveCheckpoint").
			Str("zone", zone.Key()).
			Msg("failed to save checkpoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (z *zoneStateRepository) DeleteCheckpoint(ctx context.Context, zone models.ZoneID) error {
	query, args, err := buildDeleteByZoneQuery(tableCheckpoints, zone)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = z.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "zoneStateRepository.DeleteCheckpoint").
			Str("zone", zone.Key()).
			Msg("failed to delete checkpoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (z *zoneStateRepository) ResetZone(ctx context.Context, zone models.ZoneID) error {
	return z.deleteZoneRows(ctx, zone, "zoneStateRepository.ResetZone", tableRecords, tableCheckpoints)
}

func (z *zoneStateRepository) ForgetZone(ctx context.Context, zone models.ZoneID) error {
	return z.deleteZoneRows(ctx, zone, "zoneStateRepository.ForgetZone", tableRecords, tableCheckpoints, tableZones)
}

func (z *zoneStateRepository) deleteZoneRows(ctx context.Context, zone models.ZoneID, funcName string, tables ...string) error {
	return z.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range tables {
			query, args, err := buildDeleteByZoneQuery(table, zone)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", funcName).
					Str("zone", zone.Key()).
					Str("table", table).
					Msg("failed to delete zone rows")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}
