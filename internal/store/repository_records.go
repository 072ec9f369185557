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

// maxRowsPerInsert keeps multi-row inserts under SQLite's bound parameter
// limit (5 columns per row).
const maxRowsPerInsert = 150

type recordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SaveRecords upserts records in one transaction.
func (r *recordRepository) SaveRecords(ctx context.Context, records ...StoredRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := r.now()
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += maxRowsPerInsert {
			end := min(start+maxRowsPerInsert, len(records))

			query, args, err := buildSaveRecordsQuery(records[start:end], now)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", "recordRepository.SaveRecords").
					Int("count", end-start).
					Msg("failed to upsert records")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

// DeleteRecords removes ids, grouped per zone, in one transaction. Missing
// rows are ignored.
func (r *recordRepository) DeleteRecords(ctx context.Context, ids ...models.RecordID) error {
	if len(ids) == 0 {
		return nil
	}

	zones := make([]models.ZoneID, 0, 1)
	names := make(map[models.ZoneID][]string)
	for _, id := range ids {
		zone := models.ZoneID{Name: id.Zone.Name, OwnerName: id.Zone.Owner()}
		if _, ok := names[zone]; !ok {
			zones = append(zones, zone)
		}
		names[zone] = append(names[zone], id.Name)
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, zone := range zones {
			query, args, err := buildDeleteRecordsQuery(zone, names[zone])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", "recordRepository.DeleteRecords").
					Str("zone", zone.Key()).
					Msg("failed to delete records")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (r *recordRepository) GetRecord(ctx context.Context, id models.RecordID) (StoredRecord, error) {
	query, args, err := buildGetRecordQuery(id)
	if err != nil {
		return StoredRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec := StoredRecord{ID: id}
	var recordType string
	err = r.QueryRowContext(ctx, query, args...).Scan(&recordType, &rec.SystemFields)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredRecord{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordRepository.GetRecord").
			Str("record", id.Key()).
			Msg("failed to get record")
		return StoredRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	rec.Type = models.RecordType(recordType)

	return rec, nil
}

func (r *recordRepository) ListRecords(ctx context.Context, zone models.ZoneID) ([]StoredRecord, error) {
	query, args, err := buildListRecordsQuery(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordRepository.ListRecords").
			Str("zone", zone.Key()).
			Msg("failed to list records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []StoredRecord
	for rows.Next() {
		rec := StoredRecord{ID: models.RecordID{Zone: zone}}
		var recordType string
		if err = rows.Scan(&rec.ID.Name, &recordType, &rec.SystemFields); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rec.Type = models.RecordType(recordType)
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}
