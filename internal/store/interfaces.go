// Package store is the sync client's local persistence: per-zone
// provisioning state, change checkpoints, and record system fields, kept in
// SQLite. Blobs are stored as produced by the codec package and never
// interpreted here.
package store

import (
	"context"

	"github.com/MKhiriev/go-cloud-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ZoneStateRepository tracks provisioning and the last change checkpoint of
// each zone.
type ZoneStateRepository interface {
	IsProvisioned(ctx context.Context, zone models.ZoneID) (bool, error)
	MarkProvisioned(ctx context.Context, zone models.ZoneID) error

	// LoadCheckpoint returns nil when no checkpoint is stored.
	LoadCheckpoint(ctx context.Context, zone models.ZoneID) ([]byte, error)
	SaveCheckpoint(ctx context.Context, zone models.ZoneID, blob []byte) error
	DeleteCheckpoint(ctx context.Context, zone models.ZoneID) error

	// ResetZone drops the checkpoint and all records of zone in one
	// transaction. The zone stays provisioned.
	ResetZone(ctx context.Context, zone models.ZoneID) error

	// ForgetZone removes everything known about zone in one transaction.
	ForgetZone(ctx context.Context, zone models.ZoneID) error
}

// RecordRepository keeps the encoded system fields of records.
type RecordRepository interface {
	SaveRecords(ctx context.Context, records ...StoredRecord) error
	DeleteRecords(ctx context.Context, ids ...models.RecordID) error
	GetRecord(ctx context.Context, id models.RecordID) (StoredRecord, error)
	ListRecords(ctx context.Context, zone models.ZoneID) ([]StoredRecord, error)
}

// StoredRecord is one row of the records table.
type StoredRecord struct {
	ID           models.RecordID
	Type         models.RecordType
	SystemFields []byte
}
