// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cloud-sync/models"
)

const (
	tableZones       = "zones"
	tableCheckpoints = "checkpoints"
	tableRecords     = "records"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildIsProvisionedQuery(zone models.ZoneID) (string, []any, error) {
	return builder.
		Select("COUNT(*)").
		From(tableZones).
		Where(sq.Eq{"zone_key": zone.Key()}).
		ToSql()
}

func buildMarkProvisionedQuery(zone models.ZoneID, now time.Time) (string, []any, error) {
	return builder.
		Insert(tableZones).
		Columns("zone_key", "zone_name", "owner_name", "provisioned_at").
		Values(zone.Key(), zone.Name, zone.Owner(), now).
		Suffix("ON CONFLICT(zone_key) DO UPDATE SET provisioned_at = excluded.provisioned_at").
		ToSql()
}

func buildLoadCheckpointQuery(zone models.ZoneID) (string, []any, error) {
	return builder.
		Select("token").
		From(tableCheckpoints).
		Where(sq.Eq{"zone_key": zone.Key()}).
		ToSql()
}

func buildSaveCheckpointQuery(zone models.ZoneID, blob []byte, now time.Time) (string, []any, error) {
	return builder.
		Insert(tableCheckpoints).
		Columns("zone_key", "token", "updated_at").
		Values(zone.Key(), blob, now).
		Suffix("ON CONFLICT(zone_key) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteByZoneQuery(table string, zone models.ZoneID) (string, []any, error) {
	return builder.
		Delete(table).
		Where(sq.Eq{"zone_key": zone.Key()}).
		ToSql()
}

func buildSaveRecordsQuery(records []StoredRecord, now time.Time) (string, []any, error) {
	insert := builder.
		Insert(tableRecords).
		Columns("zone_key", "record_name", "record_type", "system_fields", "updated_at")
	for _, r := range records {
		insert = insert.Values(r.ID.Zone.Key(), r.ID.Name, string(r.Type), r.SystemFields, now)
	}
	return insert.
		Suffix("ON CONFLICT(zone_key, record_name) DO UPDATE SET " +
			"record_type = excluded.record_type, " +
			"system_fields = excluded.system_fields, " +
			"updated_at = excluded.updated_at").
		ToSql()
}

// buildDeleteRecordsQuery deletes ids of a single zone.
func buildDeleteRecordsQuery(zone models.ZoneID, names []string) (string, []any, error) {
	return builder.
		Delete(tableRecords).
		Where(sq.Eq{"zone_key": zone.Key()}).
		Where(sq.Eq{"record_name": names}).
		ToSql()
}

func buildGetRecordQuery(id models.RecordID) (string, []any, error) {
	return builder.
		Select("record_type", "system_fields").
		From(tableRecords).
		Where(sq.Eq{"zone_key": id.Zone.Key()}).
		Where(sq.Eq{"record_name": id.Name}).
		ToSql()
}

func buildListRecordsQuery(zone models.ZoneID) (string, []any, error) {
	return builder.
		Select("record_name", "record_type", "system_fields").
		From(tableRecords).
		Where(sq.Eq{"zone_key": zone.Key()}).
		OrderBy("record_name").
		ToSql()
}
