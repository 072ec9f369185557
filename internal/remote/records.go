package remote

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
	"github.com/MKhiriev/go-cloud-sync/internal/validators"
	"github.com/MKhiriev/go-cloud-sync/models"
)

// pendingChange is a validated item of a modify request.
type pendingChange struct {
	zone    *zoneState
	record  models.RemoteRecord
	deleted bool
}

// ModifyRecords saves and deletes records.
//
// Atomic requests commit everything or nothing: when any item fails, the
// remaining items fail with [adapter.CodeBatchRequestFailed] and the result is
// empty. Non-atomic requests commit every valid item and report the rest in
// a partial failure.
func (m *MemoryStore) ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResult, error) {
	if err := m.validator.Validate(ctx, req, validators.FieldSavePolicy); err != nil {
		return models.ModifyRecordsResult{}, adapter.NewError(adapter.CodeBadRequest, "%v", err)
	}
	policy := req.SavePolicy
	if policy == "" {
		policy = models.SavePolicyChangedKeys
	}

	accountID, acc, err := m.lockAccount(ctx)
	if err != nil {
		return models.ModifyRecordsResult{}, err
	}

	now := m.now()
	quotaUsed := acc.recordCount
	failed := make(map[string]*adapter.Error)
	saving := make(map[string]struct{}, len(req.Save))
	var pending []pendingChange

	for _, rec := range req.Save {
		key := rec.ID.Key()
		if _, dup := saving[key]; dup {
			failed[key] = adapter.NewError(adapter.CodeBadRequest, "%v", validators.ErrDuplicateRecordInSet)
			continue
		}
		saving[key] = struct{}{}
		if invalid := m.validator.Validate(ctx, rec); invalid != nil {
			failed[key] = adapter.NewError(adapter.CodeBadRequest, "%v", invalid)
			continue
		}
		if zoneErr := acc.zoneError(rec.ID.Zone); zoneErr != nil {
			failed[key] = zoneErr
			continue
		}
		zone := acc.zones[rec.ID.Zone.Key()]
		current, exists := zone.records[rec.ID.Name]

		switch {
		case !exists && policy == models.SavePolicyIfServerRecordUnchanged && rec.ChangeTag != "":
			failed[key] = adapter.NewError(adapter.CodeUnknownItem, "record %s no longer exists", key)
			continue
		case exists && policy == models.SavePolicyIfServerRecordUnchanged && rec.ChangeTag != current.ChangeTag:
			serverCopy := current
			serverCopy.Fields = maps.Clone(current.Fields)
			failed[key] = &adapter.Error{
				Code:         adapter.CodeServerRecordChanged,
				Message:      "record " + key + " was modified on the server",
				ServerRecord: &serverCopy,
			}
			continue
		case !exists && m.opts.QuotaRecords > 0 && quotaUsed >= m.opts.QuotaRecords:
			failed[key] = adapter.NewError(adapter.CodeQuotaExceeded, "record quota of %d reached", m.opts.QuotaRecords)
			continue
		}

		if !exists {
			quotaUsed++
		}
		pending = append(pending, pendingChange{
			zone:   zone,
			record: merge(current, exists, rec, policy, now),
		})
	}

	for _, id := range req.Delete {
		key := id.Key()
		if invalid := m.validator.Validate(ctx, id); invalid != nil {
			failed[key] = adapter.NewError(adapter.CodeBadRequest, "%v", invalid)
			continue
		}
		if zoneErr := acc.zoneError(id.Zone); zoneErr != nil {
			failed[key] = zoneErr
			continue
		}
		zone := acc.zones[id.Zone.Key()]
		current, exists := zone.records[id.Name]
		if !exists {
			failed[key] = adapter.NewError(adapter.CodeUnknownItem, "record %s does not exist", key)
			continue
		}
		pending = append(pending, pendingChange{zone: zone, record: current, deleted: true})
	}

	if req.Atomic && len(failed) > 0 {
		for _, p := range pending {
			failed[p.record.ID.Key()] = adapter.NewError(adapter.CodeBatchRequestFailed, "batch not committed")
		}
		m.mu.Unlock()

		m.logger.Debug().
			Str("func", "MemoryStore.ModifyRecords").
			Str("account_id", accountID).
			Int("failed", len(failed)).
			Msg("atomic batch rejected")
		return models.ModifyRecordsResult{}, adapter.NewPartialFailure(failed)
	}

	result := models.ModifyRecordsResult{}
	touched := make(map[string]models.ZoneID)
	for _, p := range pending {
		touched[p.zone.id.Key()] = p.zone.id
		_, exists := p.zone.records[p.record.ID.Name]
		if p.deleted {
			if !exists {
				continue
			}
			delete(p.zone.records, p.record.ID.Name)
			acc.recordCount--
			p.zone.log.append(p.record.SystemFields(), true)
			p.zone.log.compact(m.opts.ChangeLogLimit)
			result.Deleted = append(result.Deleted, p.record.ID)
			continue
		}
		if !exists {
			acc.recordCount++
		}
		p.zone.records[p.record.ID.Name] = p.record
		p.zone.log.append(p.record, false)
		saved := p.record
		saved.Fields = maps.Clone(p.record.Fields)
		result.Saved = append(result.Saved, saved)
	}
	notes := zoneChanged(acc, touched)
	m.mu.Unlock()

	for _, n := range notes {
		m.emit(accountID, n)
	}

	if partial := adapter.NewPartialFailure(failed); partial != nil {
		return result, partial
	}
	return result, nil
}

// merge produces the stored form of a save under policy.
func merge(current models.RemoteRecord, exists bool, submitted models.RemoteRecord, policy models.SavePolicy, now time.Time) models.RemoteRecord {
	out := models.RemoteRecord{
		ID:         submitted.ID,
		Type:       submitted.Type,
		ChangeTag:  utils.NewID(),
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if exists {
		out.ID = current.ID
		out.CreatedAt = current.CreatedAt
		if out.Type == "" {
			out.Type = current.Type
		}
	}
	out.ID.Zone = models.ZoneID{Name: out.ID.Zone.Name, OwnerName: out.ID.Zone.Owner()}

	if policy == models.SavePolicyAllKeys || !exists {
		out.Fields = maps.Clone(submitted.Fields)
		return out
	}

	out.Fields = maps.Clone(current.Fields)
	if out.Fields == nil {
		out.Fields = make(map[models.FieldKey]json.RawMessage)
	}
	keys := submitted.ChangedKeys
	if len(keys) == 0 {
		keys = slices.Collect(maps.Keys(submitted.Fields))
	}
	for _, k := range keys {
		if v, ok := submitted.Fields[k]; ok {
			out.Fields[k] = v
		} else {
			delete(out.Fields, k)
		}
	}
	return out
}
