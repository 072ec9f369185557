package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
	"github.com/MKhiriev/go-cloud-sync/models"
)

type changeEntry struct {
	seq     uint64
	record  models.RemoteRecord
	deleted bool
}

// changeLog holds the latest change of every record in sequence order.
// Superseded entries are removed on append, so a fetch never returns the
// same record twice.
type changeLog struct {
	entries []changeEntry
	seq     uint64
	// purgedThrough is the sequence of the newest tombstone dropped by
	// compaction.
	purgedThrough uint64
}

func (l *changeLog) append(record models.RemoteRecord, deleted bool) {
	for i, e := range l.entries {
		if e.record.ID.Name == record.ID.Name {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			break
		}
	}
	l.seq++
	l.entries = append(l.entries, changeEntry{seq: l.seq, record: record, deleted: deleted})
}

// compact drops the oldest tombstones beyond limit.
func (l *changeLog) compact(limit int) {
	if limit <= 0 {
		return
	}

	tombstones := 0
	for _, e := range l.entries {
		if e.deleted {
			tombstones++
		}
	}

	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.deleted && tombstones > limit {
			tombstones--
			l.purgedThrough = e.seq
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
}

// since returns up to limit entries after seq and whether more remain.
func (l *changeLog) since(seq uint64, limit int) ([]changeEntry, bool) {
	start := len(l.entries)
	for i, e := range l.entries {
		if e.seq > seq {
			start = i
			break
		}
	}
	rest := l.entries[start:]
	if len(rest) > limit {
		return rest[:limit], true
	}
	return rest, false
}

// Tokens are "epoch:seq:signature". The signature stops clients from forging
// positions.
func (m *MemoryStore) encodeToken(epoch string, seq uint64) *models.ChangeCheckpoint {
	payload := epoch + ":" + strconv.FormatUint(seq, 10)
	return &models.ChangeCheckpoint{Token: []byte(payload + ":" + utils.HashString(payload, m.opts.HashKey))}
}

func (m *MemoryStore) decodeToken(token []byte) (epoch string, seq uint64, err error) {
	parts := strings.Split(string(token), ":")
	if len(parts) != 3 {
		return "", 0, fmt.Errorf("malformed change token")
	}
	payload := parts[0] + ":" + parts[1]
	if !utils.VerifyHashString(payload, parts[2], m.opts.HashKey) {
		return "", 0, fmt.Errorf("change token signature mismatch")
	}
	seq, err = strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed change token sequence: %w", err)
	}
	return parts[0], seq, nil
}

// FetchZoneChanges returns one page of the zone's change feed after
// req.Since. Zone-level failures are reported as a partial failure keyed by
// the zone.
func (m *MemoryStore) FetchZoneChanges(ctx context.Context, req models.ZoneChangesRequest) (models.ZoneChangesPage, error) {
	if err := m.validator.Validate(ctx, req); err != nil {
		return models.ZoneChangesPage{}, adapter.NewError(adapter.CodeBadRequest, "%v", err)
	}

	_, acc, err := m.lockAccount(ctx)
	if err != nil {
		return models.ZoneChangesPage{}, err
	}
	defer m.mu.Unlock()

	key := req.Zone.Key()
	zoneFailure := func(e *adapter.Error) error {
		return adapter.NewPartialFailure(map[string]*adapter.Error{key: e})
	}

	if zoneErr := acc.zoneError(req.Zone); zoneErr != nil {
		return models.ZoneChangesPage{}, zoneFailure(zoneErr)
	}
	zone := acc.zones[key]

	var after uint64
	if req.Since != nil && len(req.Since.Token) > 0 {
		epoch, seq, decodeErr := m.decodeToken(req.Since.Token)
		switch {
		case decodeErr != nil:
			return models.ZoneChangesPage{}, adapter.NewError(adapter.CodeBadRequest, "%v", decodeErr)
		case epoch != zone.epoch, seq > zone.log.seq, seq < zone.log.purgedThrough:
			return models.ZoneChangesPage{}, zoneFailure(
				adapter.NewError(adapter.CodeChangeTokenExpired, "change token for zone %s is no longer valid", key))
		}
		after = seq
	}

	limit := req.ResultsLimit
	if limit <= 0 {
		limit = m.opts.PageSize
	}

	entries, more := zone.log.since(after, limit)
	page := models.ZoneChangesPage{MoreComing: more}
	for _, e := range entries {
		if e.deleted {
			page.Deleted = append(page.Deleted, models.DeletedRecord{ID: e.record.ID, Type: e.record.Type})
			continue
		}
		page.Upserted = append(page.Upserted, project(e.record, req.DesiredKeys))
	}

	last := zone.log.seq
	if more {
		last = entries[len(entries)-1].seq
	}
	page.Checkpoint = m.encodeToken(zone.epoch, last)

	return page, nil
}

// ExpireChangeTokens invalidates every change token issued for zone.
func (m *MemoryStore) ExpireChangeTokens(accountID string, zone models.ZoneID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if z, ok := m.account(accountID).zones[zone.Key()]; ok {
		z.epoch = utils.NewID()
	}
}

// project returns a copy of r holding only keys. No keys means every field.
func project(r models.RemoteRecord, keys []models.FieldKey) models.RemoteRecord {
	out := r
	out.ChangedKeys = nil
	if len(keys) == 0 {
		out.Fields = maps.Clone(r.Fields)
		return out
	}

	out.Fields = nil
	for _, k := range keys {
		if v, ok := r.Fields[k]; ok {
			if out.Fields == nil {
				out.Fields = make(map[models.FieldKey]json.RawMessage)
			}
			out.Fields[k] = v
		}
	}
	return out
}
