package remote

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
	"github.com/MKhiriev/go-cloud-sync/models"
)

type zoneState struct {
	id models.ZoneID
	// epoch changes whenever the zone is recreated; tokens of another epoch
	// are expired.
	epoch   string
	records map[string]models.RemoteRecord
	log     changeLog
}

func newZoneState(id models.ZoneID) *zoneState {
	return &zoneState{
		id:      models.ZoneID{Name: id.Name, OwnerName: id.Owner()},
		epoch:   utils.NewID(),
		records: make(map[string]models.RemoteRecord),
	}
}

// ModifyZones creates zones in save and deletes zones in deleteIDs. Creating
// an existing zone is a no-op that still reports the zone as saved.
func (m *MemoryStore) ModifyZones(ctx context.Context, save []models.RemoteZone, deleteIDs []models.ZoneID) (models.ModifyZonesResult, error) {
	accountID, acc, err := m.lockAccount(ctx)
	if err != nil {
		return models.ModifyZonesResult{}, err
	}
	defer m.mu.Unlock()

	result := models.ModifyZonesResult{}
	failed := make(map[string]*adapter.Error)

	for _, zone := range save {
		key := zone.ID.Key()
		if invalid := m.validator.Validate(ctx, zone); invalid != nil {
			failed[key] = adapter.NewError(adapter.CodeBadRequest, "%v", invalid)
			continue
		}
		if _, ok := acc.zones[key]; !ok {
			acc.zones[key] = newZoneState(zone.ID)
			delete(acc.userDeleted, key)
			m.logger.Debug().
				Str("func", "MemoryStore.ModifyZones").
				Str("account_id", accountID).
				Str("zone", key).
				Msg("zone created")
		}
		result.Saved = append(result.Saved, models.RemoteZone{ID: acc.zones[key].id})
	}

	for _, id := range deleteIDs {
		key := id.Key()
		if _, ok := acc.zones[key]; !ok {
			failed[key] = adapter.NewError(adapter.CodeZoneNotFound, "zone %s does not exist", key)
			continue
		}
		acc.dropZone(key)
		result.Deleted = append(result.Deleted, id)
	}

	if partial := adapter.NewPartialFailure(failed); partial != nil {
		return result, partial
	}
	return result, nil
}

// UserDeleteZone removes zone as if the user deleted it from another device.
// Later requests against the zone fail with [adapter.CodeUserDeletedZone]
// until it is created again.
func (m *MemoryStore) UserDeleteZone(accountID string, zone models.ZoneID) bool {
	m.mu.Lock()
	acc := m.account(accountID)
	key := zone.Key()
	_, ok := acc.zones[key]
	if ok {
		acc.dropZone(key)
		acc.userDeleted[key] = true
	}
	notes := zoneChanged(acc, map[string]models.ZoneID{key: zone})
	m.mu.Unlock()

	for _, n := range notes {
		m.emit(accountID, n)
	}
	return ok
}

// dropZone removes a zone and its records.
func (acc *accountState) dropZone(key string) {
	zone := acc.zones[key]
	acc.recordCount -= len(zone.records)
	delete(acc.zones, key)
}

// zoneError reports why key cannot be used, or nil if the zone exists.
func (acc *accountState) zoneError(zone models.ZoneID) *adapter.Error {
	key := zone.Key()
	if _, ok := acc.zones[key]; ok {
		return nil
	}
	if acc.userDeleted[key] {
		return adapter.NewError(adapter.CodeUserDeletedZone, "zone %s was deleted by the user", key)
	}
	return adapter.NewError(adapter.CodeZoneNotFound, "zone %s does not exist", key)
}

// ModifySubscriptions saves and deletes subscriptions. Saving an existing ID
// fails with [adapter.CodeServerRejectedRequest]; deleting an unknown ID fails
// with [adapter.CodeUnknownItem].
func (m *MemoryStore) ModifySubscriptions(ctx context.Context, save []models.Subscription, deleteIDs []string) (models.ModifySubscriptionsResult, error) {
	_, acc, err := m.lockAccount(ctx)
	if err != nil {
		return models.ModifySubscriptionsResult{}, err
	}
	defer m.mu.Unlock()

	result := models.ModifySubscriptionsResult{}
	failed := make(map[string]*adapter.Error)

	for _, sub := range save {
		if invalid := m.validator.Validate(ctx, sub); invalid != nil {
			failed[sub.ID] = adapter.NewError(adapter.CodeBadRequest, "%v", invalid)
			continue
		}
		if _, ok := acc.subscriptions[sub.ID]; ok {
			failed[sub.ID] = adapter.NewError(adapter.CodeServerRejectedRequest, "subscription %s already exists", sub.ID)
			continue
		}
		if zoneErr := acc.zoneError(sub.Zone); zoneErr != nil {
			failed[sub.ID] = zoneErr
			continue
		}
		sub.Zone = acc.zones[sub.Zone.Key()].id
		acc.subscriptions[sub.ID] = sub
		result.Saved = append(result.Saved, sub)
	}

	for _, id := range deleteIDs {
		if _, ok := acc.subscriptions[id]; !ok {
			failed[id] = adapter.NewError(adapter.CodeUnknownItem, "subscription %s does not exist", id)
			continue
		}
		delete(acc.subscriptions, id)
		result.Deleted = append(result.Deleted, id)
	}

	if partial := adapter.NewPartialFailure(failed); partial != nil {
		return result, partial
	}
	return result, nil
}

// FetchAllSubscriptions returns the account's subscriptions ordered by ID.
func (m *MemoryStore) FetchAllSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	_, acc, err := m.lockAccount(ctx)
	if err != nil {
		return nil, err
	}
	defer m.mu.Unlock()

	out := make([]models.Subscription, 0, len(acc.subscriptions))
	for _, sub := range acc.subscriptions {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
