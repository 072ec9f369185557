package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/mock"
	"github.com/MKhiriev/go-cloud-sync/internal/remote"
	"github.com/MKhiriev/go-cloud-sync/internal/workers"
	"github.com/MKhiriev/go-cloud-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testZone = models.NewZoneID("notes")

func newTestQueue(t *testing.T) *workers.Queue {
	t.Helper()
	q := workers.NewQueue(4, logger.Nop())
	t.Cleanup(q.Close)
	return q
}

func newMockCloudStore(t *testing.T) (CloudStore, *mock.MockRecordDatabase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	db := mock.NewMockRecordDatabase(ctrl)
	return NewCloudStore(db, newTestQueue(t), 0, logger.Nop()), db
}

func newMemoryCloudStore(t *testing.T, opts remote.Options) (CloudStore, *remote.MemoryStore) {
	t.Helper()
	opts.HashKey = "test-key"
	mem := remote.NewMemoryStore(opts, logger.Nop())
	return NewCloudStore(mem.Session("acc-1"), newTestQueue(t), 0, logger.Nop()), mem
}

func record(name, body string) models.RemoteRecord {
	return models.RemoteRecord{
		ID:     models.RecordID{Name: name, Zone: testZone},
		Type:   "Note",
		Fields: map[models.FieldKey]json.RawMessage{"body": json.RawMessage(fmt.Sprintf("%q", body))},
	}
}

// ── CreateAndSubscribe ───────────────────────────────────────────────────────

func TestCreateAndSubscribe_SubscriptionRunsAfterZone(t *testing.T) {
	cs, db := newMockCloudStore(t)

	var zoneDone atomic.Bool
	db.EXPECT().
		ModifyZones(gomock.Any(), []models.RemoteZone{{ID: testZone}}, nil).
		DoAndReturn(func(context.Context, []models.RemoteZone, []models.ZoneID) (models.ModifyZonesResult, error) {
			time.Sleep(20 * time.Millisecond)
			zoneDone.Store(true)
			return models.ModifyZonesResult{Saved: []models.RemoteZone{{ID: testZone}}}, nil
		})
	db.EXPECT().
		ModifySubscriptions(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, save []models.Subscription, _ []string) (models.ModifySubscriptionsResult, error) {
			assert.True(t, zoneDone.Load(), "subscription executed before the zone operation settled")
			assert.Equal(t, []models.Subscription{{
				ID:           "zone-notes",
				Zone:         testZone,
				Notification: models.NotificationInfo{ShouldSendContentAvailable: true},
			}}, save)
			return models.ModifySubscriptionsResult{Saved: save}, nil
		})

	require.NoError(t, cs.CreateAndSubscribe(context.Background(), testZone))
}

func TestCreateAndSubscribe_ExistingSubscriptionIsSuccess(t *testing.T) {
	cs, db := newMockCloudStore(t)

	db.EXPECT().ModifyZones(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ModifyZonesResult{}, nil)
	db.EXPECT().ModifySubscriptions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ModifySubscriptionsResult{}, partial(adapter.CodeServerRejectedRequest))

	assert.NoError(t, cs.CreateAndSubscribe(context.Background(), testZone))
}

func TestCreateAndSubscribe_ZoneErrorWins(t *testing.T) {
	cs, db := newMockCloudStore(t)

	// the subscription still executes once the zone operation has settled
	db.EXPECT().ModifyZones(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ModifyZonesResult{}, adapter.NewError(adapter.CodeNotAuthenticated, "signed out"))
	db.EXPECT().ModifySubscriptions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ModifySubscriptionsResult{}, partial(adapter.CodeZoneNotFound))

	err := cs.CreateAndSubscribe(context.Background(), testZone)
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestCreateAndSubscribe_SubscriptionError(t *testing.T) {
	cs, db := newMockCloudStore(t)

	db.EXPECT().ModifyZones(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ModifyZonesResult{}, nil)
	db.EXPECT().ModifySubscriptions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ModifySubscriptionsResult{}, partial(adapter.CodeQuotaExceeded))

	err := cs.CreateAndSubscribe(context.Background(), testZone)
	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, KindQuotaExceeded, syncErr.Kind)
}

func TestCreateAndSubscribe_Idempotent(t *testing.T) {
	cs, mem := newMemoryCloudStore(t, remote.Options{})
	ctx := context.Background()

	require.NoError(t, cs.CreateAndSubscribe(ctx, testZone))
	require.NoError(t, cs.CreateAndSubscribe(ctx, testZone))

	subs, err := mem.Session("acc-1").FetchAllSubscriptions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, models.ZoneSubscriptionID(testZone), subs[0].ID)
}

// ── ClearAllSubscriptions ────────────────────────────────────────────────────

func TestClearAllSubscriptions(t *testing.T) {
	cs, db := newMockCloudStore(t)

	gomock.InOrder(
		db.EXPECT().FetchAllSubscriptions(gomock.Any()).
			Return([]models.Subscription{{ID: "zone-a"}, {ID: "zone-b"}}, nil),
		db.EXPECT().ModifySubscriptions(gomock.Any(), nil, []string{"zone-a", "zone-b"}).
			Return(models.ModifySubscriptionsResult{Deleted: []string{"zone-a", "zone-b"}}, nil),
	)

	assert.NoError(t, cs.ClearAllSubscriptions(context.Background()))
}

func TestClearAllSubscriptions_NothingToDelete(t *testing.T) {
	cs, db := newMockCloudStore(t)
	db.EXPECT().FetchAllSubscriptions(gomock.Any()).Return(nil, nil)

	assert.NoError(t, cs.ClearAllSubscriptions(context.Background()))
}

func TestClearAllSubscriptions_FetchFails(t *testing.T) {
	cs, db := newMockCloudStore(t)
	db.EXPECT().FetchAllSubscriptions(gomock.Any()).
		Return(nil, adapter.NewError(adapter.CodeNotAuthenticated, ""))

	assert.ErrorIs(t, cs.ClearAllSubscriptions(context.Background()), ErrNoAccount)
}

// ── FetchChanges ─────────────────────────────────────────────────────────────

func cp(s string) *models.ChangeCheckpoint {
	return &models.ChangeCheckpoint{Token: []byte(s)}
}

func TestFetchChanges_PagesUntilDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockRecordDatabase(ctrl)
	cs := NewCloudStore(db, newTestQueue(t), 2, logger.Nop())
	keys := []models.FieldKey{"body"}

	gomock.InOrder(
		db.EXPECT().FetchZoneChanges(gomock.Any(), models.ZoneChangesRequest{Zone: testZone, Since: cp("start"), DesiredKeys: keys, ResultsLimit: 2}).
			Return(models.ZoneChangesPage{
				Upserted:   []models.RemoteRecord{record("a", "1"), record("b", "1")},
				Checkpoint: cp("p1"),
				MoreComing: true,
			}, nil),
		db.EXPECT().FetchZoneChanges(gomock.Any(), models.ZoneChangesRequest{Zone: testZone, Since: cp("p1"), DesiredKeys: keys, ResultsLimit: 2}).
			Return(models.ZoneChangesPage{
				Upserted:   []models.RemoteRecord{record("c", "1")},
				Deleted:    []models.DeletedRecord{{ID: record("d", "").ID, Type: "Note"}},
				Checkpoint: cp("p2"),
			}, nil),
	)

	result, err := cs.FetchChanges(context.Background(), testZone, cp("start"), keys...)
	require.NoError(t, err)
	assert.Len(t, result.Upserted, 3)
	assert.Equal(t, []models.DeletedRecord{{ID: record("d", "").ID, Type: "Note"}}, result.Deleted)
	assert.Equal(t, cp("p2"), result.Checkpoint)
}

func TestFetchChanges_FailureMidStreamDropsEverything(t *testing.T) {
	cs, db := newMockCloudStore(t)

	gomock.InOrder(
		db.EXPECT().FetchZoneChanges(gomock.Any(), gomock.Any()).
			Return(models.ZoneChangesPage{Upserted: []models.RemoteRecord{record("a", "1")}, Checkpoint: cp("p1"), MoreComing: true}, nil),
		db.EXPECT().FetchZoneChanges(gomock.Any(), gomock.Any()).
			Return(models.ZoneChangesPage{}, adapter.NewPartialFailure(map[string]*adapter.Error{
				testZone.Key(): adapter.NewError(adapter.CodeChangeTokenExpired, ""),
			})),
	)

	result, err := cs.FetchChanges(context.Background(), testZone, nil)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Equal(t, models.PullResult{}, result)
}

func TestFetchChanges_MoreComingWithoutCheckpoint(t *testing.T) {
	cs, db := newMockCloudStore(t)
	db.EXPECT().FetchZoneChanges(gomock.Any(), gomock.Any()).
		Return(models.ZoneChangesPage{MoreComing: true}, nil)

	_, err := cs.FetchChanges(context.Background(), testZone, nil)
	assert.ErrorIs(t, err, ErrMissingCheckpoint)
	assert.ErrorIs(t, err, ErrGeneric)
}

// Applying every pull of a checkpoint chain reconstructs the same state as
// one pull from empty.
func TestFetchChanges_CheckpointChaining(t *testing.T) {
	cs, mem := newMemoryCloudStore(t, remote.Options{PageSize: 2})
	ctx := context.Background()
	session := mem.Session("acc-1")
	require.NoError(t, cs.CreateAndSubscribe(ctx, testZone))

	local := map[string]string{}
	apply := func(r models.PullResult) {
		for _, rec := range r.Upserted {
			local[rec.ID.Name] = string(rec.Fields["body"])
		}
		for _, d := range r.Deleted {
			delete(local, d.ID.Name)
		}
	}

	var since *models.ChangeCheckpoint
	rounds := []models.ModifyRecordsRequest{
		{Save: []models.RemoteRecord{record("a", "1"), record("b", "1"), record("c", "1")}},
		{Save: []models.RemoteRecord{record("b", "2")}, Delete: []models.RecordID{record("a", "").ID}},
		{Save: []models.RemoteRecord{record("a", "3"), record("d", "1"), record("e", "1")}},
		{Delete: []models.RecordID{record("c", "").ID, record("e", "").ID}},
	}
	for i, req := range rounds {
		_, err := session.ModifyRecords(ctx, req)
		require.NoError(t, err, "round %d", i)

		result, err := cs.FetchChanges(ctx, testZone, since)
		require.NoError(t, err, "round %d", i)
		require.NotNil(t, result.Checkpoint)
		apply(result)
		since = result.Checkpoint
	}

	full, err := cs.FetchChanges(ctx, testZone, nil)
	require.NoError(t, err)
	fromEmpty := map[string]string{}
	for _, rec := range full.Upserted {
		fromEmpty[rec.ID.Name] = string(rec.Fields["body"])
	}
	for _, d := range full.Deleted {
		delete(fromEmpty, d.ID.Name)
	}

	assert.Equal(t, fromEmpty, local)
	assert.Equal(t, map[string]string{"a": `"3"`, "b": `"2"`, "d": `"1"`}, local)
}

// ── PerformBatch ─────────────────────────────────────────────────────────────

func TestPerformBatch_Defaults(t *testing.T) {
	cs, db := newMockCloudStore(t)
	toSave := []models.RemoteRecord{record("a", "1")}
	toDelete := []models.RecordID{record("b", "").ID}

	db.EXPECT().ModifyRecords(gomock.Any(), models.ModifyRecordsRequest{
		Save:       toSave,
		Delete:     toDelete,
		SavePolicy: models.SavePolicyChangedKeys,
		Atomic:     true,
	}).Return(models.ModifyRecordsResult{Saved: toSave, Deleted: toDelete}, nil)

	result, err := cs.PerformBatch(context.Background(), toSave, toDelete)
	require.NoError(t, err)
	assert.Equal(t, models.PushResult{Accepted: toSave, DeletedIDs: toDelete}, result)
}

func TestPerformBatch_Options(t *testing.T) {
	cs, db := newMockCloudStore(t)

	db.EXPECT().ModifyRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResult, error) {
			assert.False(t, req.Atomic)
			assert.Equal(t, models.SavePolicyAllKeys, req.SavePolicy)
			return models.ModifyRecordsResult{}, nil
		})

	_, err := cs.PerformBatch(context.Background(), []models.RemoteRecord{record("a", "1")}, nil,
		WithAtomic(false), WithSavePolicy(models.SavePolicyAllKeys))
	require.NoError(t, err)
}

func TestPerformBatch_EmptyBatchIsNoop(t *testing.T) {
	cs, _ := newMockCloudStore(t)

	result, err := cs.PerformBatch(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PushResult{}, result)
}

func TestPerformBatch_AtomicVsNonAtomic(t *testing.T) {
	tests := []struct {
		name         string
		atomic       bool
		wantAccepted []string
	}{
		{"atomic commits nothing", true, nil},
		{"non-atomic commits the valid subset", false, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, mem := newMemoryCloudStore(t, remote.Options{})
			ctx := context.Background()
			require.NoError(t, cs.CreateAndSubscribe(ctx, testZone))

			// c is stale under IfServerRecordUnchanged
			stale := record("c", "1")
			stale.ChangeTag = "outdated"
			_, err := mem.Session("acc-1").ModifyRecords(ctx, models.ModifyRecordsRequest{Save: []models.RemoteRecord{record("c", "0")}})
			require.NoError(t, err)

			result, err := cs.PerformBatch(ctx,
				[]models.RemoteRecord{record("a", "1"), record("b", "1"), stale}, nil,
				WithAtomic(tt.atomic), WithSavePolicy(models.SavePolicyIfServerRecordUnchanged))

			var syncErr *SyncError
			require.ErrorAs(t, err, &syncErr)
			assert.Equal(t, KindServerRecordChanged, syncErr.Kind)
			assert.NotNil(t, syncErr.ServerRecord())

			var accepted []string
			for _, r := range result.Accepted {
				accepted = append(accepted, r.ID.Name)
			}
			assert.ElementsMatch(t, tt.wantAccepted, accepted)
		})
	}
}

func TestPerformBatch_CancelledBeforeSettlement(t *testing.T) {
	cs, db := newMockCloudStore(t)

	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	db.EXPECT().ModifyRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.ModifyRecordsRequest) (models.ModifyRecordsResult, error) {
			defer wg.Done()
			<-release
			return models.ModifyRecordsResult{Saved: []models.RemoteRecord{record("a", "1")}}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	result, err := cs.PerformBatch(ctx, []models.RemoteRecord{record("a", "1")}, nil, WithAtomic(false))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.PushResult{}, result)

	close(release)
	wg.Wait()
}

func TestPerformBatch_TransportError(t *testing.T) {
	cs, db := newMockCloudStore(t)
	db.EXPECT().ModifyRecords(gomock.Any(), gomock.Any()).
		Return(models.ModifyRecordsResult{}, errors.New("connection reset"))

	_, err := cs.PerformBatch(context.Background(), []models.RemoteRecord{record("a", "1")}, nil, WithAtomic(false))
	assert.ErrorIs(t, err, ErrGeneric)
}
