package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingZoneSync struct {
	zone  models.ZoneID
	syncs atomic.Int32
}

func (c *countingZoneSync) Zone() models.ZoneID            { return c.zone }
func (c *countingZoneSync) Provision(context.Context) error { return nil }
func (c *countingZoneSync) Pull(context.Context) (models.PullResult, error) {
	return models.PullResult{}, nil
}
func (c *countingZoneSync) Push(context.Context, []models.RemoteRecord, []models.RecordID) (models.PushResult, error) {
	return models.PushResult{}, nil
}
func (c *countingZoneSync) Sync(context.Context) error {
	c.syncs.Add(1)
	return nil
}

type jobFixture struct {
	job     SyncJob
	zone    *countingZoneSync
	center  *adapter.NotificationCenter
	monitor *AccountStatusMonitor
}

func newJobFixture(t *testing.T, script ...models.AccountStatus) jobFixture {
	t.Helper()
	center := adapter.NewNotificationCenter()
	monitor := NewAccountStatusMonitor(&scriptedAccount{script: script}, center, logger.Nop())
	t.Cleanup(monitor.Close)

	zone := &countingZoneSync{zone: testZone}
	job := NewClientSyncJob(zone, monitor, center, time.Hour, logger.Nop())
	t.Cleanup(job.Stop)

	return jobFixture{job: job, zone: zone, center: center, monitor: monitor}
}

func waitAvailability(t *testing.T, m *AccountStatusMonitor, want models.AccountAvailability) {
	t.Helper()
	require.Eventually(t, func() bool { return m.Status() == want }, time.Second, 5*time.Millisecond)
}

func TestClientSyncJob_SyncsOnStartAndZoneChange(t *testing.T) {
	f := newJobFixture(t, models.AccountStatusAvailable)
	waitAvailability(t, f.monitor, models.AccountAvailable)

	f.job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return f.zone.syncs.Load() == 1 }, time.Second, 5*time.Millisecond)

	f.center.PostZoneChanged(models.NewZoneID("other"))
	f.center.PostZoneChanged(testZone)
	require.Eventually(t, func() bool { return f.zone.syncs.Load() >= 2 }, time.Second, 5*time.Millisecond)

	f.job.Stop()
	assert.LessOrEqual(t, f.zone.syncs.Load(), int32(2))
}

func TestClientSyncJob_WaitsForAvailableAccount(t *testing.T) {
	f := newJobFixture(t, models.AccountStatusNoAccount, models.AccountStatusAvailable)
	waitAvailability(t, f.monitor, models.AccountUnavailable)

	f.job.Start(context.Background(), time.Hour)
	assert.Never(t, func() bool { return f.zone.syncs.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	f.center.PostAccountChanged()
	require.Eventually(t, func() bool { return f.zone.syncs.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestClientSyncJob_Ticks(t *testing.T) {
	f := newJobFixture(t, models.AccountStatusAvailable)
	waitAvailability(t, f.monitor, models.AccountAvailable)

	f.job.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return f.zone.syncs.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestClientSyncJob_StopUnregisters(t *testing.T) {
	f := newJobFixture(t, models.AccountStatusCouldNotDetermine)

	f.job.Start(context.Background(), time.Hour)
	f.job.Stop()
	f.job.Stop()

	f.center.PostZoneChanged(testZone)
	assert.Never(t, func() bool { return f.zone.syncs.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestClientSyncJob_RunReturnsOnCancel(t *testing.T) {
	f := newJobFixture(t, models.AccountStatusAvailable)
	waitAvailability(t, f.monitor, models.AccountAvailable)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.job.Run(ctx) }()

	require.Eventually(t, func() bool { return f.zone.syncs.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
