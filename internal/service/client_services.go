package service

import (
	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/config"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/store"
	"github.com/MKhiriev/go-cloud-sync/internal/workers"
	"github.com/MKhiriev/go-cloud-sync/models"
)

// Notifier delivers both account-changed and zone-changed signals, as
// [adapter.NotificationCenter] does.
type Notifier interface {
	AccountChangeNotifier
	ZoneChangeNotifier
}

type ClientServices struct {
	CloudStore     CloudStore
	AccountMonitor *AccountStatusMonitor
	ZoneSync       ZoneSync
	SyncJob        SyncJob

	queue *workers.Queue
}

func NewClientServices(
	remote adapter.RemoteAdapter,
	storages *store.ClientStorages,
	notifier Notifier,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	queue := workers.NewQueue(cfg.Workers.QueueConcurrency, log.GetChildLogger())
	cloud := NewCloudStore(remote, queue, cfg.Sync.PageSize, log)
	monitor := NewAccountStatusMonitor(remote, notifier, log)

	zoneSync := NewZoneSynchronizer(cloud, storages, monitor, ZoneSyncOptions{
		Zone:          models.ZoneID{Name: cfg.Sync.ZoneName, OwnerName: cfg.Sync.OwnerName},
		DesiredKeys:   fieldKeys(cfg.Sync.DesiredKeys),
		NonAtomicPush: cfg.Sync.NonAtomicPush,
	}, log)

	return &ClientServices{
		CloudStore:     cloud,
		AccountMonitor: monitor,
		ZoneSync:       zoneSync,
		SyncJob:        NewClientSyncJob(zoneSync, monitor, notifier, cfg.Workers.SyncInterval, log),
		queue:          queue,
	}
}

// Close stops the background job, the monitor and the operation queue.
func (s *ClientServices) Close() {
	s.SyncJob.Stop()
	s.AccountMonitor.Close()
	s.queue.Close()
}

func fieldKeys(keys []string) []models.FieldKey {
	if len(keys) == 0 {
		return nil
	}
	out := make([]models.FieldKey, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.FieldKey(k))
	}
	return out
}
