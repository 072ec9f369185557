package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when a source leaves a value unset.
const (
	DefaultAdapterRequestTimeout = 30 * time.Second
	DefaultSyncInterval          = 5 * time.Minute
	DefaultQueueConcurrency      = 4
	DefaultLogMaxSizeMB          = 10
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported in the startup log line.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote store base URL.
	HTTPAddress string
	// PushAddress is the push channel websocket URL.
	PushAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token presented to the remote store.
	Token string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync describes the synchronized zone.
type ClientSync struct {
	ZoneName      string
	OwnerName     string
	NonAtomicPush bool
	PageSize      int
	DesiredKeys   []string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration
	// QueueConcurrency bounds the number of remote operations in flight.
	QueueConcurrency int
}

// ClientLogs controls the client's rotating log file.
type ClientLogs struct {
	File      string
	MaxSizeMB int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Workers ClientWorkers
	Logs    ClientLogs
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to the client view and applies defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			PushAddress:    cfg.Adapter.PushAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			ZoneName:      cfg.Sync.ZoneName,
			OwnerName:     cfg.Sync.OwnerName,
			NonAtomicPush: cfg.Sync.NonAtomicPush,
			PageSize:      cfg.Sync.PageSize,
			DesiredKeys:   cfg.Sync.DesiredKeys,
		},
		Workers: ClientWorkers{
			SyncInterval:     cfg.Workers.SyncInterval,
			QueueConcurrency: cfg.Workers.QueueConcurrency,
		},
		Logs: ClientLogs{
			File:      cfg.Logs.File,
			MaxSizeMB: cfg.Logs.MaxSizeMB,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultAdapterRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if clientCfg.Workers.QueueConcurrency == 0 {
		clientCfg.Workers.QueueConcurrency = DefaultQueueConcurrency
	}
	if clientCfg.Logs.MaxSizeMB == 0 {
		clientCfg.Logs.MaxSizeMB = DefaultLogMaxSizeMB
	}

	return clientCfg
}
