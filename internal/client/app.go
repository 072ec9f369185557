package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/config"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/service"
	"github.com/MKhiriev/go-cloud-sync/internal/store"
	"github.com/MKhiriev/go-cloud-sync/internal/workers"
)

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	push     *adapter.PushListener
	logger   *logger.Logger
}

// NewApp opens local storage and wires the sync services for cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, log.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return newApp(remote, storages, cfg, log)
}

func newApp(remote adapter.RemoteAdapter, storages *store.ClientStorages, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	center := adapter.NewNotificationCenter()

	push, err := adapter.NewPushListener(cfg.Adapter.PushAddress, cfg.Adapter.HTTPAddress, remote, center, log.GetChildLogger())
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create push listener: %w", err)
	}

	return &App{
		services: service.NewClientServices(remote, storages, center, cfg, log),
		storages: storages,
		push:     push,
		logger:   log,
	}, nil
}

// Services exposes the wired sync services to embedding code.
func (a *App) Services() *service.ClientServices { return a.services }

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("zone", a.services.ZoneSync.Zone().Key()).
		Str("push_url", a.push.URL()).
		Msg("sync client started")

	err := workers.New(a.services.SyncJob, a.push).Run(ctx)

	a.logger.Info().Msg("sync client stopped")
	return err
}

func (a *App) Close() error {
	a.services.Close()
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	return nil
}

var _ Client = (*App)(nil)
