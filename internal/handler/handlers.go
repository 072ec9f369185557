package handler

import (
	"github.com/MKhiriev/go-cloud-sync/internal/config"
	"github.com/MKhiriev/go-cloud-sync/internal/handler/http"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/remote"
)

// NotifyingStore is a remote store that publishes push notifications.
type NotifyingStore interface {
	http.RemoteStore
	OnNotify(fn remote.NotifyFunc)
}

type Handlers struct {
	HTTP *http.Handler
	Push *http.PushHub
}

func NewHandlers(store NotifyingStore, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	hub := http.NewPushHub(logger.GetChildLogger())
	store.OnNotify(hub.Notify)

	return &Handlers{
		HTTP: http.NewHandler(store, hub, cfg.App, logger),
		Push: hub,
	}, nil
}
