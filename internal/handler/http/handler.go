package http

import (
	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/config"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
)

// RemoteStore is the backend served by [Handler].
type RemoteStore interface {
	adapter.RecordDatabase
	adapter.AccountService
}

type Handler struct {
	store RemoteStore
	hub   *PushHub
	app   config.App

	logger *logger.Logger
}

// NewHandler returns a handler serving store. Notifications published to hub
// are fanned out to the websocket push channel.
func NewHandler(store RemoteStore, hub *PushHub, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		store:  store,
		hub:    hub,
		app:    app,
		logger: logger,
	}
}
