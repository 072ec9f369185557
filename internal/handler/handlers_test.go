package handler

import (
	"testing"

	"github.com/MKhiriev/go-cloud-sync/internal/config"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/remote"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
	"github.com/MKhiriev/go-cloud-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	store := remote.NewMemoryStore(remote.Options{HashKey: "k"}, logger.Nop())
	cfg := &config.ServerConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(store, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.Push)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	store := remote.NewMemoryStore(remote.Options{HashKey: "k"}, logger.Nop())

	h, err := NewHandlers(store, &config.ServerConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// spyStore records the notify hook NewHandlers registers.
type spyStore struct {
	*remote.MemoryStore
	hooks []remote.NotifyFunc
}

func (s *spyStore) OnNotify(fn remote.NotifyFunc) {
	s.hooks = append(s.hooks, fn)
	s.MemoryStore.OnNotify(fn)
}

func TestNewHandlers_WiresPushHub(t *testing.T) {
	store := &spyStore{MemoryStore: remote.NewMemoryStore(remote.Options{HashKey: "k"}, logger.Nop())}
	cfg := &config.ServerConfig{Server: config.Server{HTTPAddress: ":8080"}}

	_, err := NewHandlers(store, cfg, logger.Nop())
	require.NoError(t, err)
	require.Len(t, store.hooks, 1)

	// the hook must tolerate accounts without connections
	store.SetAccountStatus("acc-1", models.AccountStatusRestricted)
	status, err := store.AccountStatus(utils.WithAccountID(t.Context(), "acc-1"))
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusRestricted, status)
}
