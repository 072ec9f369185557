package config

import (
	"fmt"
	"time"
)

// Defaults applied to the server view.
const (
	DefaultServerAddress        = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultTokenIssuer          = "go-cloud-sync"
	DefaultTokenDuration        = 24 * time.Hour
)

// ServerConfig is the reference remote store configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App    App
	Server Server
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg to the server view and applies defaults.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{App: cfg.App, Server: cfg.Server}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = DefaultTokenDuration
	}
	if serverCfg.App.HashKey == "" {
		serverCfg.App.HashKey = serverCfg.App.TokenSignKey
	}

	return serverCfg
}
