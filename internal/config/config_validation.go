// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the invariants shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.PageSize < 0 {
		return fmt.Errorf("%w: negative page size", ErrInvalidSyncConfigs)
	}
	if cfg.Workers.QueueConcurrency < 0 {
		return fmt.Errorf("%w: negative queue concurrency", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.ZoneName == "" {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.QueueConcurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.QuotaRecords < 0 || cfg.Server.ChangeLogLimit < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
