// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-cloud-sync binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the development account, and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings of the sync client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the reference remote store settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the sync client's view of the remote store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync describes the zone the client keeps in sync.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Logs controls where the sync client writes its log.
	Logs Logs `envPrefix:"LOGS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the local SQLite database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DevAccountID, when set, makes the reference server issue and log a
	// bearer token for this account at startup.
	// Env: APP_DEV_ACCOUNT_ID
	DevAccountID string `env:"DEV_ACCOUNT_ID"`

	// HashKey signs change tokens handed out by the reference server.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and limit settings for the reference remote store.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// QuotaRecords caps the number of live records per account. Zero means
	// unlimited.
	// Env: SERVER_QUOTA_RECORDS
	QuotaRecords int `env:"QUOTA_RECORDS"`

	// ChangeLogLimit is the number of change-log entries kept per zone
	// before older ones are compacted. Zero means unlimited.
	// Env: SERVER_CHANGE_LOG_LIMIT
	ChangeLogLimit int `env:"CHANGE_LOG_LIMIT"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "file:sync.db?_fk=1").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the sync client's connection to the remote store.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store REST API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// PushAddress is the websocket URL of the push channel. Empty derives it
	// from HTTPAddress.
	// Env: ADAPTER_PUSH_ADDRESS
	PushAddress string `env:"PUSH_ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token presented to the remote store.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Sync describes the zone kept in sync by the client.
type Sync struct {
	// ZoneName is the name of the synchronized zone.
	// Env: SYNC_ZONE_NAME
	ZoneName string `env:"ZONE_NAME"`

	// OwnerName is the zone owner. Empty means the current account.
	// Env: SYNC_OWNER_NAME
	OwnerName string `env:"OWNER_NAME"`

	// NonAtomicPush lets the remote store commit the valid subset of a batch.
	// Env: SYNC_NON_ATOMIC_PUSH
	NonAtomicPush bool `env:"NON_ATOMIC_PUSH"`

	// PageSize caps the number of changes per fetched page. Zero lets the
	// server decide.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// DesiredKeys projects pulled records to these fields.
	// Env: SYNC_DESIRED_KEYS (comma separated)
	DesiredKeys []string `env:"DESIRED_KEYS" envSeparator:","`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// QueueConcurrency bounds the number of remote operations in flight.
	// Env: WORKERS_QUEUE_CONCURRENCY
	QueueConcurrency int `env:"QUEUE_CONCURRENCY"`
}

// Logs controls the sync client's log file.
type Logs struct {
	// File is the log file path. Empty places the log next to the executable.
	// Env: LOGS_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: LOGS_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Flags are read from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
