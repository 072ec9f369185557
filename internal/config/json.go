package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		DevAccountID  string   `json:"dev_account_id"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		QuotaRecords   int      `json:"quota_records"`
		ChangeLogLimit int      `json:"change_log_limit"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		PushAddress    string   `json:"push_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Sync struct {
		ZoneName      string   `json:"zone_name"`
		OwnerName     string   `json:"owner_name"`
		NonAtomicPush bool     `json:"non_atomic_push"`
		PageSize      int      `json:"page_size"`
		DesiredKeys   []string `json:"desired_keys"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval     Duration `json:"sync_interval"`
		QueueConcurrency int      `json:"queue_concurrency"`
	} `json:"workers,omitempty"`

	Logs struct {
		File      string `json:"file"`
		MaxSizeMB int    `json:"max_size_mb"`
	} `json:"logs,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			DevAccountID:  jsonCfg.App.DevAccountID,
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			QuotaRecords:   jsonCfg.Server.QuotaRecords,
			ChangeLogLimit: jsonCfg.Server.ChangeLogLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			PushAddress:    jsonCfg.Adapter.PushAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Sync: Sync{
			ZoneName:      jsonCfg.Sync.ZoneName,
			OwnerName:     jsonCfg.Sync.OwnerName,
			NonAtomicPush: jsonCfg.Sync.NonAtomicPush,
			PageSize:      jsonCfg.Sync.PageSize,
			DesiredKeys:   jsonCfg.Sync.DesiredKeys,
		},
		Workers: Workers{
			SyncInterval:     time.Duration(jsonCfg.Workers.SyncInterval),
			QueueConcurrency: jsonCfg.Workers.QueueConcurrency,
		},
		Logs: Logs{
			File:      jsonCfg.Logs.File,
			MaxSizeMB: jsonCfg.Logs.MaxSizeMB,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
