package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-dev-account account to issue a startup token for
//	-hash-key change token signing key
//	-quota-records per-account record quota
//	-change-log-limit per-zone change log size
//	-remote remote store base URL
//	-push-address remote push websocket URL
//	-remote-timeout outbound request timeout
//	-token bearer token
//	-d local database DSN
//	-zone zone name
//	-owner zone owner name
//	-non-atomic push without batch atomicity
//	-page-size changes per fetched page
//	-desired-keys comma separated fields to pull
//	-sync-interval background sync period
//	-queue-concurrency remote operations in flight
//	-log-file client log file path
//	-log-max-size client log rotation size in MB
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-cloud-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress  NetAddress
		requestTimeout time.Duration
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		devAccountID   string
		hashKey        string
		quotaRecords   int
		changeLogLimit int

		remoteAddress string
		pushAddress   string
		remoteTimeout time.Duration
		token         string
		databaseDSN   string

		zoneName      string
		ownerName     string
		nonAtomicPush bool
		pageSize      int
		desiredKeys   string

		syncInterval     time.Duration
		queueConcurrency int
		logFile          string
		logMaxSize       int

		jsonConfigPath string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&devAccountID, "dev-account", "", "Account to issue a startup token for")
	fs.StringVar(&hashKey, "hash-key", "", "Change token signing key")
	fs.IntVar(&quotaRecords, "quota-records", 0, "Per-account record quota")
	fs.IntVar(&changeLogLimit, "change-log-limit", 0, "Per-zone change log size")

	fs.StringVar(&remoteAddress, "remote", "", "Remote store base URL")
	fs.StringVar(&pushAddress, "push-address", "", "Remote push websocket URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Outbound request timeout")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")

	fs.StringVar(&zoneName, "zone", "", "Zone name")
	fs.StringVar(&ownerName, "owner", "", "Zone owner name")
	fs.BoolVar(&nonAtomicPush, "non-atomic", false, "Push without batch atomicity")
	fs.IntVar(&pageSize, "page-size", 0, "Changes per fetched page")
	fs.StringVar(&desiredKeys, "desired-keys", "", "Comma separated fields to pull")

	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period")
	fs.IntVar(&queueConcurrency, "queue-concurrency", 0, "Remote operations in flight")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.IntVar(&logMaxSize, "log-max-size", 0, "Client log rotation size in MB")

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			DevAccountID:  devAccountID,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			QuotaRecords:   quotaRecords,
			ChangeLogLimit: changeLogLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			PushAddress:    pushAddress,
			RequestTimeout: remoteTimeout,
			Token:          token,
		},
		Sync: Sync{
			ZoneName:      zoneName,
			OwnerName:     ownerName,
			NonAtomicPush: nonAtomicPush,
			PageSize:      pageSize,
			DesiredKeys:   splitList(desiredKeys),
		},
		Workers: Workers{
			SyncInterval:     syncInterval,
			QueueConcurrency: queueConcurrency,
		},
		Logs: Logs{
			File:      logFile,
			MaxSizeMB: logMaxSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
