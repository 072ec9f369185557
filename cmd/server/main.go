package main

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-sync/internal/config"
	"github.com/MKhiriev/go-cloud-sync/internal/handler"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/remote"
	"github.com/MKhiriev/go-cloud-sync/internal/server"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-cloud-sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	store := remote.NewMemoryStore(remote.Options{
		HashKey:        cfg.App.HashKey,
		QuotaRecords:   cfg.Server.QuotaRecords,
		ChangeLogLimit: cfg.Server.ChangeLogLimit,
	}, log.GetChildLogger())

	if cfg.App.DevAccountID != "" {
		token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, cfg.App.DevAccountID, cfg.App.TokenDuration, cfg.App.TokenSignKey)
		if err != nil {
			log.Fatal().Err(err).Msg("error issuing development token")
		}
		log.Info().
			Str("account_id", cfg.App.DevAccountID).
			Str("token", token.SignedString).
			Msg("development token issued")
	}

	handlers, err := handler.NewHandlers(store, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
