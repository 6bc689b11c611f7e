package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/engo-config/internal/app"
	"github.com/MKhiriev/engo-config/internal/auth"
	"github.com/MKhiriev/engo-config/internal/config"
	myHTTP "github.com/MKhiriev/engo-config/internal/handler/http"
	"github.com/MKhiriev/engo-config/internal/logger"
	"github.com/MKhiriev/engo-config/internal/server"
)

// environmentVar selects the deployment environment before any configuration
// source is read; it is deliberately outside the schema.
const environmentVar = "ENGO_ENV"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Bootstrap logger: runs at info until LOG_LEVEL is resolved.
	log := logger.New("engo-server", zerolog.InfoLevel)

	environmentName := os.Getenv(environmentVar)
	if environmentName == "" {
		environmentName = config.EnvLocal.String()
	}

	resolved, err := config.NewBuilder(environmentName).
		WithDotenvFile(".env", config.IgnoreMissing()).
		WithEnvironmentFile(".").
		WithEnviron("").
		Resolve(app.Schema())
	if err != nil {
		fatalConfig(log, err)
	}

	cfg := app.FromResolved(resolved)
	log = logger.New("engo-server", logger.ParseLevel(cfg.LogLevel))
	log.Info().
		Str("environment", cfg.Environment.String()).
		Int("port", cfg.Port).
		Msg("configuration resolved")

	tokens, err := auth.NewTokenManager(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token manager")
	}

	handler := myHTTP.NewHandler(cfg, resolved, tokens, log)

	srv, err := server.NewServer(handler.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// fatalConfig reports every aggregated configuration problem before exiting
// non-zero; a failed startup must name all broken fields, not just the first.
func fatalConfig(log *logger.Logger, err error) {
	var resolveErr *config.ResolveError
	if errors.As(err, &resolveErr) {
		for _, problem := range resolveErr.Problems() {
			log.Error().Msg(problem)
		}
	}

	log.Fatal().Err(err).Msg("error resolving configs")
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
