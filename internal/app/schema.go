// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app declares the engo backend's configuration surface: the field
// schema the resolver validates against and the typed AppConfig value the
// entry point threads into every component. Nothing here reads ambient
// state — components receive their configuration explicitly.
package app

import (
	"net/url"
	"time"

	"github.com/MKhiriev/engo-config/internal/config"
)

// Configuration field names. Components reference these constants instead of
// repeating string literals.
const (
	KeyAppPort            = "APP_PORT"
	KeyLogLevel           = "LOG_LEVEL"
	KeyDatabaseURI        = "DATABASE_URI"
	KeyDatabaseName       = "DATABASE_NAME"
	KeyJWTSecret          = "JWT_SECRET"
	KeyJWTIssuer          = "JWT_ISSUER"
	KeyJWTTTL             = "JWT_TTL"
	KeyCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	KeyRateLimitRPS       = "RATE_LIMIT_RPS"
	KeyRateLimitBurst     = "RATE_LIMIT_BURST"
	KeyRequestTimeout     = "REQUEST_TIMEOUT"
	KeyMaintenanceMode    = "MAINTENANCE_MODE"
)

// Schema declares every configuration field the backend consumes. Secrets
// and the database location have no defaults and must come from a source
// layer; everything else carries a development-friendly default.
func Schema() config.Schema {
	return config.Schema{
		KeyAppPort:      {Type: config.TypeInt, Default: "8080"},
		KeyLogLevel:     {Type: config.TypeEnum, Enum: []string{"debug", "info", "warn", "error"}, Default: "info"},
		KeyDatabaseURI:  {Type: config.TypeURL, Required: true},
		KeyDatabaseName: {Type: config.TypeString, Default: "engo"},
		KeyJWTSecret:    {Type: config.TypeString, Required: true},
		KeyJWTIssuer:    {Type: config.TypeString, Default: "engo"},
		KeyJWTTTL:       {Type: config.TypeDuration, Default: "1h"},
		// No default: an empty allow-list means CORS stays disabled.
		KeyCORSAllowedOrigins: {Type: config.TypeList},
		KeyRateLimitRPS:       {Type: config.TypeInt, Default: "50"},
		KeyRateLimitBurst:     {Type: config.TypeInt, Default: "100"},
		KeyRequestTimeout:     {Type: config.TypeDuration, Default: "30s"},
		KeyMaintenanceMode:    {Type: config.TypeBool, Default: "false"},
	}
}

// AppConfig is the backend's typed configuration value, built once from the
// resolved configuration and passed to components by the entry point. It is
// never mutated after construction.
type AppConfig struct {
	// Environment is the deployment context the configuration was resolved
	// for. Some behaviour (e.g. the debug token endpoint) is gated on it.
	Environment config.Environment

	// Port is the TCP port the HTTP server listens on.
	Port int

	// LogLevel is the validated logging level name.
	LogLevel string

	// DatabaseURI locates the backing database; credentials, if any, ride in
	// the URL userinfo and must be redacted before display.
	DatabaseURI *url.URL

	// DatabaseName is the logical database to use on the server behind
	// DatabaseURI.
	DatabaseName string

	// JWTSecret signs and verifies bearer tokens. Confidential.
	JWTSecret string

	// JWTIssuer is the "iss" claim embedded in every issued token.
	JWTIssuer string

	// JWTTTL controls how long an issued token remains valid.
	JWTTTL time.Duration

	// CORSAllowedOrigins is the exact-match origin allow-list. Empty means
	// cross-origin requests are not acknowledged at all.
	CORSAllowedOrigins []string

	// RateLimitRPS and RateLimitBurst parameterize the token-bucket limiter
	// applied to every request. RPS of zero disables limiting.
	RateLimitRPS   int
	RateLimitBurst int

	// RequestTimeout bounds the server's per-request read and write time.
	RequestTimeout time.Duration

	// MaintenanceMode makes the health endpoint report unavailability
	// without taking the process down.
	MaintenanceMode bool
}

// FromResolved builds the typed AppConfig from an already-validated resolved
// configuration. It performs no validation of its own: every field was
// coerced by the resolver against [Schema].
func FromResolved(resolved *config.Resolved) AppConfig {
	return AppConfig{
		Environment:        resolved.Environment(),
		Port:               resolved.Int(KeyAppPort),
		LogLevel:           resolved.String(KeyLogLevel),
		DatabaseURI:        resolved.URL(KeyDatabaseURI),
		DatabaseName:       resolved.String(KeyDatabaseName),
		JWTSecret:          resolved.String(KeyJWTSecret),
		JWTIssuer:          resolved.String(KeyJWTIssuer),
		JWTTTL:             resolved.Duration(KeyJWTTTL),
		CORSAllowedOrigins: resolved.List(KeyCORSAllowedOrigins),
		RateLimitRPS:       resolved.Int(KeyRateLimitRPS),
		RateLimitBurst:     resolved.Int(KeyRateLimitBurst),
		RequestTimeout:     resolved.Duration(KeyRequestTimeout),
		MaintenanceMode:    resolved.Bool(KeyMaintenanceMode),
	}
}
