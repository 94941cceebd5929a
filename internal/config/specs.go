// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	TracingSampleRatio float64 `envconfig:"tracing_sample_ratio" default:"1"`

	KratosAdminURL       string `envconfig:"kratos_admin_url" required:"true"`
	KratosIdentitySchema string `envconfig:"kratos_identity_schema" default:"default"`
	RecoveryLinkLifetime string `envconfig:"recovery_link_lifetime" default:"24h"`

	LogLevel string `envconfig:"log_level" default:"error"`
	LogFile  string `envconfig:"log_file"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port     int `envconfig:"port" default:"8080"`
	GRPCPort int `envconfig:"grpc_port" default:"50051"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
	DBTxTimeout       time.Duration `envconfig:"db_tx_timeout" default:"1m"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	OIDCJWKSURL           string   `envconfig:"oidc_jwks_url"`
	OIDCAllowedSubjects   []string `envconfig:"oidc_allowed_subjects"`
	OIDCRequiredScope     string   `envconfig:"oidc_required_scope"`

	RedisURL        string `envconfig:"redis_url"`
	RateLimitPerMin int    `envconfig:"rate_limit_per_minute" default:"300"`

	FileURLSecret   string `envconfig:"file_url_secret" required:"true"`
	PublicBaseURL   string `envconfig:"public_base_url" default:"http://localhost:8080"`
	MaxUploadBytes  int64  `envconfig:"max_upload_bytes" default:"10485760"`
	DefaultLanguage string `envconfig:"default_language" default:"ar"`

	JobsEnabled           bool          `envconfig:"jobs_enabled" default:"true"`
	PrintMonitorInterval  time.Duration `envconfig:"print_monitor_interval" default:"5m"`
	PrintStuckThreshold   time.Duration `envconfig:"print_stuck_threshold" default:"10m"`
	PrintCleanupHourUTC   int           `envconfig:"print_cleanup_hour_utc" default:"2"`
	PrintCleanupRetention time.Duration `envconfig:"print_cleanup_retention" default:"720h"`
}
