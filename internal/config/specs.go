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

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisURL string `envconfig:"redis_url" default:"redis://localhost:6379/0"`

	// SecretsKey is the hex-encoded 256-bit key sealing tenant secrets blobs.
	SecretsKey string `envconfig:"secrets_key" required:"true"`

	SessionLifetime        time.Duration `envconfig:"session_lifetime" default:"12h"`
	SessionSlidingRefresh  bool          `envconfig:"session_sliding_refresh" default:"false"`
	ConfigCacheTTL         time.Duration `envconfig:"config_cache_ttl" default:"30s"`
	AuditQueueSize         int           `envconfig:"audit_queue_size" default:"1024"`
	AuditOrphanSweepPeriod time.Duration `envconfig:"audit_orphan_sweep_period" default:"1h"`
}
