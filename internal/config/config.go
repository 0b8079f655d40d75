// Package config loads server and CLI settings from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
)

// Catalog sources
const (
	SourceFilesystem = "filesystem"
	SourceRedis      = "redis"
)

// EnvironmentProduction switches logging to JSON
const EnvironmentProduction = "production"

// Config holds runtime settings
type Config struct {
	// CatalogRoot is the content directory for the filesystem source
	CatalogRoot string
	// CatalogSource is filesystem or redis
	CatalogSource  string
	RedisAddr      string
	RedisKeyPrefix string
	GRPCPort       int
	Environment    string
	LogLevel       slog.Level
	// RNGSeed seeds a deterministic roller when non-zero
	RNGSeed uint64
	// Preload loads every catalog at startup
	Preload bool
}

// Load reads the environment, falling back to defaults
func Load() *Config {
	return &Config{
		CatalogRoot:    getEnv("CATALOG_ROOT", "data"),
		CatalogSource:  strings.ToLower(getEnv("CATALOG_SOURCE", SourceFilesystem)),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "catalog:"),
		GRPCPort:       getEnvInt("GRPC_PORT", 50052),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       ParseLogLevel(getEnv("LOG_LEVEL", "info")),
		RNGSeed:        getEnvUint("RNG_SEED", 0),
		Preload:        getEnvBool("CATALOG_PRELOAD", false),
	}
}

// Validate checks the settings needed by the chosen source
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("CatalogSource", c.CatalogSource, []string{SourceFilesystem, SourceRedis}, vb)
	switch c.CatalogSource {
	case SourceFilesystem:
		errors.ValidateRequired("CatalogRoot", c.CatalogRoot, vb)
	case SourceRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}
	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	return vb.Build()
}

// ParseLogLevel maps a level name to a slog level. Unknown names are info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value, err := strconv.ParseUint(os.Getenv(key), 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
