// Package config provides centralized configuration management.
// This is the SINGLE SOURCE OF TRUTH for all simulation and server settings.
//
// IMPORTANT: When changing values, only modify this file.
// All other parts of the codebase should reference these values.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// =============================================================================
// TICK CONFIGURATION
// =============================================================================

// TickConfig holds the simulation's fixed-rate tick settings.
type TickConfig struct {
	RateHz      int // Ticks per second (~18Hz to match section 4.1's 55ms tick)
	InputBuffer int // Capacity of the input ring buffer (rounded up to a power of two)
}

// DefaultTick returns the default tick configuration.
func DefaultTick() TickConfig {
	return TickConfig{
		RateHz:      18,
		InputBuffer: 4,
	}
}

// TickFromEnv returns tick configuration with environment variable overrides.
func TickFromEnv() TickConfig {
	cfg := DefaultTick()
	if hz := getEnvInt("TICK_RATE_HZ", 0); hz > 0 {
		cfg.RateHz = hz
	}
	if buf := getEnvInt("INPUT_BUFFER", 0); buf > 0 {
		cfg.InputBuffer = buf
	}
	return cfg
}

// =============================================================================
// ASSET CONFIGURATION
// =============================================================================

// AssetConfig locates the decoded level-data archive the simulation loads
// stages and sprite sheets from.
type AssetConfig struct {
	DataPath string // directory containing PT/TT2/SHP/EGA assets
}

// DefaultAsset returns the default asset configuration.
func DefaultAsset() AssetConfig {
	return AssetConfig{DataPath: "./assets"}
}

// AssetFromEnv returns asset configuration with environment variable overrides.
func AssetFromEnv() AssetConfig {
	cfg := DefaultAsset()
	if p := os.Getenv("ASSET_DATA_PATH"); p != "" {
		cfg.DataPath = p
	}
	return cfg
}

// =============================================================================
// EVENT LOG CONFIGURATION
// =============================================================================

// EventLogConfig controls the debug/replay event log.
type EventLogConfig struct {
	Enabled  bool
	FilePath string
}

// DefaultEventLog returns the default event log configuration.
func DefaultEventLog() EventLogConfig {
	return EventLogConfig{
		Enabled:  false,
		FilePath: "./sim_events.jsonl",
	}
}

// EventLogFromEnv returns event log configuration with environment overrides.
func EventLogFromEnv() EventLogConfig {
	cfg := DefaultEventLog()
	if os.Getenv("EVENT_LOG_ENABLED") == "true" {
		cfg.Enabled = true
	}
	if p := os.Getenv("EVENT_LOG_PATH"); p != "" {
		cfg.FilePath = p
	}
	return cfg
}

// =============================================================================
// SERVER CONFIGURATION
// =============================================================================

// ServerConfig holds the HTTP/WebSocket observation surface's settings.
type ServerConfig struct {
	Port        int
	MetricsPort int
}

// DefaultServer returns the default server configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Port:        8080,
		MetricsPort: 9090,
	}
}

// ServerFromEnv returns server configuration with environment variable overrides.
func ServerFromEnv() ServerConfig {
	cfg := DefaultServer()
	if p := getEnvInt("PORT", 0); p > 0 {
		cfg.Port = p
	}
	if mp := getEnvInt("METRICS_PORT", 0); mp > 0 {
		cfg.MetricsPort = mp
	}
	return cfg
}

// =============================================================================
// RESOURCE LIMITS
// =============================================================================

// ResourceLimits bounds the WebSocket observation surface against a runaway
// or malicious client; the simulation core itself has no unbounded state.
type ResourceLimits struct {
	MaxObservers      int // concurrent WebSocket snapshot subscribers
	SnapshotsPerSec   int // rate limit on snapshot broadcast
}

// DefaultLimits returns the default resource limits.
func DefaultLimits() ResourceLimits {
	return ResourceLimits{
		MaxObservers:    50,
		SnapshotsPerSec: 30,
	}
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Tick      TickConfig
	Asset     AssetConfig
	EventLog  EventLogConfig
	Server    ServerConfig
	Limits    ResourceLimits
}

// Load returns the complete configuration with environment overrides. It
// first loads a .env file from the working directory if one exists; a
// missing .env is not an error, since all settings have hardcoded defaults.
func Load() AppConfig {
	_ = godotenv.Load()

	return AppConfig{
		Tick:     TickFromEnv(),
		Asset:    AssetFromEnv(),
		EventLog: EventLogFromEnv(),
		Server:   ServerFromEnv(),
		Limits:   DefaultLimits(),
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
