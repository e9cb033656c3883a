package config

import (
	"os"
	"testing"
)

func TestDefaultTick(t *testing.T) {
	cfg := DefaultTick()
	if cfg.RateHz != 18 {
		t.Fatalf("RateHz = %d, want 18", cfg.RateHz)
	}
}

func TestTickFromEnvOverride(t *testing.T) {
	t.Setenv("TICK_RATE_HZ", "30")
	cfg := TickFromEnv()
	if cfg.RateHz != 30 {
		t.Fatalf("RateHz = %d, want 30 from env override", cfg.RateHz)
	}
}

func TestAssetFromEnvDefault(t *testing.T) {
	os.Unsetenv("ASSET_DATA_PATH")
	cfg := AssetFromEnv()
	if cfg.DataPath != "./assets" {
		t.Fatalf("DataPath = %q, want ./assets", cfg.DataPath)
	}
}

func TestEventLogFromEnvEnabled(t *testing.T) {
	t.Setenv("EVENT_LOG_ENABLED", "true")
	cfg := EventLogFromEnv()
	if !cfg.Enabled {
		t.Fatalf("Enabled = false, want true")
	}
}

func TestLoadAggregatesAllSections(t *testing.T) {
	cfg := Load()
	if cfg.Server.Port == 0 {
		t.Fatalf("Server.Port should have a nonzero default")
	}
	if cfg.Limits.MaxObservers == 0 {
		t.Fatalf("Limits.MaxObservers should have a nonzero default")
	}
}
