package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_ReportLimits(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Report.RateLimitRPS != 1 {
		t.Errorf("RateLimitRPS = %v, expected 1", cfg.Report.RateLimitRPS)
	}
	if cfg.Report.RateLimitBurst != 5 {
		t.Errorf("RateLimitBurst = %d, expected 5", cfg.Report.RateLimitBurst)
	}
	if cfg.Report.ScheduleCron == "" {
		t.Error("ScheduleCron should have a default")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, expected %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, expected %q", cfg.Database.Driver, "sqlite")
	}
}

func TestLoad_OmittedReportLimitsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  host: 127.0.0.1\n  port: \"9090\"\nreport:\n  schedule_cron: \"0 7 * * *\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, expected %q", cfg.Server.Port, "9090")
	}
	// Omitted limits must not produce a limiter that blocks everything.
	if cfg.Report.RateLimitRPS <= 0 {
		t.Errorf("RateLimitRPS = %v, expected positive fallback", cfg.Report.RateLimitRPS)
	}
	if cfg.Report.RateLimitBurst <= 0 {
		t.Errorf("RateLimitBurst = %d, expected positive fallback", cfg.Report.RateLimitBurst)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("Port = %q, expected env override %q", cfg.Server.Port, "7070")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected %q", cfg.Log.Level, "debug")
	}
}
