package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvRegion, "")
	t.Setenv(EnvBirthday, "")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.StoragePath != def.StoragePath || cfg.DefaultRegion != def.DefaultRegion || cfg.BirthdayWindowDays != def.BirthdayWindowDays {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
storage_path: /tmp/book.db
default_region: US
birthday_window_days: 14
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoragePath != "/tmp/book.db" {
		t.Errorf("StoragePath = %q", cfg.StoragePath)
	}
	if cfg.DefaultRegion != "US" {
		t.Errorf("DefaultRegion = %q", cfg.DefaultRegion)
	}
	if cfg.BirthdayWindowDays != 14 {
		t.Errorf("BirthdayWindowDays = %d", cfg.BirthdayWindowDays)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "default_region: PL\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultRegion != "PL" {
		t.Errorf("DefaultRegion = %q", cfg.DefaultRegion)
	}
	if cfg.BirthdayWindowDays != Default().BirthdayWindowDays {
		t.Errorf("BirthdayWindowDays = %d, want the default", cfg.BirthdayWindowDays)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "default_region: PL\nbirthday_window_days: 14\n")
	t.Setenv(EnvDBPath, "/tmp/env.db")
	t.Setenv(EnvRegion, "DE")
	t.Setenv(EnvBirthday, "30")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoragePath != "/tmp/env.db" {
		t.Errorf("StoragePath = %q", cfg.StoragePath)
	}
	if cfg.DefaultRegion != "DE" {
		t.Errorf("DefaultRegion = %q", cfg.DefaultRegion)
	}
	if cfg.BirthdayWindowDays != 30 {
		t.Errorf("BirthdayWindowDays = %d", cfg.BirthdayWindowDays)
	}
}

func TestEnvInvalidDaysIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBirthday, "not-a-number")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BirthdayWindowDays != Default().BirthdayWindowDays {
		t.Errorf("BirthdayWindowDays = %d, want the default", cfg.BirthdayWindowDays)
	}

	t.Setenv(EnvBirthday, "-3")
	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BirthdayWindowDays != Default().BirthdayWindowDays {
		t.Errorf("negative lookahead must be ignored, got %d", cfg.BirthdayWindowDays)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "storage_path: [this is\n  not: valid yaml\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
