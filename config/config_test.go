package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("SEED_FILE", "")

	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:9000" {
		t.Errorf("unexpected default origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadSeed(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "seed.json")
	seedJSON := `{
		"tables": [{"table_number": 5, "capacity": 4}],
		"menu_items": [{"id": 1, "name": "Pizza", "price": "10.00", "category": "MAIN_COURSE"}]
	}`
	if err := os.WriteFile(seedPath, []byte(seedJSON), 0o644); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}

	cfg := &Config{SeedFile: seedPath}
	seed, err := cfg.LoadSeed()
	if err != nil {
		t.Fatalf("load seed failed: %v", err)
	}
	if len(seed.Tables) != 1 || seed.Tables[0].Number != 5 {
		t.Errorf("unexpected tables: %+v", seed.Tables)
	}
	if len(seed.MenuItems) != 1 || seed.MenuItems[0].Name != "Pizza" {
		t.Errorf("unexpected menu items: %+v", seed.MenuItems)
	}
}

func TestLoadSeed_Empty(t *testing.T) {
	cfg := &Config{}
	seed, err := cfg.LoadSeed()
	if err != nil {
		t.Fatalf("empty seed should not fail: %v", err)
	}
	if len(seed.Tables) != 0 || len(seed.MenuItems) != 0 {
		t.Errorf("expected empty seed, got %+v", seed)
	}
}

func TestLoadSeed_BadFile(t *testing.T) {
	cfg := &Config{SeedFile: filepath.Join(t.TempDir(), "missing.json")}
	if _, err := cfg.LoadSeed(); err == nil {
		t.Error("expected error for missing seed file")
	}
}
