package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backend.BaseURL != "http://localhost:8080" {
		t.Errorf("backend base url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.TimeoutSeconds != 15 {
		t.Errorf("backend timeout = %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.Search.BroadRadiusM != 1500 || cfg.Search.BroadLimit != 10 {
		t.Errorf("broad search = %v / %d", cfg.Search.BroadRadiusM, cfg.Search.BroadLimit)
	}
	if cfg.Search.CategoryQueryRadiusM != 1000 || cfg.Search.CategoryRadiusM != 550 || cfg.Search.CategorySize != 5 {
		t.Errorf("category search = %v / %v / %d",
			cfg.Search.CategoryQueryRadiusM, cfg.Search.CategoryRadiusM, cfg.Search.CategorySize)
	}
	if cfg.Search.DefaultLat != 37.5665 || cfg.Search.DefaultLng != 126.9780 || cfg.Search.DefaultLabel != "서울" {
		t.Errorf("default location = %v, %v %q",
			cfg.Search.DefaultLat, cfg.Search.DefaultLng, cfg.Search.DefaultLabel)
	}
	if cfg.Reviews.PageSize != 5 {
		t.Errorf("review page size = %d", cfg.Reviews.PageSize)
	}
	if cfg.Session.File == "" {
		t.Error("session file path empty")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := `
backend:
  base_url: https://api.example.com
search:
  broad_radius_m: 2000
  default_label: 부산
reviews:
  page_size: 10
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Backend.BaseURL != "https://api.example.com" {
		t.Errorf("backend base url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Search.BroadRadiusM != 2000 || cfg.Search.DefaultLabel != "부산" {
		t.Errorf("search overrides not applied: %+v", cfg.Search)
	}
	if cfg.Reviews.PageSize != 10 || cfg.Log.Level != "debug" {
		t.Errorf("overrides not applied: %d %q", cfg.Reviews.PageSize, cfg.Log.Level)
	}

	// Unset fields still get the defaults.
	if cfg.Search.CategoryRadiusM != 550 {
		t.Errorf("category radius = %v, want default", cfg.Search.CategoryRadiusM)
	}
	if cfg.Backend.TimeoutSeconds != 15 {
		t.Errorf("backend timeout = %d, want default", cfg.Backend.TimeoutSeconds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist in the chain", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend: ["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
