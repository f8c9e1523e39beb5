package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Backend   BackendConfig   `yaml:"backend"`
	Places    PlacesConfig    `yaml:"places"`
	Search    SearchConfig    `yaml:"search"`
	Reviews   ReviewsConfig   `yaml:"reviews"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	DevServer DevServerConfig `yaml:"devserver"`
}

// BackendConfig holds the board/user REST backend configuration
type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// PlacesConfig holds the external places/geocoding provider configuration
type PlacesConfig struct {
	KakaoBaseURL  string `yaml:"kakao_base_url"`
	KakaoRESTKey  string `yaml:"kakao_rest_key"`
	GoogleBaseURL string `yaml:"google_base_url"`
	GoogleKey     string `yaml:"google_key"`
	Language      string `yaml:"language"`
}

// SearchConfig holds place-search thresholds and the fallback location.
// Radii are meters. Broad keyword search keeps the closest BroadLimit hits
// within BroadRadiusM; category search asks the provider for CategorySize
// hits and keeps those within CategoryRadiusM.
type SearchConfig struct {
	BroadRadiusM         float64 `yaml:"broad_radius_m"`
	BroadLimit           int     `yaml:"broad_limit"`
	CategoryQueryRadiusM float64 `yaml:"category_query_radius_m"`
	CategoryRadiusM      float64 `yaml:"category_radius_m"`
	CategorySize         int     `yaml:"category_size"`
	DefaultLat           float64 `yaml:"default_lat"`
	DefaultLng           float64 `yaml:"default_lng"`
	DefaultLabel         string  `yaml:"default_label"`
}

// ReviewsConfig holds review presentation configuration
type ReviewsConfig struct {
	PageSize int `yaml:"page_size"`
}

// SessionConfig holds the local session file location
type SessionConfig struct {
	File string `yaml:"file"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// DevServerConfig holds the in-memory development backend configuration
type DevServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	JWTSecret string `yaml:"jwt_secret"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8080"
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = 15
	}
	if c.Places.KakaoBaseURL == "" {
		c.Places.KakaoBaseURL = "https://dapi.kakao.com"
	}
	if c.Places.GoogleBaseURL == "" {
		c.Places.GoogleBaseURL = "https://maps.googleapis.com"
	}
	if c.Places.Language == "" {
		c.Places.Language = "ko"
	}
	if c.Search.BroadRadiusM <= 0 {
		c.Search.BroadRadiusM = 1500
	}
	if c.Search.BroadLimit <= 0 {
		c.Search.BroadLimit = 10
	}
	if c.Search.CategoryQueryRadiusM <= 0 {
		c.Search.CategoryQueryRadiusM = 1000
	}
	if c.Search.CategoryRadiusM <= 0 {
		c.Search.CategoryRadiusM = 550
	}
	if c.Search.CategorySize <= 0 {
		c.Search.CategorySize = 5
	}
	if c.Search.DefaultLat == 0 && c.Search.DefaultLng == 0 {
		// Seoul city hall, used when device location is unavailable.
		c.Search.DefaultLat = 37.5665
		c.Search.DefaultLng = 126.9780
	}
	if c.Search.DefaultLabel == "" {
		c.Search.DefaultLabel = "서울"
	}
	if c.Reviews.PageSize <= 0 {
		c.Reviews.PageSize = 5
	}
	if c.Session.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.Session.File = filepath.Join(home, ".singlelife", "session.json")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.DevServer.Host == "" {
		c.DevServer.Host = "127.0.0.1"
	}
	if c.DevServer.Port <= 0 {
		c.DevServer.Port = 8080
	}
	if c.DevServer.JWTSecret == "" {
		c.DevServer.JWTSecret = "dev-only-secret"
	}
}
