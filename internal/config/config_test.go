package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test decode defaults
	if cfg.Decode.ChunkSizeKB != 1024 {
		t.Errorf("expected chunk size 1024KB, got %d", cfg.Decode.ChunkSizeKB)
	}
	if cfg.Decode.ChunkSize() != 1024*1024 {
		t.Errorf("expected chunk size 1MiB, got %d", cfg.Decode.ChunkSize())
	}

	// Test geometry defaults
	if cfg.Geometry.SegmentCount != 16 {
		t.Errorf("expected 16 segments, got %d", cfg.Geometry.SegmentCount)
	}
	if cfg.Geometry.Workers != 0 {
		t.Errorf("expected 0 workers (auto), got %d", cfg.Geometry.Workers)
	}
	if !cfg.Geometry.Cache {
		t.Error("expected cache to be enabled by default")
	}

	// Test preview defaults
	if cfg.Preview.Width != 512 || cfg.Preview.Height != 512 {
		t.Errorf("expected 512x512 preview, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Preview.Supersample != 2 {
		t.Errorf("expected supersample 2, got %d", cfg.Preview.Supersample)
	}

	// Test logging defaults
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestChunkSizeDisabled(t *testing.T) {
	d := DecodeConfig{ChunkSizeKB: -1}
	if d.ChunkSize() != 0 {
		t.Errorf("expected 0 for non-positive chunk size, got %d", d.ChunkSize())
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
decode:
  chunk_size_kb: 64

geometry:
  segment_count: 24
  workers: 4
  cache: false

preview:
  width: 1024
  height: 768
  supersample: 3
  yaw: 45
  pitch: 20
  background: "#202020"

logging:
  level: "debug"
  log_file: "fragtool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Decode.ChunkSizeKB != 64 {
		t.Errorf("expected chunk size 64, got %d", cfg.Decode.ChunkSizeKB)
	}
	if cfg.Geometry.SegmentCount != 24 {
		t.Errorf("expected 24 segments, got %d", cfg.Geometry.SegmentCount)
	}
	if cfg.Geometry.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Geometry.Workers)
	}
	if cfg.Geometry.Cache {
		t.Error("expected cache to be disabled")
	}

	if cfg.Preview.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Preview.Width)
	}
	if cfg.Preview.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Preview.Height)
	}
	if cfg.Preview.Supersample != 3 {
		t.Errorf("expected supersample 3, got %d", cfg.Preview.Supersample)
	}
	if cfg.Preview.Yaw != 45 || cfg.Preview.Pitch != 20 {
		t.Errorf("expected yaw 45 pitch 20, got %v %v", cfg.Preview.Yaw, cfg.Preview.Pitch)
	}
	if cfg.Preview.Background != "#202020" {
		t.Errorf("expected background #202020, got %s", cfg.Preview.Background)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "fragtool.log" {
		t.Errorf("expected log file 'fragtool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("geometry:\n  workers: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Unset keys keep their defaults
	if cfg.Geometry.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Geometry.Workers)
	}
	if cfg.Geometry.SegmentCount != 16 {
		t.Errorf("expected default 16 segments, got %d", cfg.Geometry.SegmentCount)
	}
	if !cfg.Geometry.Cache {
		t.Error("expected default cache setting to survive")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("preview:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config) error
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) error {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				return nil
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "log file flag",
			setup: func() {
				*flagLogFile = "/tmp/fragtool.log"
			},
			verify: func(cfg *Config) error {
				if cfg.Logging.LogFile != "/tmp/fragtool.log" {
					t.Errorf("expected log file /tmp/fragtool.log, got %s", cfg.Logging.LogFile)
				}
				return nil
			},
			teardown: func() {
				*flagLogFile = ""
			},
		},
		{
			name: "json log flag",
			setup: func() {
				*flagJSONLog = true
			},
			verify: func(cfg *Config) error {
				if cfg.Logging.Format != "json" {
					t.Errorf("expected log format 'json', got %s", cfg.Logging.Format)
				}
				return nil
			},
			teardown: func() {
				*flagJSONLog = false
			},
		},
		{
			name: "workers and segments flags",
			setup: func() {
				*flagWorkers = 8
				*flagSegments = 32
			},
			verify: func(cfg *Config) error {
				if cfg.Geometry.Workers != 8 {
					t.Errorf("expected 8 workers, got %d", cfg.Geometry.Workers)
				}
				if cfg.Geometry.SegmentCount != 32 {
					t.Errorf("expected 32 segments, got %d", cfg.Geometry.SegmentCount)
				}
				return nil
			},
			teardown: func() {
				*flagWorkers = 0
				*flagSegments = 0
			},
		},
		{
			name: "no-cache flag",
			setup: func() {
				*flagNoCache = true
			},
			verify: func(cfg *Config) error {
				if cfg.Geometry.Cache {
					t.Error("expected cache to be disabled with no-cache flag")
				}
				return nil
			},
			teardown: func() {
				*flagNoCache = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) error {
				if cfg.Preview.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Preview.Width)
				}
				if cfg.Preview.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Preview.Height)
				}
				return nil
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
preview:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Preview.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Preview.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Preview.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Preview.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Geometry.Workers = 3
	cfg.Preview.Background = "#000000"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("geometry:\n  segmnet_count: 8\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for misspelled key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty file changed defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"segments auto", func(c *Config) { c.Geometry.SegmentCount = 0 }, false},
		{"segments too few", func(c *Config) { c.Geometry.SegmentCount = 2 }, true},
		{"negative workers", func(c *Config) { c.Geometry.Workers = -1 }, true},
		{"negative chunk", func(c *Config) { c.Decode.ChunkSizeKB = -4 }, true},
		{"zero width", func(c *Config) { c.Preview.Width = 0 }, true},
		{"supersample zero", func(c *Config) { c.Preview.Supersample = 0 }, true},
		{"supersample large", func(c *Config) { c.Preview.Supersample = 16 }, true},
		{"json format", func(c *Config) { c.Logging.Format = "json" }, false},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("Validate() = %v, want ErrInvalid", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("preview:\n  supersample: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, want ErrInvalid", err)
	}
}
