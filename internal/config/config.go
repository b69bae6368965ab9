// Package config handles fragtool configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all decoder and tool settings.
type Config struct {
	Decode   DecodeConfig   `yaml:"decode"`
	Geometry GeometryConfig `yaml:"geometry"`
	Preview  PreviewConfig  `yaml:"preview"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DecodeConfig holds stream decompression settings.
type DecodeConfig struct {
	ChunkSizeKB int `yaml:"chunk_size_kb"` // Inflate read chunk
}

// ChunkSize returns the inflate chunk size in bytes.
func (d DecodeConfig) ChunkSize() int {
	if d.ChunkSizeKB <= 0 {
		return 0
	}
	return d.ChunkSizeKB * 1024
}

// GeometryConfig holds mesh reconstruction settings.
type GeometryConfig struct {
	SegmentCount int  `yaml:"segment_count"` // Tube cross-section segments
	Workers      int  `yaml:"workers"`       // 0 uses one worker per CPU
	Cache        bool `yaml:"cache"`
}

// PreviewConfig holds software preview settings.
type PreviewConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Supersample int     `yaml:"supersample"`
	Yaw         float64 `yaml:"yaw"`   // Degrees around the up axis
	Pitch       float64 `yaml:"pitch"` // Degrees above the horizon
	Background  string  `yaml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"` // console or json
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			ChunkSizeKB: 1024,
		},
		Geometry: GeometryConfig{
			SegmentCount: 16,
			Workers:      0,
			Cache:        true,
		},
		Preview: PreviewConfig{
			Width:       512,
			Height:      512,
			Supersample: 2,
			Yaw:         35,
			Pitch:       30,
			Background:  "#ffffff",
		},
		Logging: LoggingConfig{
			Level:   "warn",
			Format:  "console",
			LogFile: "",
		},
	}
}

// Validate reports the first setting outside its allowed range.
func (c *Config) Validate() error {
	switch {
	case c.Decode.ChunkSizeKB < 0:
		return fmt.Errorf("%w: decode.chunk_size_kb %d is negative", ErrInvalid, c.Decode.ChunkSizeKB)
	case c.Geometry.SegmentCount != 0 && c.Geometry.SegmentCount < 3:
		return fmt.Errorf("%w: geometry.segment_count %d, need at least 3", ErrInvalid, c.Geometry.SegmentCount)
	case c.Geometry.Workers < 0:
		return fmt.Errorf("%w: geometry.workers %d is negative", ErrInvalid, c.Geometry.Workers)
	case c.Preview.Width <= 0 || c.Preview.Height <= 0:
		return fmt.Errorf("%w: preview size %dx%d", ErrInvalid, c.Preview.Width, c.Preview.Height)
	case c.Preview.Supersample < 1 || c.Preview.Supersample > 8:
		return fmt.Errorf("%w: preview.supersample %d, want 1..8", ErrInvalid, c.Preview.Supersample)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q, want console or json", ErrInvalid, c.Logging.Format)
	}
	return nil
}
