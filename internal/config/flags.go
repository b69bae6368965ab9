package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flag.String("log", "", "Write logs to this file")
	flagJSONLog  = flag.Bool("log-json", false, "Log JSON lines instead of console text")
	flagWorkers  = flag.Int("workers", 0, "Geometry worker count")
	flagSegments = flag.Int("segments", 0, "Tube cross-section segment count")
	flagNoCache  = flag.Bool("no-cache", false, "Disable the mesh cache")
	flagWidth    = flag.Int("width", 0, "Preview width")
	flagHeight   = flag.Int("height", 0, "Preview height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagJSONLog {
		cfg.Logging.Format = "json"
	}
	if *flagWorkers > 0 {
		cfg.Geometry.Workers = *flagWorkers
	}
	if *flagSegments > 0 {
		cfg.Geometry.SegmentCount = *flagSegments
	}
	if *flagNoCache {
		cfg.Geometry.Cache = false
	}
	if *flagWidth > 0 {
		cfg.Preview.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Preview.Height = *flagHeight
	}
}
