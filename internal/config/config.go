// Package config loads grnascan defaults from a YAML file, a .env file and
// GRNASCAN_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when --config is not given; a missing file is fine.
const DefaultPath = "grnascan.yaml"

// Config mirrors the CLI flags that make sense to pin per project.
type Config struct {
	Guide     GuideConfig     `yaml:"guide"`
	OffTarget OffTargetConfig `yaml:"off_target"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Store     StoreConfig     `yaml:"store"`
}

// GuideConfig configures candidate generation and filtering.
type GuideConfig struct {
	PAM              string  `yaml:"pam"`
	Size             int     `yaml:"size"`
	ExclusionPattern string  `yaml:"exclusion_pattern"`
	InclusionPattern string  `yaml:"inclusion_pattern"`
	GCMin            float64 `yaml:"gc_min"`
	GCMax            float64 `yaml:"gc_max"`
}

// OffTargetConfig configures the reference scan.
type OffTargetConfig struct {
	Enabled     bool `yaml:"enabled"`
	GapOpen     int  `yaml:"gap_open"`
	GapExtend   int  `yaml:"gap_extend"`
	MinMismatch int  `yaml:"min_mismatch"`
	Threads     int  `yaml:"threads"`
}

type OutputConfig struct {
	Format          string `yaml:"format"`
	NoHeader        bool   `yaml:"no_header"`
	NoMatchExitCode int    `yaml:"no_match_exit_code"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Guide: GuideConfig{
			PAM:   "NGG",
			Size:  20,
			GCMin: 0,
			GCMax: 100,
		},
		OffTarget: OffTargetConfig{
			GapOpen:     -5,
			GapExtend:   -1,
			MinMismatch: 3,
			Threads:     1,
		},
		Output: OutputConfig{
			Format:          "text",
			NoMatchExitCode: 1,
		},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment without
// overwriting variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// applyEnvOverrides applies GRNASCAN_* variables.
func (c *Config) applyEnvOverrides() error {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	var firstErr error
	num := func(key string, dst *int) {
		v := os.Getenv(key)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: invalid integer %q", key, v)
			}
			return
		}
		*dst = n
	}
	float := func(key string, dst *float64) {
		v := os.Getenv(key)
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: invalid number %q", key, v)
			}
			return
		}
		*dst = f
	}

	str("GRNASCAN_PAM", &c.Guide.PAM)
	num("GRNASCAN_GUIDE_SIZE", &c.Guide.Size)
	str("GRNASCAN_EXCLUSION_PATTERN", &c.Guide.ExclusionPattern)
	str("GRNASCAN_INCLUSION_PATTERN", &c.Guide.InclusionPattern)
	float("GRNASCAN_GC_MIN", &c.Guide.GCMin)
	float("GRNASCAN_GC_MAX", &c.Guide.GCMax)
	num("GRNASCAN_GAP_OPEN", &c.OffTarget.GapOpen)
	num("GRNASCAN_GAP_EXTEND", &c.OffTarget.GapExtend)
	num("GRNASCAN_MIN_MISMATCH", &c.OffTarget.MinMismatch)
	num("GRNASCAN_THREADS", &c.OffTarget.Threads)
	str("GRNASCAN_OUTPUT", &c.Output.Format)
	str("GRNASCAN_LOG_LEVEL", &c.Logging.Level)
	str("GRNASCAN_LOG_FILE", &c.Logging.File)
	str("GRNASCAN_DB", &c.Store.Path)
	return firstErr
}
