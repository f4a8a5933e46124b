// Package config holds the runtime settings of the sheep-lca command: the
// coefficient country, the urea CO2 formula, batch parallelism and logging.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/sheep-lca/internal/coefficients"
	"github.com/rshade/sheep-lca/internal/lca"
)

// Environment variables read by ApplyEnv.
const (
	EnvCountry       = "SHEEP_LCA_COUNTRY"
	EnvUreaCO2Method = "SHEEP_LCA_UREA_CO2_METHOD"
	EnvWorkers       = "SHEEP_LCA_WORKERS"
	EnvLogLevel      = "SHEEP_LCA_LOG_LEVEL"
	EnvTablesDir     = "SHEEP_LCA_TABLES_DIR"
)

// DefaultCountry is the coefficient set used when none is configured.
const DefaultCountry = "ireland"

// Config is the command configuration.
type Config struct {
	// Country selects the coefficient tables.
	Country string `yaml:"country"`

	// UreaCO2Method selects the urea hydrolysis formula.
	UreaCO2Method lca.UreaCO2Method `yaml:"urea_co2_method"`

	// Workers bounds the number of farms evaluated at once.
	Workers int `yaml:"workers"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`

	// TablesDir, when set, holds <country>/ directories that replace the
	// embedded coefficient tables.
	TablesDir string `yaml:"tables_dir"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Country:       DefaultCountry,
		UreaCO2Method: lca.UreaCO2Inventory,
		Workers:       runtime.GOMAXPROCS(0),
		LogLevel:      zerolog.LevelInfoValue,
	}
}

// Decode reads a YAML configuration on top of the defaults. Unknown keys are
// rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Load reads the YAML file at path, or returns the defaults when path is
// empty, then applies environment overrides.
func Load(path string, logger zerolog.Logger) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if cfg, err = Decode(f); err != nil {
			return Config{}, err
		}
	}
	cfg.ApplyEnv(logger)
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from the environment. Invalid values are logged
// and the current value is kept.
func (c *Config) ApplyEnv(logger zerolog.Logger) {
	if v := strings.TrimSpace(os.Getenv(EnvCountry)); v != "" {
		c.Country = strings.ToLower(v)
	}

	if v := os.Getenv(EnvUreaCO2Method); v != "" {
		if m, err := lca.ParseUreaCO2Method(strings.ToLower(strings.TrimSpace(v))); err == nil {
			c.UreaCO2Method = m
		} else {
			logger.Warn().Str("value", v).Msg("invalid " + EnvUreaCO2Method + ", using default")
		}
	}

	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Workers = n
		} else {
			logger.Warn().Str("value", v).Msg("invalid " + EnvWorkers + ", using default")
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			c.LogLevel = strings.ToLower(v)
		} else {
			logger.Warn().Str("value", v).Msg("invalid " + EnvLogLevel + ", using default")
		}
	}

	if v := os.Getenv(EnvTablesDir); v != "" {
		c.TablesDir = v
	}

	logger.Debug().
		Str("country", c.Country).
		Str("urea_co2_method", string(c.UreaCO2Method)).
		Int("workers", c.Workers).
		Str("tables_dir", c.TablesDir).
		Msg("configuration applied")
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Country == "" {
		return fmt.Errorf("country is required")
	}
	if _, err := lca.ParseUreaCO2Method(string(c.UreaCO2Method)); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the configured zerolog level.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Provider loads the configured coefficient tables, from TablesDir when set
// and from the embedded tables otherwise.
func (c Config) Provider() (*coefficients.Provider, error) {
	if c.TablesDir == "" {
		return coefficients.Load(c.Country)
	}
	return coefficients.LoadFS(os.DirFS(filepath.Join(c.TablesDir, c.Country)), c.Country)
}
