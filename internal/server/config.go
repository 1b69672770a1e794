package server

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvsteiner/steiner"
)

// Config holds server configuration, optionally read from a TOML file:
//
//	addr = ":8080"
//	max_terminals = 16
//	max_table_cells = 4194304
//	solve_timeout = "10s"
type Config struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`
	// MaxTerminals caps the distinct terminals per request.
	MaxTerminals int `toml:"max_terminals"`
	// MaxTableCells caps 2^terminals·vertices, the solver's table size.
	MaxTableCells int `toml:"max_table_cells"`
	// MaxBodyBytes limits request bodies.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
	// ReadTimeout and WriteTimeout are passed to http.Server.
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	// SolveTimeout bounds one solver run.
	SolveTimeout Duration `toml:"solve_timeout"`
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses strings such as "1m30s".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		MaxTerminals:  16,
		MaxTableCells: 1 << 22,
		MaxBodyBytes:  4 << 20,
		ReadTimeout:   Duration{30 * time.Second},
		WriteTimeout:  Duration{60 * time.Second},
		SolveTimeout:  Duration{30 * time.Second},
	}
}

// LoadConfig overlays the TOML file at path on DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings the solver or http.Server cannot honor.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr is empty")
	}
	if c.MaxTerminals < 1 || c.MaxTerminals > steiner.DefaultMaxTerminals {
		return fmt.Errorf("config: max_terminals must be in [1, %d], got %d", steiner.DefaultMaxTerminals, c.MaxTerminals)
	}
	if c.MaxTableCells < 1 || c.MaxTableCells > steiner.DefaultMaxTableCells {
		return fmt.Errorf("config: max_table_cells must be in [1, %d], got %d", steiner.DefaultMaxTableCells, c.MaxTableCells)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: max_body_bytes must be positive")
	}
	if c.SolveTimeout.Duration <= 0 {
		return fmt.Errorf("config: solve_timeout must be positive")
	}

	return nil
}
