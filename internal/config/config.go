// Package config loads and saves the pocket TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all pocket configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Policy     PolicyConfig     `toml:"policy"`
	Appearance AppearanceConfig `toml:"appearance"`
	Daemon     DaemonConfig     `toml:"daemon"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir       string `toml:"data_dir,omitempty"`
	PageSize      int    `toml:"page_size"`
	HorizonMonths int    `toml:"horizon_months"`
}

// PolicyConfig holds the budget-health thresholds as percentages.
// They are product policy, not derived values, so they are exposed
// here rather than compiled in.
type PolicyConfig struct {
	NearLimitPercent int `toml:"near_limit_percent"`
	UnderusedPercent int `toml:"underused_percent"`
	OverusedPercent  int `toml:"overused_percent"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DaemonConfig holds the local API daemon settings.
type DaemonConfig struct {
	Addr            string `toml:"addr,omitempty"`
	PollIntervalSec int    `toml:"poll_interval_sec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			PageSize:      10,
			HorizonMonths: 2,
		},
		Policy: PolicyConfig{
			NearLimitPercent: 80,
			UnderusedPercent: 30,
			OverusedPercent:  80,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Daemon: DaemonConfig{
			Addr:            "127.0.0.1:7459",
			PollIntervalSec: 60,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pocket")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pocket")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the ledger database directory: the configured
// override, or the XDG data dir.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pocket")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "pocket")
}

// LedgerPath returns the full path to the SQLite ledger.
func (c Config) LedgerPath() string {
	return filepath.Join(c.DataDir(), "ledger.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
