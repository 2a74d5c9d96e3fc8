package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment overrides
const (
	EnvConfig   = "CLUBHUB_CONFIG"
	EnvDB       = "CLUBHUB_DB"
	EnvCatalog  = "CLUBHUB_CATALOG"
	EnvLogLevel = "CLUBHUB_LOG_LEVEL"
)

const (
	DefaultLookahead    = 5
	DefaultVisibleCount = 3
	DefaultBatchSize    = 10
	DefaultLogLevel     = "info"
)

// Config holds clubhub settings
type Config struct {
	DBPath       string `toml:"db_path"`
	CatalogPath  string `toml:"catalog_path"`
	Lookahead    int    `toml:"lookahead"`
	VisibleCount int    `toml:"visible_count"`
	BatchSize    int    `toml:"batch_size"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		DBPath:       filepath.Join(dataHome(), "clubhub", "deck.db"),
		Lookahead:    DefaultLookahead,
		VisibleCount: DefaultVisibleCount,
		BatchSize:    DefaultBatchSize,
		LogLevel:     DefaultLogLevel,
		LogFile:      filepath.Join(stateHome(), "clubhub", "clubhub.log"),
	}
}

// Path returns the config file location from CLUBHUB_CONFIG,
// falling back to the XDG config directory.
func Path() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return filepath.Join(configHome(), "clubhub", "config.toml")
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		resolved, err := ExpandHome(path)
		if err != nil {
			return Config{}, err
		}
		if _, err := toml.DecodeFile(resolved, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", resolved, err)
		}
	}

	applyEnv(&cfg)

	var err error
	if cfg.DBPath, err = ExpandHome(cfg.DBPath); err != nil {
		return Config{}, err
	}
	if cfg.CatalogPath, err = ExpandHome(cfg.CatalogPath); err != nil {
		return Config{}, err
	}
	if cfg.LogFile, err = ExpandHome(cfg.LogFile); err != nil {
		return Config{}, err
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the numeric settings
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.DBPath) == "" {
		return fmt.Errorf("config missing db_path")
	}
	if cfg.Lookahead < 1 {
		return fmt.Errorf("lookahead must be at least 1, got %d", cfg.Lookahead)
	}
	if cfg.VisibleCount < 1 {
		return fmt.Errorf("visible_count must be at least 1, got %d", cfg.VisibleCount)
	}
	if cfg.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1, got %d", cfg.BatchSize)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if env := os.Getenv(EnvDB); env != "" {
		cfg.DBPath = env
	}
	if env := os.Getenv(EnvCatalog); env != "" {
		cfg.CatalogPath = env
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		cfg.LogLevel = env
	}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

func xdg(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(append([]string{home}, fallback...)...)
}

func configHome() string { return xdg("XDG_CONFIG_HOME", ".config") }
func dataHome() string   { return xdg("XDG_DATA_HOME", ".local", "share") }
func stateHome() string  { return xdg("XDG_STATE_HOME", ".local", "state") }
