package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"xatsw/pkg/logging"
)

const (
	// DefaultFileName is the configuration file looked up in the working directory.
	DefaultFileName = "xatsw.conf"
	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "XATSW_CONFIG"

	filePermission = 0644
)

// Store reads and writes the configuration file.
type Store struct {
	path string
}

// NewStore creates a Store for the file at path. An empty path selects
// DefaultFileName in the working directory.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// DefaultPath returns the configuration path honouring EnvConfigPath.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultFileName
}

// Path returns the location of the configuration file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration file. It never fails: when the file is
// missing, unreadable or malformed the problem is logged and an empty
// configuration is returned.
func (s *Store) Load() *Config {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No configuration at %s, starting empty", s.path)
		} else {
			logging.WarnErr("Config", err, "Failed to read configuration %s, starting empty", s.path)
		}
		return New()
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		logging.WarnErr("Config", err, "Failed to parse configuration %s, starting empty", s.path)
		return New()
	}
	if cfg.StorageDirs == nil {
		cfg.StorageDirs = make(map[string]string)
	}

	logging.Debug("Config", "Loaded %d storages from %s", len(cfg.StorageDirs), s.path)
	return cfg
}

// Save writes cfg to the configuration file, replacing its contents.
func (s *Store) Save(cfg *Config) error {
	if cfg.StorageDirs == nil {
		cfg.StorageDirs = make(map[string]string)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, filePermission); err != nil {
		return fmt.Errorf("failed to write configuration %s: %w", s.path, err)
	}

	logging.Debug("Config", "Saved %d storages to %s", len(cfg.StorageDirs), s.path)
	return nil
}
