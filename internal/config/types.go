package config

import (
	"errors"
	"iter"
	"maps"
	"os"
	"slices"
)

// Config is the persisted xatsw configuration.
type Config struct {
	// StorageDirs maps a storage name to its directory path.
	StorageDirs map[string]string `json:"storages"`
	// CurrentStorage is the name of the default storage, empty when unset.
	CurrentStorage string `json:"current_storage,omitempty"`
}

// New returns an empty configuration.
func New() *Config {
	return &Config{StorageDirs: make(map[string]string)}
}

// ConfirmFunc is asked whether an existing storage entry may be replaced.
type ConfirmFunc func(name string) (bool, error)

// Storages returns the registered (name, path) pairs in no particular order.
func (c *Config) Storages() iter.Seq2[string, string] {
	return maps.All(c.StorageDirs)
}

// Names returns the registered storage names, sorted.
func (c *Config) Names() []string {
	return slices.Sorted(maps.Keys(c.StorageDirs))
}

// Len returns the number of registered storages.
func (c *Config) Len() int {
	return len(c.StorageDirs)
}

// Lookup returns the path of the named storage.
func (c *Config) Lookup(name string) (string, bool) {
	path, ok := c.StorageDirs[name]
	return path, ok
}

// Current returns the name and path of the default storage.
// A dangling or unset default yields ErrNoStorage.
func (c *Config) Current() (string, string, error) {
	if c.CurrentStorage == "" {
		return "", "", ErrNoStorage
	}
	path, ok := c.StorageDirs[c.CurrentStorage]
	if !ok {
		return "", "", ErrNoStorage
	}
	return c.CurrentStorage, path, nil
}

// SetDefault makes name the default storage.
// The configuration is left unchanged if name is not registered.
func (c *Config) SetDefault(name string) error {
	if _, ok := c.StorageDirs[name]; !ok {
		return &StorageNotFoundError{Name: name}
	}
	c.CurrentStorage = name
	return nil
}

// Add registers path under name. The path must be an existing directory.
// When name is already registered, confirm decides whether the entry is
// replaced; a refusal or a confirm error leaves the configuration unchanged.
// The returned bool reports whether the registry was modified.
func (c *Config) Add(name, path string, confirm ConfirmFunc) (bool, error) {
	if name == "" {
		return false, errors.New("storage name cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, &NotDirectoryError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return false, &NotDirectoryError{Path: path}
	}

	if _, exists := c.StorageDirs[name]; exists {
		if confirm == nil {
			return false, nil
		}
		ok, err := confirm(name)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if c.StorageDirs == nil {
		c.StorageDirs = make(map[string]string)
	}
	c.StorageDirs[name] = path
	return true, nil
}

// Remove unregisters name and reports whether it was registered.
// Removing the default storage also clears CurrentStorage.
func (c *Config) Remove(name string) bool {
	if _, ok := c.StorageDirs[name]; !ok {
		return false
	}
	delete(c.StorageDirs, name)
	if c.CurrentStorage == name {
		c.CurrentStorage = ""
	}
	return true
}
