package config

import (
	"errors"
	"fmt"
)

// ErrNoStorage is returned when a storage directory is needed but neither an
// explicit one was given nor a valid default is configured.
var ErrNoStorage = errors.New("no storage specified and no default storage configured")

// StorageNotFoundError indicates a storage name that is not registered.
type StorageNotFoundError struct {
	Name string
}

func (e *StorageNotFoundError) Error() string {
	return fmt.Sprintf("storage %q not found", e.Name)
}

// NotDirectoryError indicates a path that cannot be registered as a storage
// because it does not exist or is not a directory.
type NotDirectoryError struct {
	Path string
	// Err is the underlying stat error, nil when the path exists but is a file.
	Err error
}

func (e *NotDirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s is not a directory: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s is not a directory", e.Path)
}

// Unwrap returns the underlying stat error.
func (e *NotDirectoryError) Unwrap() error {
	return e.Err
}
