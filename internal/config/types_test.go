package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yes(string) (bool, error) { return true, nil }
func no(string) (bool, error)  { return false, nil }

func TestConfig_Add(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()

	t.Run("new name is inserted", func(t *testing.T) {
		cfg := New()
		changed, err := cfg.Add("main", dir, no)
		require.NoError(t, err)
		assert.True(t, changed)

		path, ok := cfg.Lookup("main")
		assert.True(t, ok)
		assert.Equal(t, dir, path)
	})

	t.Run("existing name declined keeps prior path", func(t *testing.T) {
		cfg := New()
		_, err := cfg.Add("main", dir, nil)
		require.NoError(t, err)

		changed, err := cfg.Add("main", other, no)
		require.NoError(t, err)
		assert.False(t, changed)

		path, _ := cfg.Lookup("main")
		assert.Equal(t, dir, path)
	})

	t.Run("existing name confirmed is overwritten", func(t *testing.T) {
		cfg := New()
		_, err := cfg.Add("main", dir, nil)
		require.NoError(t, err)

		asked := ""
		changed, err := cfg.Add("main", other, func(name string) (bool, error) {
			asked = name
			return true, nil
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "main", asked)

		path, _ := cfg.Lookup("main")
		assert.Equal(t, other, path)
	})

	t.Run("confirm error aborts", func(t *testing.T) {
		cfg := New()
		_, err := cfg.Add("main", dir, nil)
		require.NoError(t, err)

		boom := errors.New("input closed")
		changed, err := cfg.Add("main", other, func(string) (bool, error) { return false, boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, changed)

		path, _ := cfg.Lookup("main")
		assert.Equal(t, dir, path)
	})

	t.Run("missing path is rejected", func(t *testing.T) {
		cfg := New()
		_, err := cfg.Add("main", filepath.Join(dir, "missing"), yes)

		var notDir *NotDirectoryError
		require.ErrorAs(t, err, &notDir)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Equal(t, 0, cfg.Len())
	})

	t.Run("file path is rejected", func(t *testing.T) {
		file := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		cfg := New()
		_, err := cfg.Add("main", file, yes)

		var notDir *NotDirectoryError
		require.ErrorAs(t, err, &notDir)
		assert.Contains(t, err.Error(), "is not a directory")
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		cfg := New()
		_, err := cfg.Add("", dir, yes)
		assert.Error(t, err)
	})

	t.Run("zero value config accepts entries", func(t *testing.T) {
		var cfg Config
		_, err := cfg.Add("main", dir, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Len())
	})
}

func TestConfig_SetDefault(t *testing.T) {
	cfg := New()
	cfg.StorageDirs["main"] = "/saves"

	require.NoError(t, cfg.SetDefault("main"))
	assert.Equal(t, "main", cfg.CurrentStorage)

	err := cfg.SetDefault("usb")
	var notFound *StorageNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "usb", notFound.Name)
	assert.Equal(t, "main", cfg.CurrentStorage)
	assert.Equal(t, map[string]string{"main": "/saves"}, cfg.StorageDirs)
}

func TestConfig_Remove(t *testing.T) {
	cfg := New()
	cfg.StorageDirs["main"] = "/saves"
	cfg.StorageDirs["usb"] = "/mnt/usb"
	cfg.CurrentStorage = "main"

	assert.True(t, cfg.Remove("usb"))
	once := map[string]string{"main": "/saves"}
	assert.Equal(t, once, cfg.StorageDirs)

	assert.False(t, cfg.Remove("usb"))
	assert.Equal(t, once, cfg.StorageDirs)
	assert.Equal(t, "main", cfg.CurrentStorage)

	t.Run("removing the default clears it", func(t *testing.T) {
		assert.True(t, cfg.Remove("main"))
		assert.Empty(t, cfg.CurrentStorage)
		_, _, err := cfg.Current()
		assert.ErrorIs(t, err, ErrNoStorage)
	})
}

func TestConfig_Current(t *testing.T) {
	cfg := New()
	_, _, err := cfg.Current()
	assert.ErrorIs(t, err, ErrNoStorage)

	cfg.StorageDirs["main"] = "/saves"
	cfg.CurrentStorage = "main"
	name, path, err := cfg.Current()
	require.NoError(t, err)
	assert.Equal(t, "main", name)
	assert.Equal(t, "/saves", path)

	// A default loaded from disk may reference an entry that no longer exists.
	cfg.CurrentStorage = "gone"
	_, _, err = cfg.Current()
	assert.ErrorIs(t, err, ErrNoStorage)
}

func TestConfig_Storages(t *testing.T) {
	cfg := New()
	cfg.StorageDirs["b"] = "/b"
	cfg.StorageDirs["a"] = "/a"

	got := map[string]string{}
	for name, path := range cfg.Storages() {
		got[name] = path
	}
	assert.Equal(t, cfg.StorageDirs, got)
	assert.Equal(t, []string{"a", "b"}, cfg.Names())
}
