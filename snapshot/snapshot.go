// Package snapshot writes whole-catalog snapshot files and reads them back.
// A snapshot is an exchange artifact like the CSV export: Save replaces the
// store's previous contents and Load returns recipes in saved order.
//
// Recipes are stored under an 8-byte big-endian position key with a JSON value,
// so every backend iterates them back in order.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/Luktock/recipe-selection-system/recipe"
)

// Backend names.
const (
	BackendBbolt  = "bbolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"
)

// Backends lists every supported backend.
var Backends = []string{BackendBbolt, BackendBadger, BackendPebble}

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown snapshot backend")

// Store is a snapshot location opened on one backend.
type Store interface {
	// Save replaces the stored snapshot with recipes.
	Save(recipes []*recipe.Recipe) error
	// Load returns the stored recipes in saved order.
	Load() ([]*recipe.Recipe, error)
	Close() error
}

// Open opens or creates a store. bbolt uses path as a file, badger and pebble as a directory.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendBbolt:
		return openBbolt(path)
	case BackendBadger:
		return openBadger(path)
	case BackendPebble:
		return openPebble(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Save opens path on backend, writes recipes and closes the store.
func Save(backend, path string, recipes []*recipe.Recipe) error {
	s, err := Open(backend, path)
	if err != nil {
		return err
	}
	if err := s.Save(recipes); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}

// Load opens path on backend, reads every recipe and closes the store.
func Load(backend, path string) ([]*recipe.Recipe, error) {
	s, err := Open(backend, path)
	if err != nil {
		return nil, err
	}
	recipes, err := s.Load()
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return recipes, err
}

func positionKey(i int) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(i))
	return key[:]
}

func encode(r *recipe.Recipe) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q: %w", r.Name, err)
	}
	return data, nil
}

func decode(data []byte) (*recipe.Recipe, error) {
	r := &recipe.Recipe{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot entry: %w", err)
	}
	return r, nil
}

func ensureParent(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// dirSize sums regular file sizes below path; path may be a single file.
func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}
