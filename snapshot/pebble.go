package snapshot

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/rs/zerolog"

	"github.com/Luktock/recipe-selection-system/internal/logging"
	"github.com/Luktock/recipe-selection-system/recipe"
)

// keyRangeEnd sorts after every 8-byte position key.
var keyRangeEnd = bytes.Repeat([]byte{0xff}, 9)

// pebbleLogger routes pebble's internal messages to the debug log.
type pebbleLogger struct {
	log zerolog.Logger
}

func newPebbleLogger() pebbleLogger {
	return pebbleLogger{log: logging.With().Str("component", "snapshot").Str("backend", BackendPebble).Logger()}
}

func (l pebbleLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l pebbleLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l pebbleLogger) Fatalf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
	panic(fmt.Sprintf(format, args...))
}

type pebbleStore struct {
	db *pebble.DB
}

func openPebble(dir string) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{Logger: newPebbleLogger()})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble %s: %w", dir, err)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Save(recipes []*recipe.Recipe) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	if err := batch.DeleteRange(positionKey(0), keyRangeEnd, nil); err != nil {
		return err
	}
	for i, r := range recipes {
		data, err := encode(r)
		if err != nil {
			return err
		}
		if err := batch.Set(positionKey(i), data, nil); err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

func (s *pebbleStore) Load() ([]*recipe.Recipe, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}

	recipes := []*recipe.Recipe{}
	for it.First(); it.Valid(); it.Next() {
		r, err := decode(it.Value())
		if err != nil {
			it.Close()
			return nil, err
		}
		recipes = append(recipes, r)
	}
	if err := it.Error(); err != nil {
		it.Close()
		return nil, err
	}
	return recipes, it.Close()
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
