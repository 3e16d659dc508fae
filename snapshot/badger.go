package snapshot

import (
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/Luktock/recipe-selection-system/recipe"
)

type badgerStore struct {
	db *badger.DB
}

func openBadger(dir string) (*badgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger %s: %w", dir, err)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Save(recipes []*recipe.Recipe) error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("failed to clear badger snapshot: %w", err)
	}

	wb := s.db.NewWriteBatch()
	for i, r := range recipes {
		data, err := encode(r)
		if err == nil {
			err = wb.Set(positionKey(i), data)
		}
		if err != nil {
			wb.Cancel()
			return err
		}
	}
	return wb.Flush()
}

func (s *badgerStore) Load() ([]*recipe.Recipe, error) {
	recipes := []*recipe.Recipe{}
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			r, err := decode(data)
			if err != nil {
				return err
			}
			recipes = append(recipes, r)
		}
		return nil
	})
	return recipes, err
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
