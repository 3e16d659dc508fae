package snapshot

import (
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/Luktock/recipe-selection-system/recipe"
)

var bucketName = []byte("recipes")

type bboltStore struct {
	db *bbolt.DB
}

func openBbolt(path string) (*bboltStore, error) {
	if err := ensureParent(path); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt %s: %w", path, err)
	}
	return &bboltStore{db: db}, nil
}

func (s *bboltStore) Save(recipes []*recipe.Recipe) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket(bucketName)
		if err != nil {
			return err
		}
		for i, r := range recipes {
			data, err := encode(r)
			if err != nil {
				return err
			}
			if err := b.Put(positionKey(i), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *bboltStore) Load() ([]*recipe.Recipe, error) {
	recipes := []*recipe.Recipe{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			r, err := decode(v)
			if err != nil {
				return err
			}
			recipes = append(recipes, r)
			return nil
		})
	})
	return recipes, err
}

func (s *bboltStore) Close() error {
	return s.db.Close()
}
