package localcache

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v3"

	apperrors "farmlytic/pkg/errors"
)

// Snapshot keys. Each key holds one JSON-serialized snapshot, mirroring
// the fixed browser-storage keys the dashboard clients use.
const (
	KeyRequests      = "farmlytic.requests"
	KeyConversations = "farmlytic.conversations"
	KeyInventory     = "farmlytic.inventory"
	KeyFields        = "farmlytic.fields"
)

// ErrNoSnapshot is returned when a key has never been written.
var ErrNoSnapshot = errors.New("localcache: no snapshot")

// Store is the persistent fallback cache used when the hosted backend is
// unreachable. It is read at startup and rewritten after every successful
// or locally-applied mutation.
type Store struct {
	db *badger.DB
}

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, apperrors.Internal("Failed to open local cache", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.Internal("Failed to serialize snapshot", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return apperrors.Internal("Failed to write snapshot", err)
	}
	return nil
}

func (s *Store) Get(key string, out interface{}) error {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNoSnapshot
	}
	if err != nil {
		return apperrors.Internal("Failed to read snapshot", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Internal("Failed to parse snapshot", err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return apperrors.Internal("Failed to delete snapshot", err)
	}
	return nil
}
