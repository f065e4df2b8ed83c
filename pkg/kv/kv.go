// Package kv persists small named JSON blobs for the client: one bbolt file on disk, or a map
// in memory for tests.
package kv

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const Bucket = "storefront"

// Repository is a single named entry. Load returns nil when nothing is stored.
type Repository interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Delete() error
}

type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(Bucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Key(name string) Repository {
	return &boltRepository{db: s.db, key: []byte(name)}
}

type boltRepository struct {
	db  *bolt.DB
	key []byte
}

func (r *boltRepository) Load() ([]byte, error) {
	var out []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(Bucket)).Get(r.key); v != nil {
			// bbolt values are only valid inside the transaction
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

func (r *boltRepository) Save(data []byte) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(Bucket)).Put(r.key, data)
	})
}

func (r *boltRepository) Delete() error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(Bucket)).Delete(r.key)
	})
}

type memoryRepository struct {
	mu   sync.Mutex
	data []byte
}

func NewMemory() Repository {
	return &memoryRepository{}
}

func (m *memoryRepository) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

func (m *memoryRepository) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memoryRepository) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}
