package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("slots")

// BoltSlot stores the value under a single key of a bbolt bucket, giving a
// durable embedded backend without an external server.
type BoltSlot struct {
	db *bolt.DB
}

func NewBoltSlot(path string) (*BoltSlot, error) {
	if path == "" {
		return nil, errors.New("storage: bolt path is required")
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: create bolt bucket: %w", err)
	}
	return &BoltSlot{db: db}, nil
}

func (s *BoltSlot) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket(boltBucket).Get([]byte(Key))
		if stored == nil {
			return ErrNotFound
		}
		value = append([]byte(nil), stored...)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read bolt value: %w", err)
	}
	return value, nil
}

func (s *BoltSlot) Set(ctx context.Context, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(Key), value)
	})
	if err != nil {
		return fmt.Errorf("storage: write bolt value: %w", err)
	}
	return nil
}

func (s *BoltSlot) Close() error {
	return s.db.Close()
}
