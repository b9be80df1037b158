package storage

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSSlot stores the value under a single key of a JetStream key-value
// bucket. The connection is owned by the slot and closed with it.
type NATSSlot struct {
	conn   *nats.Conn
	kv     jetstream.KeyValue
	closed atomic.Bool
}

func NewNATSSlot(ctx context.Context, url, bucket string) (*NATSSlot, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("storage: connect to nats: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("storage: create jetstream context: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:  bucket,
		History: 1,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("storage: create kv bucket: %w", err)
	}

	return &NATSSlot{conn: conn, kv: kv}, nil
}

func (s *NATSSlot) Get(ctx context.Context) ([]byte, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	entry, err := s.kv.Get(ctx, Key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: kv get: %w", err)
	}
	return entry.Value(), nil
}

func (s *NATSSlot) Set(ctx context.Context, value []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}

	if _, err := s.kv.Put(ctx, Key, value); err != nil {
		return fmt.Errorf("storage: kv put: %w", err)
	}
	return nil
}

func (s *NATSSlot) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.conn.Close()
	return nil
}
