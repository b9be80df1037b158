package storage

import (
	"context"
	"sync"
)

// MemorySlot keeps the value in process memory. Nothing survives a
// restart; it exists for tests and throwaway runs.
type MemorySlot struct {
	mu     sync.RWMutex
	value  []byte
	exists bool
	closed bool
}

func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

func (s *MemorySlot) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	if !s.exists {
		return nil, ErrNotFound
	}
	return append([]byte(nil), s.value...), nil
}

func (s *MemorySlot) Set(ctx context.Context, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.value = append([]byte(nil), value...)
	s.exists = true
	return nil
}

func (s *MemorySlot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
