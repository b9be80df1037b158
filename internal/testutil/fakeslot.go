// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"sync"

	"github.com/adanyl0v/go-tasks/internal/storage"
)

// FakeSlot is an in-memory storage.Slot with error injection and write
// recording, for driving load and save paths in tests.
//
// Configure the exported fields before the slot is used; they must not be
// changed while calls are in flight.
type FakeSlot struct {
	// GetErr and SetErr, when set, fail the corresponding call.
	GetErr error
	SetErr error

	// SetHook, when set, runs at the start of Set, before anything is
	// stored; a non-nil result fails the call. Tests use it to gate an
	// in-flight save.
	SetHook func(value []byte) error

	mu     sync.Mutex
	value  []byte
	exists bool
	sets   [][]byte
}

func NewFakeSlot() *FakeSlot { return &FakeSlot{} }

// Seed stores a value directly, without recording it as a Set.
func (f *FakeSlot) Seed(value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = append([]byte(nil), value...)
	f.exists = true
}

func (f *FakeSlot) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	if !f.exists {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), f.value...), nil
}

// Set runs SetHook outside the lock so a blocking hook still allows
// concurrent Get and Sets calls.
func (f *FakeSlot) Set(ctx context.Context, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if f.SetHook != nil {
		if err := f.SetHook(value); err != nil {
			return err
		}
	}
	if f.SetErr != nil {
		return f.SetErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = append([]byte(nil), value...)
	f.exists = true
	f.sets = append(f.sets, append([]byte(nil), value...))
	return nil
}

func (f *FakeSlot) Close() error { return nil }

// Value returns the currently stored value, if any.
func (f *FakeSlot) Value() ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.exists {
		return nil, false
	}
	return append([]byte(nil), f.value...), true
}

// Sets returns every value successfully written, in order.
func (f *FakeSlot) Sets() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.sets))
	for i, v := range f.sets {
		out[i] = append([]byte(nil), v...)
	}
	return out
}
