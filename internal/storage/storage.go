package storage

import (
	"context"
	"errors"
)

// Key is the name of the durable slot holding the serialized task list.
// Every backend reads and writes exactly this one key.
const Key = "tasks"

// Driver names accepted by the STORAGE_DRIVER setting.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
	DriverNATS     = "nats"
	DriverMemory   = "memory"
)

var (
	// ErrNotFound is returned by Get when the slot holds no value yet.
	ErrNotFound = errors.New("storage: value not found")

	// ErrClosed is returned when the slot is used after Close.
	ErrClosed = errors.New("storage: slot is closed")
)

// Slot is a single named location in durable storage. Set overwrites the
// whole value; there are no partial updates.
type Slot interface {
	// Get returns the current value, or ErrNotFound if none was ever set.
	Get(ctx context.Context) ([]byte, error)

	// Set replaces the current value.
	Set(ctx context.Context, value []byte) error

	// Close releases the resources owned by the slot.
	Close() error
}
