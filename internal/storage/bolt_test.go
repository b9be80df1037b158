package storage

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestBoltSlot_GetAbsent(t *testing.T) {
	slot, err := NewBoltSlot(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("NewBoltSlot: %v", err)
	}
	defer slot.Close()

	_, err = slot.Get(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBoltSlot_RoundTrip(t *testing.T) {
	slot, err := NewBoltSlot(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("NewBoltSlot: %v", err)
	}
	defer slot.Close()

	ctx := context.Background()
	want := []byte(`[{"id":"a","text":"x","completed":true}]`)
	if err = slot.Set(ctx, want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := slot.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(want, got) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestBoltSlot_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	ctx := context.Background()

	slot, err := NewBoltSlot(path)
	if err != nil {
		t.Fatalf("NewBoltSlot: %v", err)
	}
	if err = slot.Set(ctx, []byte("durable")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err = slot.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewBoltSlot(path)
	if err != nil {
		t.Fatalf("NewBoltSlot: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "durable" {
		t.Errorf("expected the value to survive a reopen, got %s", got)
	}
}

func TestBoltSlot_EmptyPathRejected(t *testing.T) {
	if _, err := NewBoltSlot(""); err == nil {
		t.Fatal("expected an empty path to be rejected")
	}
}
