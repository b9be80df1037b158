package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSlot_GetAbsent(t *testing.T) {
	slot, err := NewFileSlot(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}

	_, err = slot.Get(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileSlot_RoundTrip(t *testing.T) {
	slot, err := NewFileSlot(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}

	want := []byte(`[{"id":"a","text":"x","completed":false}]`)
	if err = slot.Set(context.Background(), want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := slot.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(want, got) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFileSlot_SetOverwrites(t *testing.T) {
	slot, err := NewFileSlot(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}

	ctx := context.Background()
	if err = slot.Set(ctx, []byte("first")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err = slot.Set(ctx, []byte("second")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := slot.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected the newer value, got %s", got)
	}
}

func TestFileSlot_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.json")
	slot, err := NewFileSlot(path)
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}

	if err = slot.Set(context.Background(), []byte("value")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err = os.Stat(path); err != nil {
		t.Fatalf("expected the file to exist: %v", err)
	}
}

func TestFileSlot_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(filepath.Join(dir, "tasks.json"))
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err = slot.Set(ctx, []byte("value")); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("expected only the slot file, found %v", names)
	}
}

func TestFileSlot_EmptyPathRejected(t *testing.T) {
	if _, err := NewFileSlot(""); err == nil {
		t.Fatal("expected an empty path to be rejected")
	}
}
