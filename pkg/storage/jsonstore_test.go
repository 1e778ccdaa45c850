package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testDoc struct {
	Items []string `json:"items"`
}

func TestStore_LoadServesFromCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	if err := os.WriteFile(path, []byte(`{"items":["a"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(dir, time.Minute)

	var doc testDoc
	if err := store.Load("items.json", &doc); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Overwrite the file behind the store's back; a cached read still sees
	// the old content until the entry expires or is invalidated.
	if err := os.WriteFile(path, []byte(`{"items":["a","b"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var cached testDoc
	if err := store.Load("items.json", &cached); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cached.Items) != 1 {
		t.Fatalf("cached read returned %d items, want 1", len(cached.Items))
	}
}

func TestStore_SaveInvalidatesCacheAndPersists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "items.json"), []byte(`{"items":["a"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(dir, time.Minute)

	var doc testDoc
	if err := store.Load("items.json", &doc); err != nil {
		t.Fatalf("Load: %v", err)
	}

	doc.Items = append(doc.Items, "b")
	if err := store.Save("items.json", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var after testDoc
	if err := store.Load("items.json", &after); err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if len(after.Items) != 2 {
		t.Fatalf("items = %v, want 2 entries", after.Items)
	}

	// And the bytes on disk match, not just the cache.
	fresh := NewStore(dir, time.Minute)
	var onDisk testDoc
	if err := fresh.Load("items.json", &onDisk); err != nil {
		t.Fatalf("fresh Load: %v", err)
	}
	if len(onDisk.Items) != 2 {
		t.Fatalf("persisted items = %v, want 2 entries", onDisk.Items)
	}
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, time.Minute)

	if err := store.Save("items.json", testDoc{Items: []string{"a"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "items.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir contents = %v, want only items.json", names)
	}
}
