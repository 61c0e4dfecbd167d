package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	in := []record{{Name: "a", Tags: []string{"x", "y"}, Count: 2}}
	store.Save("test-key", in)

	var out []record
	store.Load("test-key", &out, []record{})
	if len(out) != 1 || out[0].Name != "a" || len(out[0].Tags) != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	// mutating the loaded value must not affect a later load
	out[0].Name = "mutated"
	var again []record
	store.Load("test-key", &again, []record{})
	if again[0].Name != "a" {
		t.Fatalf("loaded value aliased the stored one")
	}
}

func TestStoreFallback(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	fallback := []record{{Name: "seed"}}
	var out []record
	store.Load("absent", &out, fallback)
	if len(out) != 1 || out[0].Name != "seed" {
		t.Fatalf("expected fallback, got %+v", out)
	}

	// the caller's copy must be independent of the fallback value
	out[0].Name = "changed"
	if fallback[0].Name != "seed" {
		t.Fatalf("fallback was aliased")
	}
}

func TestStoreCorruptDocument(t *testing.T) {
	backend := NewMemoryBackend()
	if err := backend.Set(context.Background(), "bad", []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	store := NewStore(backend)
	var out []record
	store.Load("bad", &out, []record{{Name: "seed"}})
	if len(out) != 1 || out[0].Name != "seed" {
		t.Fatalf("expected fallback on corrupt document, got %+v", out)
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	store := NewStore(backend)
	store.Save(KeyCompare, []string{"sf90", "ghost"})

	if _, err := os.Stat(filepath.Join(dir, "lux-compare.json")); err != nil {
		t.Fatalf("expected state file on disk: %v", err)
	}

	var out []string
	store.Load(KeyCompare, &out, []string{})
	if len(out) != 2 || out[0] != "sf90" {
		t.Fatalf("file round trip mismatch: %v", out)
	}
}
