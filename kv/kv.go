package kv

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Persisted state keys. Each key holds one independent JSON document.
const (
	KeyUsers    = "lux-users"
	KeySession  = "lux-session"
	KeyBookings = "lux-bookings"
	KeyReviews  = "lux-reviews"
	KeyCompare  = "lux-compare"
	KeyContacts = "lux-contact"
)

// Backend stores raw JSON documents under string keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Name() string
}

// Store is the best-effort persistence layer. Reads fall back to a supplied
// default on any failure; writes are fire-and-forget. Values round-trip
// through JSON, so callers always get private copies.
type Store struct {
	backend Backend
}

func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

func (s *Store) BackendName() string {
	return s.backend.Name()
}

// Load decodes the document under key into dest. When the key is absent, the
// payload is corrupt, or the backend is unreachable, dest receives a deep
// copy of fallback instead.
func (s *Store) Load(key string, dest any, fallback any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		log.Printf("kv: load %q from %s failed: %v", key, s.backend.Name(), err)
	}
	if err == nil && ok {
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return
		}
		log.Printf("kv: corrupt document under %q, using fallback", key)
	}
	copyInto(dest, fallback)
}

// Save serializes value and writes it under key. Failures are logged and
// swallowed: persistence is best-effort, not transactional.
func (s *Store) Save(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("kv: marshal %q failed: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.backend.Set(ctx, key, raw); err != nil {
		log.Printf("kv: save %q to %s failed: %v", key, s.backend.Name(), err)
	}
}

// copyInto clones src into dest via the JSON codec, so callers never alias
// the fallback value.
func copyInto(dest, src any) {
	raw, err := json.Marshal(src)
	if err != nil {
		return
	}
	_ = json.Unmarshal(raw, dest)
}
