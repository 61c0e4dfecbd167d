package kv

import (
	"log"
	"os"
)

// OpenFromEnv picks the backend from KV_BACKEND (file, redis, mongo, memory).
// An unreachable backend degrades to the in-memory one rather than failing
// startup: persistence is best-effort throughout.
func OpenFromEnv() Backend {
	switch os.Getenv("KV_BACKEND") {
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		b, err := NewRedisBackend(addr)
		if err == nil {
			return b
		}
		log.Printf("kv: redis at %s unavailable (%v), falling back to memory", addr, err)
	case "mongo":
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		b, err := NewMongoBackend(uri)
		if err == nil {
			return b
		}
		log.Printf("kv: mongo at %s unavailable (%v), falling back to memory", uri, err)
	case "memory":
	default:
		dir := os.Getenv("KV_DIR")
		if dir == "" {
			dir = "data"
		}
		b, err := NewFileBackend(dir)
		if err == nil {
			return b
		}
		log.Printf("kv: cannot use state dir %s (%v), falling back to memory", dir, err)
	}
	return NewMemoryBackend()
}
