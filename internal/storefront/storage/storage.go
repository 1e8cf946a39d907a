// internal/storefront/storage/storage.go

// Package storage is the durable key/value layer behind cart and
// favorites. Loads never fail upward: missing, malformed or unreadable
// entries fall back to whatever the caller already holds, with a
// diagnostic in the log. Saves are best effort; selections are
// convenience data, not critical data.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store is the persistence contract. Load decodes the stored value for
// key into dest, leaving dest untouched (the fallback) on any failure.
// Save serializes value under key; failures are swallowed.
type Store interface {
	Load(key string, dest interface{})
	Save(key string, value interface{})
}

// decode writes into dest only when the whole payload parses; a partial
// fill from malformed input would break the absent-not-repaired rule.
func decode(key string, data []byte, dest interface{}) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return
	}

	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("state decode failed, using fallback")
		return
	}
	rv.Elem().Set(tmp.Elem())
}

// FileStore keeps one JSON file per key under a state directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, dest interface{}) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("key", key).Warn("state read failed, using fallback")
		}
		return
	}

	decode(key, data, dest)
}

func (s *FileStore) Save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Debug("state encode failed")
		return
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		logrus.WithError(err).WithField("key", key).Debug("state dir create failed")
		return
	}

	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		logrus.WithError(err).WithField("key", key).Debug("state write failed")
	}
}

// MemStore is an in-memory Store. Values round-trip through JSON so
// behavior matches FileStore, including decode failures on type
// mismatches.
type MemStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string][]byte)}
}

// Put injects a raw payload, bypassing encoding. Tests use it to stage
// corrupt data.
func (s *MemStore) Put(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = raw
}

func (s *MemStore) Load(key string, dest interface{}) {
	s.mu.Lock()
	data, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return
	}

	decode(key, data, dest)
}

func (s *MemStore) Save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.entries[key] = data
	s.mu.Unlock()
}
