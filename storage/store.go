package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store keys, one JSON file per key inside the data directory. The names
// match the web client's localStorage keys so exported data imports cleanly.
const (
	OrdersKey   = "lexflow_orders"
	ClientsKey  = "lexflow_clients"
	UsernameKey = "lexflow_username"
)

// Store persists whole values as JSON files under a single directory. It is
// advisory persistence, not a source of truth: a value that cannot be read
// back is replaced by the caller's compiled-in default, never surfaced as an
// error.
type Store struct {
	dir string
}

// NewStore creates the data directory if needed and returns a store rooted
// at it.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file backing a key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the value stored under key into v. It returns false when the
// key is absent or its contents cannot be parsed; the caller falls back to
// its default in that case.
func (s *Store) Load(key string, v interface{}) bool {
	b, err := os.ReadFile(s.Path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			zap.S().Warnw("failed to read stored value, using default",
				"key", key,
				"error", err,
			)
		}
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		zap.S().Warnw("failed to parse stored value, using default",
			"key", key,
			"error", err,
		)
		return false
	}
	return true
}

// Save overwrites the value stored under key. The write goes through a temp
// file and an atomic rename so a crash mid-write cannot corrupt the previous
// value.
func (s *Store) Save(key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp := s.Path(key) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path(key))
}
