package storage

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lexflow/lexflow-api/models"
)

// Settings holds the office-wide scalar settings, currently just the acting
// user's display name.
type Settings struct {
	mu          sync.Mutex
	store       *Store
	displayName string
}

// NewSettings loads the display name from the store, falling back to the
// compiled-in default.
func NewSettings(store *Store) *Settings {
	s := &Settings{store: store}
	if !store.Load(UsernameKey, &s.displayName) || s.displayName == "" {
		s.displayName = models.DefaultDisplayName
	}
	return s
}

// DisplayName returns the acting user's display name.
func (s *Settings) DisplayName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayName
}

// SetDisplayName stores a new display name and persists it.
func (s *Settings) SetDisplayName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayName = name
	if err := s.store.Save(UsernameKey, s.displayName); err != nil {
		zap.S().Errorw("failed to persist display name", "error", err)
	}
}
