package repositories

import (
	"errors"
	"sync"

	"weather-dashboard/internal/models"
)

var ErrPreferenceNotFound = errors.New("user preferences not found")

// PreferenceStore is a process-lifetime, concurrency-safe map from user id
// to preference record. A Set replaces the whole record.
type PreferenceStore struct {
	mu    sync.RWMutex
	prefs map[string]models.UserPreference
}

// NewPreferenceStore copies seed, so callers may reuse it.
func NewPreferenceStore(seed map[string]models.UserPreference) *PreferenceStore {
	prefs := make(map[string]models.UserPreference, len(seed))
	for id, pref := range seed {
		prefs[id] = pref
	}
	return &PreferenceStore{prefs: prefs}
}

func (s *PreferenceStore) Get(userID string) (models.UserPreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pref, ok := s.prefs[userID]
	if !ok {
		return models.UserPreference{}, ErrPreferenceNotFound
	}
	return pref, nil
}

func (s *PreferenceStore) Set(userID string, pref models.UserPreference) models.UserPreference {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs[userID] = pref
	return pref
}

func (s *PreferenceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.prefs)
}
