package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/homexpense/homexpense/internal/model"
	"github.com/homexpense/homexpense/internal/storage"
)

// ProfileKey is the persisted key holding the user profile.
const ProfileKey = "userProfile"

// ProfileStore holds the optional user profile. Unlike the expense and
// budget stores it persists synchronously: Update writes first and only
// applies in memory once the write succeeded, surfacing the error to the
// caller.
type ProfileStore struct {
	kv      storage.KV
	profile model.Profile
	mu      sync.RWMutex
}

// NewProfileStore creates a store backed by kv. Call Load before reading.
func NewProfileStore(kv storage.KV) *ProfileStore {
	return &ProfileStore{kv: kv}
}

// Load replaces the in-memory profile with the persisted one; missing or
// malformed data silently leaves an empty profile.
func (s *ProfileStore) Load(ctx context.Context) {
	value, ok, err := s.kv.Get(ctx, ProfileKey)

	var profile model.Profile
	switch {
	case err != nil:
		slog.Error("failed to load profile", "error", err)
	case !ok:
	default:
		if err := json.Unmarshal([]byte(value), &profile); err != nil {
			slog.Error("failed to parse persisted profile", "error", err)
			profile = model.Profile{}
		}
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
}

// Profile returns the current profile.
func (s *ProfileStore) Profile() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Update merges the non-empty fields of patch into the profile and
// persists the result. The in-memory profile is untouched when the write
// fails.
func (s *ProfileStore) Update(ctx context.Context, patch model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.profile
	if patch.Name != "" {
		merged.Name = patch.Name
	}
	if patch.Email != "" {
		merged.Email = patch.Email
	}
	if patch.Currency != "" {
		merged.Currency = patch.Currency
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.kv.Set(ctx, ProfileKey, string(payload)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	s.profile = merged
	return nil
}

// Reset drops the in-memory profile without touching durable storage.
func (s *ProfileStore) Reset() {
	s.mu.Lock()
	s.profile = model.Profile{}
	s.mu.Unlock()
}
