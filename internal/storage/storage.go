// Package storage is the persistence side of the application: every
// in-memory collection is mirrored as a JSON value under a namespaced key
// after each mutation and reloaded on startup. Backends are interchangeable;
// the default writes one file per key.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a namespaced key-value port.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Key suffixes for the persisted collections.
const (
	KeyUser       = "user"
	KeySwipes     = "swipes"
	KeyMatches    = "matches"
	KeyTrips      = "trips"
	KeyPoints     = "points"
	KeySettings   = "settings"
	KeyOnboarding = "onboarding"
	KeyDemoMode   = "demomode"
)

// Namespace prefixes keys with the application name, mirroring the
// "passportpals_swipes" style of the persisted state.
type Namespace string

// Key returns the fully-qualified key for a collection suffix.
func (n Namespace) Key(suffix string) string {
	return fmt.Sprintf("%s_%s", string(n), suffix)
}

// All returns every key the application persists under this namespace.
func (n Namespace) All() []string {
	suffixes := []string{KeyUser, KeySwipes, KeyMatches, KeyTrips, KeyPoints, KeySettings, KeyOnboarding, KeyDemoMode}
	keys := make([]string, len(suffixes))
	for i, s := range suffixes {
		keys[i] = n.Key(s)
	}
	return keys
}

// SaveJSON marshals v and writes it under key.
func SaveJSON(ctx context.Context, store Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// LoadJSON reads key into dest. A missing key or a corrupt value leaves dest
// untouched and reports false; persisted state must never prevent startup.
func LoadJSON(ctx context.Context, store Store, key string, dest any) bool {
	data, err := store.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		fmt.Printf("Warning: discarding corrupt state under %s: %v\n", key, err)
		return false
	}
	return true
}
