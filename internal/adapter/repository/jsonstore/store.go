// Package jsonstore persists the whole application state as a single JSON
// snapshot on disk. It is the default local backend and the lightweight
// stand-in for a database: load everything at startup, rewrite the file after
// every mutation using an atomic tmp-write-then-rename so a crash mid-write
// never corrupts the previous snapshot.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

type snapshot struct {
	Users        []*domain.User        `json:"users"`
	Transactions []*domain.Transaction `json:"transactions"`
	Objectives   []*domain.Objective   `json:"objectives"`
	RiskProfiles []*domain.RiskProfile `json:"risk_profiles"`
	SavedAt      time.Time             `json:"saved_at"`
}

// Store holds the in-memory snapshot and its file path.
// The mutex is a store concern, not engine locking: the HTTP server calls
// repositories concurrently even though each user session is single-actor.
type Store struct {
	path string

	mu   sync.Mutex
	snap snapshot
}

// Open loads the snapshot at path, or starts empty when the file is absent.
// An empty path keeps the store purely in memory (used by tests).
func Open(path string) (*Store, error) {
	store := &Store{path: path}

	if path == "" {
		return store, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&store.snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return store, nil
}

// persist rewrites the snapshot file atomically. Caller must hold mu.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}

	s.snap.SavedAt = time.Now()

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create snapshot tmp file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&s.snap); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot tmp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
