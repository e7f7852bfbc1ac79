package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// record is a single persisted verification record
type record struct {
	Verified bool `json:"verified"`
}

// Store is the flat-file verification store: a single JSON object
// mapping stringified user IDs to verification records.
//
// Writes rewrite the whole document. There is no partial update and
// no cross-process locking, so concurrent writers race with
// last-writer-wins semantics. Accepted for the write volume at hand
// (once per user, at most)
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a flat-file verification store at the given path
func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) IsVerified(_ context.Context, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()

	return records[strconv.FormatInt(userID, 10)].Verified, nil
}

func (s *Store) SetVerified(_ context.Context, userID int64, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	records[strconv.FormatInt(userID, 10)] = record{Verified: verified}

	return s.save(records)
}

// load reads the whole persisted mapping. A missing or corrupt file
// reads as empty
func (s *Store) load() map[string]record {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]record{}
	}

	var records map[string]record

	if err := json.Unmarshal(content, &records); err != nil || records == nil {
		return map[string]record{}
	}

	return records
}

// save writes the whole mapping back
func (s *Store) save(records map[string]record) error {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal records: %w", err)
	}

	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("unable to write records: %w", err)
	}

	return nil
}
