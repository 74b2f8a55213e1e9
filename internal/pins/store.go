// Package pins keeps the user's pinned clauses on the local device.
// Pins are annotations only; they reference server analyses by id but
// live and die independently of them.
package pins

import (
	"encoding/json"
	"fmt"
)

// storageKey is the fixed key the serialized pin list lives under.
const storageKey = "clause_pinned_clauses"

// PinnedClause marks one clause of one analysis as important. The
// (AnalysisID, ClauseID) pair is the identity; there is no live link to
// the analysis and no cleanup when it disappears server-side.
type PinnedClause struct {
	AnalysisID string `json:"analysisId"`
	ClauseID   string `json:"clauseId"`
}

// KV is the persistence backend: one value per key, durable across
// process restarts. Implementations live in this package.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// Store holds the pin set behind a KV backend. Every operation reads
// and rewrites the whole set; the set stays small enough that this is
// the simplest thing that works.
type Store struct {
	kv KV
}

// NewStore creates a pin store over the given backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// List returns every pin. A missing or corrupt stored payload reads as
// an empty set; pins are non-critical metadata and losing them beats
// failing the caller.
func (s *Store) List() []PinnedClause {
	data, ok, err := s.kv.Get(storageKey)
	if err != nil || !ok {
		return []PinnedClause{}
	}
	var pinned []PinnedClause
	if err := json.Unmarshal(data, &pinned); err != nil {
		return []PinnedClause{}
	}
	if pinned == nil {
		return []PinnedClause{}
	}
	return pinned
}

// IsPinned reports whether the clause is pinned.
func (s *Store) IsPinned(analysisID, clauseID string) bool {
	for _, p := range s.List() {
		if p.AnalysisID == analysisID && p.ClauseID == clauseID {
			return true
		}
	}
	return false
}

// Pin records the clause. No-op if it is already pinned.
func (s *Store) Pin(analysisID, clauseID string) error {
	pinned := s.List()
	for _, p := range pinned {
		if p.AnalysisID == analysisID && p.ClauseID == clauseID {
			return nil
		}
	}
	pinned = append(pinned, PinnedClause{AnalysisID: analysisID, ClauseID: clauseID})
	return s.save(pinned)
}

// Unpin removes the clause. No-op if it is not pinned.
func (s *Store) Unpin(analysisID, clauseID string) error {
	pinned := s.List()
	kept := pinned[:0]
	for _, p := range pinned {
		if p.AnalysisID == analysisID && p.ClauseID == clauseID {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == len(pinned) {
		return nil
	}
	return s.save(kept)
}

// Clear drops every pin.
func (s *Store) Clear() error {
	return s.save([]PinnedClause{})
}

func (s *Store) save(pinned []PinnedClause) error {
	data, err := json.Marshal(pinned)
	if err != nil {
		return fmt.Errorf("marshal pins: %w", err)
	}
	if err := s.kv.Set(storageKey, data); err != nil {
		return fmt.Errorf("save pins: %w", err)
	}
	return nil
}
