// Package history keeps the bounded, most-recent-first record of past
// screening results. The store is in-memory only and scoped to the session
// that owns it; nothing survives a process restart.
package history

import (
	"errors"

	"github.com/adversight/screening/report"
)

// ErrNotFound is returned when a selected index is outside the store.
var ErrNotFound = errors.New("history: entry not found")

// DefaultCapacity is how many results a store retains.
const DefaultCapacity = 10

// Store is an ordered, size-bounded collection of screening results, most
// recent first. Appending beyond capacity evicts the oldest entries.
// Repeated screenings of the same entity produce distinct entries; there
// is no deduplication.
//
// The store assumes the single-operator usage model: one screening pipeline
// is its only writer, so it carries no locking. Embedding it in a
// multi-user service requires one store per session.
type Store struct {
	capacity int
	entries  []report.ScreeningResult
}

// NewStore creates an empty store with the default capacity.
func NewStore() *Store {
	return &Store{capacity: DefaultCapacity}
}

// Append records a result as the most recent entry, evicting the oldest
// entries beyond capacity.
func (s *Store) Append(res report.ScreeningResult) {
	s.entries = append([]report.ScreeningResult{res}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

// Recent returns up to k entries in stored order, most recent first. It
// returns fewer when the store holds fewer, and the returned slice is a
// copy the caller may keep.
func (s *Store) Recent(k int) []report.ScreeningResult {
	if k > len(s.entries) {
		k = len(s.entries)
	}
	if k < 0 {
		k = 0
	}
	out := make([]report.ScreeningResult, k)
	copy(out, s.entries[:k])
	return out
}

// Select returns the entry at the given position, 0 being the most recent.
// Returns ErrNotFound if the index is out of range.
func (s *Store) Select(index int) (report.ScreeningResult, error) {
	if index < 0 || index >= len(s.entries) {
		return report.ScreeningResult{}, ErrNotFound
	}
	return s.entries[index], nil
}

// Len reports how many results the store currently holds.
func (s *Store) Len() int {
	return len(s.entries)
}
