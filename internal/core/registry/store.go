package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ErrNotFound is returned when no record with the requested id exists.
var ErrNotFound = errors.New("record not found")

// Record is any entity that can be held in a Store.
type Record interface {
	RecordID() string
}

// Store is an insertion-ordered in-memory collection of records.
// New records are prepended, matching the newest-first listing the
// management screens expect. IDs are issued from a monotonic counter
// so a deleted record's id is never reused.
type Store[T Record] struct {
	mu      sync.RWMutex
	prefix  string
	lastSeq int
	records []T
}

// NewStore creates a Store issuing ids of the form {prefix}{zero-padded seq},
// seeded with the given records. The counter starts past the highest numeric
// suffix found in the seed so issued ids never collide with seeded ones.
func NewStore[T Record](prefix string, seed []T) *Store[T] {
	s := &Store[T]{
		prefix:  prefix,
		records: append([]T(nil), seed...),
	}
	for _, rec := range seed {
		if n, ok := numericSuffix(prefix, rec.RecordID()); ok && n > s.lastSeq {
			s.lastSeq = n
		}
	}
	return s
}

// numericSuffix extracts the sequence number from an id like "DEL004".
func numericSuffix(prefix, id string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextID allocates the next id. Each call returns a distinct id even
// after deletions shrink the collection.
func (s *Store[T]) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeq++
	return fmt.Sprintf("%s%03d", s.prefix, s.lastSeq)
}

// List returns a copy of the collection in insertion order (newest first).
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.records...)
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Insert prepends a record to the collection.
func (s *Store[T]) Insert(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]T{rec}, s.records...)
}

// Replace swaps the stored record carrying the same id for rec.
// Returns ErrNotFound when no such record exists.
func (s *Store[T]) Replace(rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.records {
		if existing.RecordID() == rec.RecordID() {
			s.records[i] = rec
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the record with the given id.
// Returns ErrNotFound when no such record exists.
func (s *Store[T]) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.RecordID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
