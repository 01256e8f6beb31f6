// Package jsonstore persists one homogeneous collection of records as a
// single JSON array file. Every mutating operation is a whole-file
// read-modify-write cycle; there is no index, no partial write, and no
// transaction spanning two stores. Reads of a missing or corrupt file
// degrade to an empty collection and are reported through a sentinel error
// the caller is free to ignore.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// ErrMissing marks a load that found no collection file.
	ErrMissing = errors.New("collection file missing")
	// ErrCorrupt marks a load that found a file it could not decode.
	ErrCorrupt = errors.New("collection file corrupt")
	// ErrNotFound marks a lookup or update that matched no record.
	ErrNotFound = errors.New("record not found")
)

// Record is any collection entry carrying an integer surrogate id.
type Record interface {
	GetID() int
	SetID(int)
}

// Store reads and writes one collection file. The mutex makes each
// read-modify-write cycle atomic within the process; nothing guards
// against a second process writing the same file.
type Store[T Record] struct {
	path   string
	logger zerolog.Logger
	mu     sync.Mutex
}

func New[T Record](path string, logger zerolog.Logger) *Store[T] {
	return &Store[T]{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// LoadAll returns every record in file order. The slice is always usable:
// a missing file yields (empty, ErrMissing) and an unreadable or
// undecodable one yields (empty, ErrCorrupt), both logged at warn level.
func (s *Store[T]) LoadAll() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store[T]) loadLocked() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn().Str("path", s.path).Msg("collection file missing, continuing with empty collection")
			return []T{}, fmt.Errorf("load %s: %w", s.path, ErrMissing)
		}
		s.logger.Warn().Err(err).Str("path", s.path).Msg("collection file unreadable, continuing with empty collection")
		return []T{}, fmt.Errorf("load %s: %v: %w", s.path, err, ErrCorrupt)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("collection file corrupt, continuing with empty collection")
		return []T{}, fmt.Errorf("load %s: %v: %w", s.path, err, ErrCorrupt)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// SaveAll overwrites the collection file with the given records,
// serialized with two-space indentation. A failed write leaves the
// caller's in-memory view ahead of the file; no rollback is attempted.
func (s *Store[T]) SaveAll(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(records)
}

func (s *Store[T]) saveLocked(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Append assigns the next id to rec and persists it at the end of the
// collection. Degraded loads proceed against an empty collection.
func (s *Store[T]) Append(rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, _ := s.loadLocked()
	rec.SetID(NextID(records))
	records = append(records, rec)
	if err := s.saveLocked(records); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Upsert replaces the stored record with rec's id, or appends rec when no
// record carries that id. Unlike Append it never assigns an id; callers
// that key records by something other than a surrogate own the key.
func (s *Store[T]) Upsert(rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, _ := s.loadLocked()
	replaced := false
	for i, existing := range records {
		if existing.GetID() == rec.GetID() {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	return s.saveLocked(records)
}

// FindOne scans the collection in insertion order and returns the first
// record matching pred, or ErrNotFound. O(n).
func (s *Store[T]) FindOne(pred func(T) bool) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, _ := s.loadLocked()
	for _, rec := range records {
		if pred(rec) {
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("find in %s: %w", s.path, ErrNotFound)
}

// FindAll returns every record matching pred in insertion order. O(n).
func (s *Store[T]) FindAll(pred func(T) bool) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.loadLocked()
	matched := []T{}
	for _, rec := range records {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, err
}

// Update locates the record with the given id, applies mutate and persists
// the collection. When no record matches, the file is left untouched and
// ErrNotFound is returned.
func (s *Store[T]) Update(id int, mutate func(T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, _ := s.loadLocked()
	for _, rec := range records {
		if rec.GetID() == id {
			mutate(rec)
			if err := s.saveLocked(records); err != nil {
				var zero T
				return zero, err
			}
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("update %s id %d: %w", s.path, id, ErrNotFound)
}
