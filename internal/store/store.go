// Package store keeps recently parsed records in memory so the upload UI can
// offer exports without re-uploading.
package store

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/resumeparser/internal/resume"
)

// ErrNotFound is returned for unknown or expired record IDs.
var ErrNotFound = errors.New("record not found")

// Entry is one parsed upload.
type Entry struct {
	ID        string        `json:"id"`
	Filename  string        `json:"filename"`
	Record    resume.Record `json:"record"`
	CreatedAt time.Time     `json:"created_at"`
}

// RecordStore is a thread-safe in-memory record registry with TTL eviction.
type RecordStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	ttl     time.Duration
}

func NewRecordStore(ttl time.Duration) *RecordStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RecordStore{
		entries: make(map[string]Entry),
		ttl:     ttl,
	}
}

// Put stores e, replacing any entry with the same ID. A zero CreatedAt is
// set to now.
func (s *RecordStore) Put(e Entry) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = e
}

// Get returns the entry for id. Expired entries are reported as missing even
// before Cleanup removes them.
func (s *RecordStore) Get(id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || time.Since(e.CreatedAt) > s.ttl {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

// Len returns the number of stored entries, expired or not.
func (s *RecordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup removes expired entries and returns how many were dropped.
func (s *RecordStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	removed := 0
	for id, e := range s.entries {
		if now.Sub(e.CreatedAt) > s.ttl {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

// RecordID derives a stable ID from the upload name and bytes. Parsing is
// deterministic, so identical uploads share an ID.
func RecordID(filename string, data []byte) string {
	buf := make([]byte, 0, len(filename)+1+len(data))
	buf = append(buf, filename...)
	buf = append(buf, 0)
	buf = append(buf, data...)
	return ContentHashHex(buf)[:16]
}
