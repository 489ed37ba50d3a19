package storage

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrEmptyOption indicates an option with an empty name or an empty value.
	ErrEmptyOption = errors.New("option name and value must be non-empty")
)

// Storage provides access to raw option values keyed by option name.
type Storage interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Keys() []string
	Len() int
	Snapshot() map[string]string
}

var _ Storage = (*MemoryStorage)(nil)

// MemoryStorage keeps raw option values in a map.
//
// It performs no locking. The resolver fills it once while loading a file and
// only reads from it afterwards; callers sharing it across goroutines after
// that point must only read.
type MemoryStorage struct {
	options map[string]string
}

// NewMemoryStorage returns an empty option store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		options: make(map[string]string),
	}
}

// Lookup returns the raw value stored for key.
func (s *MemoryStorage) Lookup(key string) (string, bool) {
	value, ok := s.options[key]
	return value, ok
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStorage) Set(key, value string) error {
	if key == "" || value == "" {
		return ErrEmptyOption
	}
	s.options[key] = value
	return nil
}

// Keys returns the stored option names in lexical order.
func (s *MemoryStorage) Keys() []string {
	keys := make([]string, 0, len(s.options))
	for key := range s.options {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Len reports the number of stored options.
func (s *MemoryStorage) Len() int {
	return len(s.options)
}

// Snapshot returns a copy of the stored options.
func (s *MemoryStorage) Snapshot() map[string]string {
	return maps.Clone(s.options)
}
