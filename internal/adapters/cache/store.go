// Package cache implements the answer store over a flat JSON file.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.AnswerStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Answer
}

// NewStore creates a new AnswerStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Answer),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read answer store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal answer store")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal answer store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for answer store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write answer store")
	}

	return nil
}

// Get retrieves the cached answer for a given key.
// Returns nil, nil if not found.
func (s *Store) Get(key string) (*domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answer, ok := s.cache[key]
	if !ok {
		return nil, nil
	}
	return &answer, nil
}

// Put stores the answer.
func (s *Store) Put(answer domain.Answer) error {
	s.mu.Lock()
	s.cache[answer.Key] = answer
	s.mu.Unlock()

	return s.save()
}
