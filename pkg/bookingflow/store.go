package bookingflow

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoSelection is the "no booking data" state: nothing selected in memory
// and no durable copy on disk.
var ErrNoSelection = errors.New("no booking selection")

const selectionFile = "booking.json"

// Store keeps the current selection in memory and mirrors it to a JSON file
// so a restart does not lose it. Clear removes both copies.
type Store struct {
	mu      sync.Mutex
	path    string
	current *Selection
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, selectionFile)}, nil
}

func (s *Store) Save(sel Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}
	s.current = &sel
	return nil
}

func (s *Store) Load() (*Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		sel := *s.current
		return &sel, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSelection
		}
		return nil, err
	}

	var sel Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, err
	}
	s.current = &sel
	loaded := sel
	return &loaded, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
