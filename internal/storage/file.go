package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/getmockd/mcpconsole/pkg/instance"
)

// FileInstanceStore keeps instances in memory and rewrites a JSON file after
// every change. The file holds a plain array in the wire shape.
type FileInstanceStore struct {
	path string
	mem  *InMemoryInstanceStore

	// serializes mutate-then-save so the file always matches memory
	writeMu sync.Mutex
}

// OpenFileInstanceStore loads path if it exists. A missing file starts an
// empty store; the file is created on the first change.
func OpenFileInstanceStore(path string) (*FileInstanceStore, error) {
	var seed []instance.Instance
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read instance file: %w", err)
	default:
		if err := json.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("failed to parse instance file %s: %w", path, err)
		}
	}
	return &FileInstanceStore{path: path, mem: NewInMemoryInstanceStore(seed...)}, nil
}

// Path returns the backing file.
func (s *FileInstanceStore) Path() string {
	return s.path
}

// Get retrieves an instance by ID.
func (s *FileInstanceStore) Get(id string) (instance.Instance, bool) {
	return s.mem.Get(id)
}

// Add appends a new instance and saves the file. If the save fails the
// instance is removed again.
func (s *FileInstanceStore) Add(inst instance.Instance) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.mem.Add(inst); err != nil {
		return err
	}
	if err := s.saveLocked(); err != nil {
		_, _ = s.mem.Delete(inst.ID)
		return err
	}
	return nil
}

// Delete removes an instance by ID and saves the file. If the save fails
// the instance is restored at its original position.
func (s *FileInstanceStore) Delete(id string) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	inst, i, ok := s.mem.remove(id)
	if !ok {
		return false, nil
	}
	if err := s.saveLocked(); err != nil {
		s.mem.insertAt(i, inst)
		return false, err
	}
	return true, nil
}

// List returns all stored instances in insertion order.
func (s *FileInstanceStore) List() []instance.Instance {
	return s.mem.List()
}

// Count returns the number of stored instances.
func (s *FileInstanceStore) Count() int {
	return s.mem.Count()
}

func (s *FileInstanceStore) saveLocked() error {
	data, err := json.MarshalIndent(s.mem.List(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode instances: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write instance file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace instance file: %w", err)
	}
	return nil
}

// Ensure FileInstanceStore implements InstanceStore.
var _ InstanceStore = (*FileInstanceStore)(nil)
