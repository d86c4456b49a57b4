package storage

import (
	"slices"
	"sync"

	"github.com/getmockd/mcpconsole/pkg/instance"
)

// InMemoryInstanceStore is a thread-safe in-memory implementation of InstanceStore.
type InMemoryInstanceStore struct {
	mu        sync.RWMutex
	instances []instance.Instance
}

// NewInMemoryInstanceStore creates a store holding copies of seed.
func NewInMemoryInstanceStore(seed ...instance.Instance) *InMemoryInstanceStore {
	s := &InMemoryInstanceStore{instances: make([]instance.Instance, 0, len(seed))}
	for _, inst := range seed {
		s.instances = append(s.instances, inst.Clone())
	}
	return s
}

// Get retrieves an instance by ID.
func (s *InMemoryInstanceStore) Get(id string) (instance.Instance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.instances[i].Clone(), true
	}
	return instance.Instance{}, false
}

// Add appends a new instance.
func (s *InMemoryInstanceStore) Add(inst instance.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(inst.ID) >= 0 {
		return ErrDuplicateID
	}
	s.instances = append(s.instances, inst.Clone())
	return nil
}

// Delete removes an instance by ID. Returns true if deleted, false if not found.
func (s *InMemoryInstanceStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false, nil
	}
	s.instances = slices.Delete(s.instances, i, i+1)
	return true, nil
}

// List returns all stored instances in insertion order.
func (s *InMemoryInstanceStore) List() []instance.Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]instance.Instance, len(s.instances))
	for i, inst := range s.instances {
		result[i] = inst.Clone()
	}
	return result
}

// Count returns the number of stored instances.
func (s *InMemoryInstanceStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instances)
}

// remove deletes id and returns the removed instance with its former index.
func (s *InMemoryInstanceStore) remove(id string) (instance.Instance, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return instance.Instance{}, -1, false
	}
	inst := s.instances[i]
	s.instances = slices.Delete(s.instances, i, i+1)
	return inst, i, true
}

// insertAt puts inst back at index i, or at the end when i is out of range.
func (s *InMemoryInstanceStore) insertAt(i int, inst instance.Instance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances = slices.Insert(s.instances, min(i, len(s.instances)), inst)
}

func (s *InMemoryInstanceStore) indexLocked(id string) int {
	return slices.IndexFunc(s.instances, func(inst instance.Instance) bool { return inst.ID == id })
}

// Ensure InMemoryInstanceStore implements InstanceStore.
var _ InstanceStore = (*InMemoryInstanceStore)(nil)
