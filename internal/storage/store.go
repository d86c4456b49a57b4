// Package storage provides MCP instance storage abstractions and implementations.
package storage

import (
	"errors"

	"github.com/getmockd/mcpconsole/pkg/instance"
)

// ErrDuplicateID is returned by Add when the id is already stored.
var ErrDuplicateID = errors.New("instance id already exists")

// InstanceStore defines the interface for storing MCP instance records.
type InstanceStore interface {
	// Get retrieves an instance by ID.
	Get(id string) (instance.Instance, bool)

	// Add appends a new instance. Its ID must be unique.
	Add(inst instance.Instance) error

	// Delete removes an instance by ID. Returns false if not found.
	Delete(id string) (bool, error)

	// List returns all stored instances in insertion order.
	List() []instance.Instance

	// Count returns the number of stored instances.
	Count() int
}
