// Package storage holds MCP instance records for the development backend.
//
// Key types:
//
//   - InstanceStore: Interface defining the contract for instance storage
//   - InMemoryInstanceStore: Thread-safe, insertion-ordered store
//   - FileInstanceStore: InMemoryInstanceStore persisted to a JSON file
//
// Every store returns copies; callers never share slices with the store.
package storage
