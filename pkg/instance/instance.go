package instance

import (
	"slices"
	"strings"
)

// Instance is an MCP instance as returned by the backend.
type Instance struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	EndpointURL         string   `json:"url"`
	PermittedCategories []string `json:"allowedTables"`
}

// CategoryCount returns the number of permitted categories.
func (i Instance) CategoryCount() int {
	return len(i.PermittedCategories)
}

// Clone returns a deep copy so callers can hand out snapshots without
// sharing the categories slice.
func (i Instance) Clone() Instance {
	i.PermittedCategories = slices.Clone(i.PermittedCategories)
	return i
}

// Draft is the unpersisted form state for an instance that does not exist
// yet. It has no id; the backend assigns one on create.
type Draft struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	PermittedCategories []string `json:"allowedTables"`
}

// Validate checks the create preconditions: a non-blank name and at least
// one permitted category.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(d.PermittedCategories) == 0 {
		return &ValidationError{Field: "allowedTables", Message: "select at least one table"}
	}
	return nil
}

// ValidationError is a client-side rejection of a draft. It never reaches
// the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
