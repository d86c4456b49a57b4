package console

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/getmockd/mcpconsole/pkg/instance"
	"github.com/getmockd/mcpconsole/pkg/logging"
)

// ErrSubmitInProgress is returned when Submit is called while an earlier
// submission is still waiting on the backend.
var ErrSubmitInProgress = errors.New("a create request is already in progress")

// FormState is a point-in-time copy of the create form.
type FormState struct {
	Open        bool
	Name        string
	Description string
	Selected    []string // selection order
	Error       string
	Submitting  bool
}

// IsSelected reports whether id is among the selected categories.
func (s FormState) IsSelected(id string) bool {
	return slices.Contains(s.Selected, id)
}

// FormController owns the create dialog: its open flag, the draft fields
// and the submit lifecycle.
type FormController struct {
	catalog   *instance.Catalog
	creator   Creator
	refresher Refresher
	log       *slog.Logger

	mu          sync.Mutex
	open        bool
	name        string
	description string
	selected    []string
	errMsg      string
	submitting  bool
}

// NewFormController creates a closed, empty form. refresher is called after
// every successful create; it may be nil.
func NewFormController(catalog *instance.Catalog, creator Creator, refresher Refresher, log *slog.Logger) *FormController {
	if catalog == nil {
		catalog = instance.DefaultCatalog()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &FormController{
		catalog:   catalog,
		creator:   creator,
		refresher: refresher,
		log:       log,
	}
}

// Catalog returns the categories offered by the form.
func (f *FormController) Catalog() *instance.Catalog {
	return f.catalog
}

// Open shows the dialog. Field contents are left as they are.
func (f *FormController) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
}

// SetName sets the name field.
func (f *FormController) SetName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name = name
}

// SetDescription sets the description field.
func (f *FormController) SetDescription(description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.description = description
}

// ToggleCategory selects id if it is not selected and deselects it
// otherwise. It reports whether id is selected afterwards.
func (f *FormController) ToggleCategory(id string) bool {
	if id == "" {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if i := slices.Index(f.selected, id); i >= 0 {
		f.selected = slices.Delete(f.selected, i, i+1)
		return false
	}
	f.selected = append(f.selected, id)
	return true
}

// Draft returns the current field values as a draft.
func (f *FormController) Draft() instance.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draftLocked()
}

func (f *FormController) draftLocked() instance.Draft {
	return instance.Draft{
		Name:                f.name,
		Description:         f.description,
		PermittedCategories: slices.Clone(f.selected),
	}
}

// Submit validates the draft and, if it passes, asks the backend to create
// it. A validation failure never reaches the backend. On success the form
// is cleared and closed and the list is refreshed; on failure the dialog
// stays open with every field intact and the error message recorded.
func (f *FormController) Submit(ctx context.Context) (*instance.Instance, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	draft := f.draftLocked()
	if err := draft.Validate(); err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		return nil, err
	}
	f.submitting = true
	f.errMsg = ""
	f.mu.Unlock()

	created, err := f.creator.Create(ctx, draft)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		f.log.Warn("create failed", "name", draft.Name, "error", err)
		return nil, err
	}
	f.resetLocked()
	f.mu.Unlock()

	f.log.Info("instance created", "id", created.ID, "name", created.Name)
	if f.refresher != nil {
		// The list controller records its own failure; the create itself
		// already succeeded.
		_ = f.refresher.Refresh(ctx)
	}
	return created, nil
}

// Cancel closes the dialog and discards every field.
func (f *FormController) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *FormController) resetLocked() {
	f.open = false
	f.name = ""
	f.description = ""
	f.selected = nil
	f.errMsg = ""
}

// Snapshot returns a copy of the form state.
func (f *FormController) Snapshot() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormState{
		Open:        f.open,
		Name:        f.name,
		Description: f.description,
		Selected:    slices.Clone(f.selected),
		Error:       f.errMsg,
		Submitting:  f.submitting,
	}
}
