package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mcpconsole/pkg/apiclient"
	"github.com/getmockd/mcpconsole/pkg/instance"
)

type countingRefresher struct{ calls int }

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls++
	return nil
}

func newTestForm(backend *fakeBackend) (*FormController, *countingRefresher) {
	r := &countingRefresher{}
	return NewFormController(instance.DefaultCatalog(), backend, r, nil), r
}

func TestForm_ToggleCategory(t *testing.T) {
	f, _ := newTestForm(newFakeBackend())

	assert.True(t, f.ToggleCategory("Sales"))
	assert.True(t, f.ToggleCategory("HR"))
	assert.Equal(t, []string{"Sales", "HR"}, f.Snapshot().Selected)

	assert.False(t, f.ToggleCategory("Sales"))
	assert.Equal(t, []string{"HR"}, f.Snapshot().Selected)

	assert.True(t, f.ToggleCategory("Sales"))
	assert.Equal(t, []string{"HR", "Sales"}, f.Snapshot().Selected)

	assert.False(t, f.ToggleCategory(""))
	assert.Len(t, f.Snapshot().Selected, 2)
}

func TestForm_SubmitRejectsEmptyNameWithoutNetwork(t *testing.T) {
	backend := newFakeBackend()
	f, r := newTestForm(backend)
	f.Open()
	f.ToggleCategory("Sales")

	_, err := f.Submit(context.Background())

	var vErr *instance.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "name", vErr.Field)
	_, creates, _ := backend.calls()
	assert.Zero(t, creates)
	assert.Zero(t, r.calls)

	s := f.Snapshot()
	assert.True(t, s.Open)
	assert.Equal(t, "name is required", s.Error)
	assert.Equal(t, []string{"Sales"}, s.Selected)
}

func TestForm_SubmitRejectsNoCategoriesWithoutNetwork(t *testing.T) {
	backend := newFakeBackend()
	f, _ := newTestForm(backend)
	f.Open()
	f.SetName("Sales MCP")

	_, err := f.Submit(context.Background())

	var vErr *instance.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "allowedTables", vErr.Field)
	_, creates, _ := backend.calls()
	assert.Zero(t, creates)
	assert.Equal(t, "Sales MCP", f.Snapshot().Name)
}

func TestForm_SubmitSuccessResetsClosesAndRefreshes(t *testing.T) {
	backend := newFakeBackend()
	f, r := newTestForm(backend)
	f.Open()
	f.SetName("Sales MCP")
	f.SetDescription("quarterly numbers")
	f.ToggleCategory("Sales")
	f.ToggleCategory("Finance")

	created, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Sales MCP", created.Name)
	assert.Equal(t, "quarterly numbers", created.Description)
	assert.Equal(t, []string{"Sales", "Finance"}, created.PermittedCategories)
	assert.Equal(t, 1, r.calls)

	s := f.Snapshot()
	assert.False(t, s.Open)
	assert.Empty(t, s.Name)
	assert.Empty(t, s.Description)
	assert.Empty(t, s.Selected)
	assert.Empty(t, s.Error)
	assert.False(t, s.Submitting)
}

func TestForm_FailedSubmitKeepsEverything(t *testing.T) {
	backend := newFakeBackend()
	backend.createErr = &apiclient.BackendError{Status: 409, Body: "name already exists"}
	f, r := newTestForm(backend)
	f.Open()
	f.SetName("Sales MCP")
	f.SetDescription("desc")
	f.ToggleCategory("Sales")

	_, err := f.Submit(context.Background())
	require.Error(t, err)

	s := f.Snapshot()
	assert.True(t, s.Open)
	assert.Equal(t, "Sales MCP", s.Name)
	assert.Equal(t, "desc", s.Description)
	assert.Equal(t, []string{"Sales"}, s.Selected)
	assert.Equal(t, "HTTP error! status: 409, message: name already exists", s.Error)
	assert.Zero(t, r.calls)
}

func TestForm_CancelAlwaysClears(t *testing.T) {
	f, _ := newTestForm(newFakeBackend())
	f.Open()
	f.SetName("x")
	f.SetDescription("y")
	f.ToggleCategory("HR")
	_, _ = f.Submit(context.Background())

	f.Cancel()

	s := f.Snapshot()
	assert.False(t, s.Open)
	assert.Empty(t, s.Name)
	assert.Empty(t, s.Description)
	assert.Empty(t, s.Selected)
	assert.Empty(t, s.Error)

	// Cancelling an already empty form is a no-op.
	f.Cancel()
	assert.Equal(t, FormState{}, f.Snapshot())
}

type blockingCreator struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingCreator) Create(ctx context.Context, d instance.Draft) (*instance.Instance, error) {
	close(b.started)
	<-b.release
	return &instance.Instance{ID: "1", Name: d.Name}, nil
}

func TestForm_SecondSubmitWhileInFlight(t *testing.T) {
	creator := &blockingCreator{started: make(chan struct{}), release: make(chan struct{})}
	f := NewFormController(nil, creator, nil, nil)
	f.SetName("x")
	f.ToggleCategory("Sales")

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()
	<-creator.started

	assert.True(t, f.Snapshot().Submitting)
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(creator.release)
	require.NoError(t, <-done)
	assert.False(t, f.Snapshot().Submitting)
}

func TestForm_DraftAndCatalog(t *testing.T) {
	f := NewFormController(nil, newFakeBackend(), nil, nil)
	assert.Equal(t, 5, f.Catalog().Len())

	f.SetName("n")
	f.ToggleCategory("HR")
	d := f.Draft()
	d.PermittedCategories[0] = "mutated"
	assert.Equal(t, []string{"HR"}, f.Snapshot().Selected)
	assert.True(t, f.Snapshot().IsSelected("HR"))
}
