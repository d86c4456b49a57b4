package console

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/getmockd/mcpconsole/pkg/apiclient"
	"github.com/getmockd/mcpconsole/pkg/instance"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

// fakeBackend is an in-memory Repository that honors create and delete and
// counts every call.
type fakeBackend struct {
	mu        sync.Mutex
	instances []instance.Instance
	nextID    int

	listCalls   int
	createCalls int
	deleteCalls int

	listErr   error
	createErr error
	deleteErr error

	// listHook runs inside List before it answers, with the call number.
	listHook func(call int)
}

func newFakeBackend(seed ...instance.Instance) *fakeBackend {
	return &fakeBackend{instances: append([]instance.Instance(nil), seed...), nextID: len(seed) + 1}
}

func (f *fakeBackend) List(ctx context.Context) ([]instance.Instance, error) {
	f.mu.Lock()
	f.listCalls++
	call := f.listCalls
	hook := f.listHook
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]instance.Instance, len(f.instances))
	for i, inst := range f.instances {
		out[i] = inst.Clone()
	}
	return out, nil
}

func (f *fakeBackend) Create(ctx context.Context, draft instance.Draft) (*instance.Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	id := fmt.Sprintf("%d", f.nextID)
	f.nextID++
	inst := instance.Instance{
		ID:                  id,
		Name:                draft.Name,
		Description:         draft.Description,
		EndpointURL:         "https://x/" + id,
		PermittedCategories: append([]string(nil), draft.PermittedCategories...),
	}
	f.instances = append(f.instances, inst)
	return &inst, nil
}

func (f *fakeBackend) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, inst := range f.instances {
		if inst.ID == id {
			f.instances = append(f.instances[:i], f.instances[i+1:]...)
			return nil
		}
	}
	return &apiclient.BackendError{Status: 404, Body: `{"detail":"MCP instance not found"}`}
}

func (f *fakeBackend) calls() (list, create, del int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.createCalls, f.deleteCalls
}

func (f *fakeBackend) setListErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

func ids(list []instance.Instance) []string {
	out := make([]string, 0, len(list))
	for _, inst := range list {
		out = append(out, inst.ID)
	}
	return out
}

var errBoom = errors.New("boom")

func sampleInstances() []instance.Instance {
	return []instance.Instance{
		{ID: "1", Name: "Sales MCP", EndpointURL: "https://x/1", PermittedCategories: []string{"Sales"}},
		{ID: "2", Name: "People", EndpointURL: "https://x/2", PermittedCategories: []string{"HR", "Finance"}},
		{ID: "3", Name: "Ops", EndpointURL: "https://x/3", PermittedCategories: []string{"Inventory", "Support", "Sales"}},
	}
}
