package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/getmockd/mcpconsole/pkg/instance"
	"github.com/getmockd/mcpconsole/pkg/logging"
)

// ErrSuperseded is returned by Refresh when a newer refresh was started
// before this one finished. Its result was discarded.
var ErrSuperseded = errors.New("refresh superseded by a newer request")

// Status is the list controller's state.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ListState is a point-in-time copy of the list controller.
//
// Instances is the last successfully loaded list. It is kept while a
// refresh is loading or after one failed, so a failure does not wipe what
// the operator was looking at.
type ListState struct {
	Status    Status
	Instances []instance.Instance
	Message   string // set when Status is StatusFailed
	Err       error
}

// ListController owns the authoritative instance list.
type ListController struct {
	lister   Lister
	endpoint string
	log      *slog.Logger

	mu    sync.Mutex
	seq   uint64
	state ListState
}

// NewListController creates a controller in the Loading state. endpoint is
// included in failure messages.
func NewListController(lister Lister, endpoint string, log *slog.Logger) *ListController {
	if log == nil {
		log = logging.Nop()
	}
	return &ListController{
		lister:   lister,
		endpoint: endpoint,
		log:      log,
		state:    ListState{Status: StatusLoading},
	}
}

// Refresh enters Loading, fetches the list and replaces the collection with
// the backend's answer. Only the most recently started refresh may publish
// its outcome; older ones return ErrSuperseded.
func (c *ListController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state.Status = StatusLoading
	c.state.Message = ""
	c.state.Err = nil
	c.mu.Unlock()

	list, err := c.lister.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.log.Debug("discarding stale refresh", "seq", seq, "latest", c.seq)
		return ErrSuperseded
	}

	if err != nil {
		c.state.Status = StatusFailed
		c.state.Message = fmt.Sprintf("%v (API: %s)", err, c.endpoint)
		c.state.Err = err
		c.log.Warn("refresh failed", "endpoint", c.endpoint, "error", err)
		return err
	}

	replaced := make([]instance.Instance, len(list))
	for i, inst := range list {
		replaced[i] = inst.Clone()
	}
	c.state = ListState{Status: StatusLoaded, Instances: replaced}
	c.log.Debug("refresh complete", "count", len(replaced))
	return nil
}

// Snapshot returns a copy of the current state.
func (c *ListController) Snapshot() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.state
	out.Instances = make([]instance.Instance, len(c.state.Instances))
	for i, inst := range c.state.Instances {
		out.Instances[i] = inst.Clone()
	}
	return out
}

// Find returns the loaded instance with the given id.
func (c *ListController) Find(id string) (instance.Instance, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, inst := range c.state.Instances {
		if inst.ID == id {
			return inst.Clone(), true
		}
	}
	return instance.Instance{}, false
}
