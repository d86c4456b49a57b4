package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/getmockd/mcpconsole/pkg/instance"
	"github.com/getmockd/mcpconsole/pkg/logging"
)

// ErrUnknownInstance is returned when an action names an id that is not in
// the loaded list.
var ErrUnknownInstance = errors.New("instance not found in the loaded list")

// ErrRefreshAfterChange wraps a refresh failure that followed a successful
// change. The change itself stands; only the displayed list is stale.
var ErrRefreshAfterChange = errors.New("change applied but the list could not be refreshed")

// Console ties the list, form and copy controllers together and keeps the
// single error banner: the message of the most recent failed operation.
type Console struct {
	List      *ListController
	Form      *FormController
	Clipboard *CopyFeedback

	repo Repository
	log  *slog.Logger

	mu     sync.Mutex
	banner string
}

type options struct {
	endpoint   string
	catalog    *instance.Catalog
	clipboard  ClipboardWriter
	copyWindow time.Duration
	log        *slog.Logger
}

// Option configures a Console.
type Option func(*options)

// WithEndpoint sets the backend address quoted in list failure messages.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithCatalog sets the categories offered by the create form.
func WithCatalog(catalog *instance.Catalog) Option {
	return func(o *options) { o.catalog = catalog }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write ClipboardWriter) Option {
	return func(o *options) { o.clipboard = write }
}

// WithCopyWindow sets how long the copied mark is kept.
func WithCopyWindow(d time.Duration) Option {
	return func(o *options) { o.copyWindow = d }
}

// WithLogger sets the logger shared by every controller.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New creates a console backed by repo. The list starts in the Loading
// state; call Refresh to load it.
func New(repo Repository, opts ...Option) *Console {
	o := options{log: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logging.Nop()
	}

	c := &Console{
		repo: repo,
		log:  o.log,
	}
	c.List = NewListController(repo, o.endpoint, o.log.With("component", "list"))
	c.Form = NewFormController(o.catalog, repo, c, o.log.With("component", "form"))
	c.Clipboard = NewCopyFeedback(o.clipboard, o.copyWindow)
	return c
}

// Refresh reloads the list. A failure is shown in the banner.
func (c *Console) Refresh(ctx context.Context) error {
	c.DismissBanner()
	err := c.List.Refresh(ctx)
	if errors.Is(err, ErrSuperseded) {
		return nil
	}
	if err != nil {
		c.setBanner(c.List.Snapshot().Message)
	}
	return err
}

// Submit submits the create form. Validation and backend failures are
// shown both in the form and in the banner.
func (c *Console) Submit(ctx context.Context) (*instance.Instance, error) {
	c.DismissBanner()
	created, err := c.Form.Submit(ctx)
	if err != nil {
		c.setBanner(err.Error())
		return nil, err
	}
	return created, nil
}

// Cancel closes the create form and discards its fields.
func (c *Console) Cancel() {
	c.Form.Cancel()
}

// Delete removes the instance with the given id and refreshes the list on
// success. The id is not checked against the loaded list first; the
// backend decides whether it exists.
func (c *Console) Delete(ctx context.Context, id string) error {
	c.DismissBanner()
	if err := c.repo.Delete(ctx, id); err != nil {
		c.log.Warn("delete failed", "id", id, "error", err)
		c.setBanner(err.Error())
		return err
	}
	c.log.Info("instance deleted", "id", id)
	if err := c.Refresh(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshAfterChange, err)
	}
	return nil
}

// Copy copies the endpoint of a loaded instance and marks it as copied.
func (c *Console) Copy(id string) error {
	inst, ok := c.List.Find(id)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownInstance, id)
		c.setBanner(err.Error())
		return err
	}
	if err := c.Clipboard.Copy(inst.EndpointURL, inst.ID); err != nil {
		c.setBanner(err.Error())
		return err
	}
	return nil
}

// Banner returns the current error message, or "".
func (c *Console) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

// DismissBanner clears the error message.
func (c *Console) DismissBanner() {
	c.setBanner("")
}

// Close stops the copy reset timer.
func (c *Console) Close() {
	c.Clipboard.Stop()
}

func (c *Console) setBanner(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banner = msg
}
