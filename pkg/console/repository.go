package console

import (
	"context"

	"github.com/getmockd/mcpconsole/pkg/instance"
)

// Lister fetches the full instance list.
type Lister interface {
	List(ctx context.Context) ([]instance.Instance, error)
}

// Creator provisions an instance from a draft.
type Creator interface {
	Create(ctx context.Context, draft instance.Draft) (*instance.Instance, error)
}

// Deleter removes an instance by id.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// Repository is the backend as seen by the console. *apiclient.Client
// satisfies it.
type Repository interface {
	Lister
	Creator
	Deleter
}

// Refresher re-fetches the instance list.
type Refresher interface {
	Refresh(ctx context.Context) error
}
