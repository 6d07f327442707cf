// Package listctrl keeps a server-backed collection's client view consistent
// with user-driven query parameters: debounced re-fetching, wholesale item
// replacement, selection tracking and bulk fan-out. One controller is
// instantiated per resource screen.
package listctrl

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/bipulsingh126/biziwit-admin/gateway"
)

const defaultDebounce = 400 * time.Millisecond

// Query is the user-driven request state: free-text search, discrete filters
// and optional server-side pagination.
type Query struct {
	Search   string
	Filters  map[string]string
	Page     int
	PageSize int
}

func (q Query) clone() Query {
	filters := make(map[string]string, len(q.Filters))
	for key, value := range q.Filters {
		filters[key] = value
	}
	q.Filters = filters
	return q
}

// Config wires a controller to its resource. Fetch and ID are required;
// Create/Update/Delete are optional and only needed when the screen mutates.
type Config[T any] struct {
	Fetch  func(ctx context.Context, q Query) ([]T, error)
	ID     func(item T) string
	Create func(ctx context.Context, item T) error
	Update func(ctx context.Context, id string, item T) error
	Delete func(ctx context.Context, id string) error

	// Debounce is the settle window for query changes. Zero means the
	// default 400ms.
	Debounce time.Duration

	// EmptyOnTrendingMiss downgrades gateway.ErrTrendingNotFound to an empty
	// collection instead of an error banner. Used by trending screens.
	EmptyOnTrendingMiss bool
}

// Controller holds one screen's collection, query and selection state. All
// methods are safe for concurrent use.
type Controller[T any] struct {
	cfg Config[T]

	lock      sync.Mutex
	items     []T
	query     Query
	loading   bool
	lastError string
	selection map[string]struct{}

	seq    uint64 // highest load sequence issued
	timer  *time.Timer
	closed bool
}

// New validates the config and returns an empty, idle controller.
func New[T any](cfg Config[T]) (*Controller[T], error) {
	if cfg.Fetch == nil {
		return nil, errors.New("[listctrl.New] Fetch is required")
	}
	if cfg.ID == nil {
		return nil, errors.New("[listctrl.New] ID is required")
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = defaultDebounce
	}
	return &Controller[T]{
		cfg:       cfg,
		items:     []T{},
		query:     Query{Filters: map[string]string{}},
		selection: map[string]struct{}{},
	}, nil
}

// Load fetches with the current query and replaces the collection with the
// response. Selection is cleared on every settle; a failure empties the
// collection and records the message. The loading flag is guaranteed false
// once the call settles, success or failure.
//
// Every load carries an increasing sequence number and a resolution is only
// applied while its sequence is still the newest issued, so a slow response
// can never overwrite the result of a later query.
func (c *Controller[T]) Load(ctx context.Context) {
	c.lock.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.lastError = ""
	query := c.query.clone()
	c.lock.Unlock()

	items, err := c.cfg.Fetch(ctx, query)
	c.settle(seq, items, err)
}

func (c *Controller[T]) settle(seq uint64, items []T, err error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if seq != c.seq {
		return // a newer load owns the state now
	}

	c.loading = false
	c.selection = map[string]struct{}{}

	if err != nil {
		if c.cfg.EmptyOnTrendingMiss && errors.Is(err, gateway.ErrTrendingNotFound) {
			c.items = []T{}
			return
		}
		c.items = []T{}
		c.lastError = err.Error()
		return
	}

	if items == nil {
		items = []T{}
	}
	c.items = items
}

// SetSearch updates the free-text query and schedules a debounced reload.
func (c *Controller[T]) SetSearch(ctx context.Context, search string) {
	c.lock.Lock()
	c.query.Search = search
	c.query.Page = 0
	c.lock.Unlock()
	c.scheduleLoad(ctx)
}

// SetFilter updates one discrete filter dimension; an empty value removes it.
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) {
	c.lock.Lock()
	if value == "" {
		delete(c.query.Filters, key)
	} else {
		c.query.Filters[key] = value
	}
	c.query.Page = 0
	c.lock.Unlock()
	c.scheduleLoad(ctx)
}

// SetPage moves to a page and schedules a debounced reload.
func (c *Controller[T]) SetPage(ctx context.Context, page int) {
	c.lock.Lock()
	c.query.Page = page
	c.lock.Unlock()
	c.scheduleLoad(ctx)
}

// SetPageSize changes the page size and resets to the first page.
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) {
	c.lock.Lock()
	c.query.PageSize = size
	c.query.Page = 0
	c.lock.Unlock()
	c.scheduleLoad(ctx)
}

// scheduleLoad restarts the single debounce timer. Only the most recent
// pending task ever fires; earlier ones are cancelled.
func (c *Controller[T]) scheduleLoad(ctx context.Context) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.cfg.Debounce, func() {
		c.Load(ctx)
	})
}

// Close cancels any pending debounced load. Further query changes are
// ignored; an explicit Load still works.
func (c *Controller[T]) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// CreateItem runs the configured create then reloads.
func (c *Controller[T]) CreateItem(ctx context.Context, item T) error {
	if c.cfg.Create == nil {
		return errors.New("[Controller.CreateItem] no Create configured")
	}
	return c.mutate(ctx, func(ctx context.Context) error { return c.cfg.Create(ctx, item) })
}

// UpdateItem runs the configured update then reloads.
func (c *Controller[T]) UpdateItem(ctx context.Context, id string, item T) error {
	if c.cfg.Update == nil {
		return errors.New("[Controller.UpdateItem] no Update configured")
	}
	return c.mutate(ctx, func(ctx context.Context) error { return c.cfg.Update(ctx, id, item) })
}

// DeleteItem runs the configured delete then reloads.
func (c *Controller[T]) DeleteItem(ctx context.Context, id string) error {
	if c.cfg.Delete == nil {
		return errors.New("[Controller.DeleteItem] no Delete configured")
	}
	return c.mutate(ctx, func(ctx context.Context) error { return c.cfg.Delete(ctx, id) })
}

func (c *Controller[T]) mutate(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		c.lock.Lock()
		c.lastError = err.Error()
		c.lock.Unlock()
		return err
	}
	c.Load(ctx)
	return nil
}

// PatchItem applies an in-place optimistic edit for instantaneous feedback,
// e.g. a trending toggle. The patch must mirror what the server will return
// on the next load; it does not survive one.
func (c *Controller[T]) PatchItem(id string, patch func(*T)) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	for i := range c.items {
		if c.cfg.ID(c.items[i]) == id {
			patch(&c.items[i])
			return true
		}
	}
	return false
}

// Items returns a copy of the current collection in server order.
func (c *Controller[T]) Items() []T {
	c.lock.Lock()
	defer c.lock.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Loading reports whether a load is in flight.
func (c *Controller[T]) Loading() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.loading
}

// LastError returns the display message for the most recent failure, empty
// when the last operation succeeded.
func (c *Controller[T]) LastError() string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.lastError
}

// Query returns a copy of the current query state.
func (c *Controller[T]) Query() Query {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.query.clone()
}
