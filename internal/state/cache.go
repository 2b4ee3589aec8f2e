package state

import (
	"context"
	"sync"
	"time"

	"github.com/tleaf/barnview/internal/chamber"
)

// Cache serves the most recent status while it is younger than the freshness
// window, so any number of consumers asking for "current status" within one
// render cycle cost exactly one network call. A stale cache triggers a fetch
// through the client; a failed fetch is reported to the caller and never
// overwrites the stored value.
type Cache struct {
	client chamber.API
	store  *Store
	window time.Duration

	mu sync.Mutex // serializes fetches so a window never double-polls
}

// NewCache builds a Cache over the given client and store. The window
// normally equals the refresh interval.
func NewCache(client chamber.API, store *Store, window time.Duration) *Cache {
	return &Cache{client: client, store: store, window: window}
}

// Status returns the cached status when fresh, otherwise fetches a new one.
func (c *Cache) Status(ctx context.Context) (chamber.Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.store.Snapshot()
	if snap.HasStatus && time.Since(snap.StatusAt) < c.window {
		return snap.Status, nil
	}
	return c.fetch(ctx)
}

// Refresh bypasses the freshness window and always fetches.
func (c *Cache) Refresh(ctx context.Context) (chamber.Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetch(ctx)
}

// SetClient swaps the controller client, invalidating nothing: the stored
// snapshot remains the last known state until the next fetch. Used when the
// operator retargets the connection live.
func (c *Cache) SetClient(client chamber.API) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.client = client
}

func (c *Cache) fetch(ctx context.Context) (chamber.Status, error) {
	status, err := c.client.FetchStatus(ctx)
	c.store.SetStatus(status, err)
	if err != nil {
		return chamber.Status{}, err
	}
	return *status, nil
}
