package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache keys. A key of the form "<base>:<variant>" is dropped together with
// its base when the base is invalidated.
const (
	KeyProjectsFeatured = "projects-featured"
	KeyPartners         = "partners"
	KeyStats            = "stats"
	KeyGallery          = "gallery"
	KeyGalleryActive    = KeyGallery + ":active"
	KeySettings         = "settings"

	KeyAdminProjects        = "admin-projects"
	KeyAdminGallery         = "admin-gallery"
	KeyAdminPartners        = "admin-partners"
	KeyAdminStats           = "admin-stats"
	KeyAdminSettings        = "admin-settings"
	KeyAdminContactRequests = "admin-contact-requests"
)

func FeaturedProjectsKey(limit int) string {
	return KeyProjectsFeatured + ":" + strconv.Itoa(limit)
}

// Collection names a stored collection whose mutation invalidates cached
// reads.
type Collection string

const (
	CollectionProjects        Collection = "projects"
	CollectionGallery         Collection = "gallery"
	CollectionPartners        Collection = "partners"
	CollectionStats           Collection = "stats"
	CollectionSettings        Collection = "settings"
	CollectionContactRequests Collection = "contact_requests"
)

var invalidationMap = map[Collection][]string{
	CollectionProjects:        {KeyAdminProjects, KeyProjectsFeatured},
	CollectionGallery:         {KeyAdminGallery, KeyGallery},
	CollectionPartners:        {KeyAdminPartners, KeyPartners},
	CollectionStats:           {KeyAdminStats, KeyStats},
	CollectionSettings:        {KeyAdminSettings, KeySettings},
	CollectionContactRequests: {KeyAdminContactRequests},
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// QueryCache holds query results by key for a freshness window. Concurrent
// loads of one key share a single fetch, and a fetch that started before an
// invalidation of its key never writes its result back.
type QueryCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	epoch   uint64
	dropped map[string]uint64

	group singleflight.Group
}

func NewQueryCache(ttl time.Duration) *QueryCache {
	return &QueryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
		dropped: make(map[string]uint64),
	}
}

func (c *QueryCache) get(key string) (any, bool) {
	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()

	if found && c.now().Before(entry.expiresAt) {
		return entry.value, true
	}
	return nil, false
}

// generation is the epoch of the latest invalidation touching key. Caller
// must hold mu.
func (c *QueryCache) generation(key string) uint64 {
	gen := c.dropped[key]
	if base, _, ok := strings.Cut(key, ":"); ok {
		if g := c.dropped[base]; g > gen {
			gen = g
		}
	}
	return gen
}

func (c *QueryCache) store(key string, gen uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation(key) != gen {
		return
	}
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate drops each key and every "<key>:..." variant, so the next read
// re-fetches.
func (c *QueryCache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	for _, key := range keys {
		c.dropped[key] = c.epoch
		for k := range c.entries {
			if k == key || strings.HasPrefix(k, key+":") {
				delete(c.entries, k)
			}
		}
	}
}

// InvalidateCollection drops every cached read that depends on col.
func (c *QueryCache) InvalidateCollection(col Collection) {
	c.Invalidate(invalidationMap[col]...)
}

// Fetch returns the cached value for key or loads it. The load runs detached
// from the caller's cancellation so other waiters still get the result; a
// caller whose context ends stops waiting and gets ctx.Err().
func Fetch[T any](ctx context.Context, c *QueryCache, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	c.mu.RLock()
	gen := c.generation(key)
	c.mu.RUnlock()

	flight := fmt.Sprintf("%s#%d", key, gen)
	ch := c.group.DoChan(flight, func() (any, error) {
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(key, gen, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		typed, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("cached value for %s has type %T", key, res.Val)
		}
		return typed, nil
	}
}
