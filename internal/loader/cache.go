package loader

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sells-group/litigation-cli/internal/model"
)

// Cache memoizes canonical tables by input fingerprint. Cached tables are
// shared between callers and must not be modified. Only the newest table per
// path is kept.
type Cache struct {
	opts   Options
	tables *gocache.Cache
	group  singleflight.Group
	parse  func(ctx context.Context, path string, content []byte, opts Options) (*model.Table, error)

	mu     sync.Mutex
	latest map[string]string // path -> key of its newest table
}

// NewCache creates a cache. A ttl of 0 keeps entries for the process lifetime.
func NewCache(ttl time.Duration, opts Options) *Cache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := 10 * time.Minute
	if ttl == gocache.NoExpiration {
		cleanup = 0
	}
	return &Cache{
		opts:   opts,
		tables: gocache.New(ttl, cleanup),
		parse:  Parse,
		latest: make(map[string]string),
	}
}

// Get returns the canonical table for path, loading it on first use or when
// the file contents change. Concurrent first loads share one parse, which
// outlives any single caller's context; each caller stops waiting when its
// own ctx is done.
func (c *Cache) Get(ctx context.Context, path string) (*model.Table, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	key := path + "|" + Fingerprint(content, c.opts)

	if v, ok := c.tables.Get(key); ok {
		return v.(*model.Table), nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		t, err := c.parse(loadCtx, path, content, c.opts)
		if err != nil {
			return nil, err
		}
		c.store(path, key, t)
		return t, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			zap.L().Debug("loader: shared concurrent load", zap.String("path", path))
		}
		return res.Val.(*model.Table), nil
	}
}

// store caches t and drops the table previously cached for the same path.
func (c *Cache) store(path, key string, t *model.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables.SetDefault(key, t)
	if old, ok := c.latest[path]; ok && old != key {
		c.tables.Delete(old)
	}
	c.latest[path] = key
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	return c.tables.ItemCount()
}

// Flush drops every cached table.
func (c *Cache) Flush() {
	c.tables.Flush()
	c.mu.Lock()
	clear(c.latest)
	c.mu.Unlock()
}
