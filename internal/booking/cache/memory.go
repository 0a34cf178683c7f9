package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory keeps pages in process. Invalidate flushes everything and starts a new
// generation; writes tagged with an older generation are ignored.
type Memory struct {
	mu    sync.Mutex
	gen   int64
	cache *gocache.Cache
}

// NewMemory builds an in-process cache whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Memory{cache: gocache.New(ttl, 2*ttl)}
}

func (m *Memory) Get(_ context.Context, key string) (*tripPage, int64, bool) {
	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	v, ok := m.cache.Get(key)
	if !ok {
		return nil, gen, false
	}
	page, ok := v.(*tripPage)
	return page, gen, ok
}

func (m *Memory) Set(_ context.Context, gen int64, key string, page *tripPage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	m.cache.SetDefault(key, page)
}

func (m *Memory) Invalidate(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.cache.Flush()
}
