package console

import (
	"context"
	"sync"
)

// QueryCache holds fetched lists by query key until they are invalidated.
// Failed fetches are not cached.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]any
}

func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]any)}
}

func (q *QueryCache) Invalidate(keys ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, k := range keys {
		delete(q.entries, k)
	}
}

func (q *QueryCache) Cached(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.entries[key]
	return ok
}

func (q *QueryCache) get(key string) (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, ok := q.entries[key]
	return v, ok
}

func (q *QueryCache) put(key string, v any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries[key] = v
}

// Query returns the cached value for key, calling fetch only on a miss.
func Query[T any](ctx context.Context, q *QueryCache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := q.get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	q.put(key, v)
	return v, nil
}
