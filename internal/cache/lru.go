package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRU is an in-process cache with a size bound and a per-entry TTL
type LRU struct {
	cache *expirable.LRU[string, []byte]
}

var _ Cache = (*LRU)(nil)

// NewLRU returns an LRU holding at most size entries for ttl each
func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = 1
	}
	return &LRU{cache: expirable.NewLRU[string, []byte](size, nil, defaultTTL(ttl))}
}

// Get implements Cache.
func (c *LRU) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, ok := c.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), val...), true, nil
}

// Set implements Cache.
func (c *LRU) Set(_ context.Context, key string, val []byte) error {
	c.cache.Add(key, append([]byte(nil), val...))
	return nil
}

// Delete implements Cache.
func (c *LRU) Delete(_ context.Context, key string) error {
	c.cache.Remove(key)
	return nil
}

// Len returns the number of live entries
func (c *LRU) Len() int {
	return c.cache.Len()
}
