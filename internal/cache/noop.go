package cache

import "context"

type noopCache struct{}

var _ Cache = noopCache{}

// NewNoop returns a cache that never stores anything
func NewNoop() Cache {
	return noopCache{}
}

// Get implements Cache.
func (noopCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set implements Cache.
func (noopCache) Set(_ context.Context, _ string, _ []byte) error {
	return nil
}

// Delete implements Cache.
func (noopCache) Delete(_ context.Context, _ string) error {
	return nil
}
