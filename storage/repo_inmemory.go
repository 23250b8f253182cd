package storage

import (
	"context"
	"sync"
)

// InMemoryRepo keeps values in process memory. It is the default backend;
// nothing survives a restart, which suits short-lived tools and tests.
type InMemoryRepo struct {
	lock   sync.RWMutex
	values map[string]string
}

var _ Repo = (*InMemoryRepo)(nil)

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		values: make(map[string]string),
	}
}

func (r *InMemoryRepo) Get(_ context.Context, key string) (string, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	value, ok := r.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (r *InMemoryRepo) Set(_ context.Context, key, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.values[key] = value
	return nil
}

func (r *InMemoryRepo) Delete(_ context.Context, key string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.values, key)
	return nil
}
