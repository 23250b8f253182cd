package fakestoragerepo

import (
	"context"
	"sync"

	"github.com/stytchauth/stytch-client-go/storage"
)

var _ storage.Repo = (*FakeStorageRepo)(nil)

// FakeStorageRepo is an in-memory storage.Repo for tests and examples.
type FakeStorageRepo struct {
	values map[string]string
	lock   sync.RWMutex

	// FailNext, when set, makes the next mutating call return the error
	// and then resets. Lets tests exercise backend-failure paths.
	FailNext error
}

func NewFakeStorageRepo() *FakeStorageRepo {
	return &FakeStorageRepo{
		values: make(map[string]string),
	}
}

func (sr *FakeStorageRepo) Get(_ context.Context, key string) (string, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	v, ok := sr.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (sr *FakeStorageRepo) Set(_ context.Context, key string, value string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if err := sr.takeFailure(); err != nil {
		return err
	}
	sr.values[key] = value
	return nil
}

func (sr *FakeStorageRepo) Delete(_ context.Context, key string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if err := sr.takeFailure(); err != nil {
		return err
	}
	delete(sr.values, key)
	return nil
}

// Len reports how many keys are stored, for test assertions.
func (sr *FakeStorageRepo) Len() int {
	sr.lock.RLock()
	defer sr.lock.RUnlock()
	return len(sr.values)
}

func (sr *FakeStorageRepo) takeFailure() error {
	err := sr.FailNext
	sr.FailNext = nil
	return err
}
