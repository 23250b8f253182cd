// Package storage defines the secure-storage contract the SDK persists
// state through. Implementations are simple key-value stores with
// last-write-wins semantics; the SDK assumes nothing beyond that.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Repo is the key-value backend the SDK stores session and PKCE state in.
// On mobile this is typically backed by the platform keychain; server-side
// embedders can plug in redis (see redisrepo) or anything else.
type Repo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
