package pkce

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/stytchauth/stytch-client-go/storage"
)

// SessionKind separates the consumer and B2B PKCE slots so the two stacks
// never clobber each other's pending pair.
type SessionKind string

const (
	KindConsumer SessionKind = "consumer"
	KindB2B      SessionKind = "b2b"
)

// Manager owns the single pending code pair for one session kind. Writes are
// serialized; the lock is never held across the external redirect — the pair
// is durable in storage while the browser is open.
type Manager struct {
	repo storage.Repo
	kind SessionKind
	lock sync.Mutex
}

func NewManager(repo storage.Repo, kind SessionKind) (*Manager, error) {
	if repo == nil {
		return nil, errors.New("[pkce.NewManager] storage repo is required")
	}
	if kind != KindConsumer && kind != KindB2B {
		return nil, errors.Errorf("[pkce.NewManager] unknown session kind %q", kind)
	}
	return &Manager{repo: repo, kind: kind}, nil
}

func (m *Manager) storageKey() string {
	return "pkce:" + string(m.kind)
}

// GenerateAndStore creates a fresh pair, persists it, and returns it.
// Any previously pending pair for this kind is overwritten.
func (m *Manager) GenerateAndStore(ctx context.Context) (CodePair, error) {
	pair, err := GeneratePair()
	if err != nil {
		return CodePair{}, err
	}

	encoded, err := json.Marshal(pair)
	if err != nil {
		return CodePair{}, errors.Wrap(err, "[Manager.GenerateAndStore] encode pair")
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	if err := m.repo.Set(ctx, m.storageKey(), string(encoded)); err != nil {
		return CodePair{}, errors.Wrap(err, "[Manager.GenerateAndStore] persist pair")
	}
	return pair, nil
}

// Retrieve reads the pending pair without consuming it. Returns ErrNotFound
// when nothing is pending.
func (m *Manager) Retrieve(ctx context.Context) (CodePair, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	raw, err := m.repo.Get(ctx, m.storageKey())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return CodePair{}, ErrNotFound
		}
		return CodePair{}, errors.Wrap(err, "[Manager.Retrieve] read pair")
	}

	var pair CodePair
	if err := json.Unmarshal([]byte(raw), &pair); err != nil {
		// A corrupt record is unusable; treat it the same as missing.
		return CodePair{}, ErrNotFound
	}
	return pair, nil
}

// Clear removes the pending pair. Idempotent; clearing an empty slot is not
// an error.
func (m *Manager) Clear(ctx context.Context) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if err := m.repo.Delete(ctx, m.storageKey()); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return errors.Wrap(err, "[Manager.Clear] delete pair")
	}
	return nil
}
