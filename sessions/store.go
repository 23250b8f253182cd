package sessions

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/storage"
)

const (
	identityKey       = "session:identity"
	lastAuthMethodKey = "session:last_auth_method"
)

// ErrIncompleteIdentity rejects an Update carrying only one half of the
// token/JWT pair. The store is all-or-nothing; a partial write would leave a
// session that half the app can use and half cannot.
var ErrIncompleteIdentity = errors.New("sessions: session token and session jwt must be set together")

// subscriberBuffer bounds each subscriber channel. A subscriber that falls
// this far behind starts losing the oldest events; session transitions are
// rare enough that this only matters for stuck consumers.
const subscriberBuffer = 8

// Store holds the current identity, persisted through the injected storage
// backend so sessions survive process restarts. The intermediate session
// token is deliberately memory-only: it represents a partially authenticated
// principal and must not outlive the process.
type Store struct {
	repo   storage.Repo
	logger zerolog.Logger

	mu             sync.RWMutex
	current        *Identity
	lastAuthMethod LastAuthMethod
	intermediate   string

	subMu       sync.Mutex
	subscribers map[int]chan Event
	nextSubID   int
}

type StoreOption func(*Store)

func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore hydrates the store from the storage backend so a previously
// persisted session is visible immediately after construction.
func NewStore(ctx context.Context, repo storage.Repo, options ...StoreOption) (*Store, error) {
	if repo == nil {
		return nil, errors.New("[sessions.NewStore] storage repo is required")
	}

	s := &Store{
		repo:        repo,
		logger:      zerolog.Nop(),
		subscribers: make(map[int]chan Event),
	}
	for _, opt := range options {
		opt(s)
	}

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, identityKey)
	switch {
	case err == nil:
		var identity Identity
		if jsonErr := json.Unmarshal([]byte(raw), &identity); jsonErr != nil {
			// A corrupt record is unusable; drop it rather than fail startup.
			s.logger.Warn().Err(jsonErr).Msg("discarding corrupt persisted session")
			_ = s.repo.Delete(ctx, identityKey)
		} else {
			s.current = &identity
		}
	case errors.Is(err, storage.ErrNotFound):
		// No persisted session.
	default:
		return errors.Wrap(err, "[sessions.NewStore] read persisted session")
	}

	if method, err := s.repo.Get(ctx, lastAuthMethodKey); err == nil {
		s.lastAuthMethod = api.AuthMethod(method)
	}
	return nil
}

// Current returns a copy of the stored identity, or nil when no session is
// held.
func (s *Store) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	identity := *s.current
	return &identity
}

// Update replaces the stored identity wholesale and notifies subscribers.
// A full session supersedes any pending intermediate session token, so that
// slot is discarded here too.
func (s *Store) Update(ctx context.Context, identity Identity) error {
	if identity.SessionToken == "" || identity.SessionJWT == "" {
		return ErrIncompleteIdentity
	}

	encoded, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "[Store.Update] encode identity")
	}

	s.mu.Lock()
	// Rewriting the same identity is not a transition; subscribers only
	// hear about content changes.
	if s.current != nil && *s.current == identity && s.intermediate == "" {
		s.mu.Unlock()
		return nil
	}
	if err := s.repo.Set(ctx, identityKey, string(encoded)); err != nil {
		s.mu.Unlock()
		return errors.Wrap(err, "[Store.Update] persist identity")
	}
	stored := identity
	s.current = &stored
	s.intermediate = ""
	s.mu.Unlock()

	s.publish(Event{Kind: SessionAvailable, Identity: &identity})
	return nil
}

// Clear removes the stored identity. Subscribers are notified only when a
// session was actually held, keeping the unavailable event single-fire.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	hadSession := s.current != nil
	if err := s.repo.Delete(ctx, identityKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.mu.Unlock()
		return errors.Wrap(err, "[Store.Clear] delete identity")
	}
	s.current = nil
	s.intermediate = ""
	s.mu.Unlock()

	if hadSession {
		s.publish(Event{Kind: SessionUnavailable})
	}
	return nil
}

// SetLastAuthMethod records the most recently successful factor,
// independently of identity replacement.
func (s *Store) SetLastAuthMethod(ctx context.Context, method LastAuthMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Set(ctx, lastAuthMethodKey, string(method)); err != nil {
		return errors.Wrap(err, "[Store.SetLastAuthMethod] persist method")
	}
	s.lastAuthMethod = method
	return nil
}

func (s *Store) LastAuthMethod() LastAuthMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAuthMethod
}

// SetIntermediateSessionToken stashes the token for a partially
// authenticated principal. Memory-only; it must not outlive the process.
func (s *Store) SetIntermediateSessionToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intermediate = token
}

func (s *Store) IntermediateSessionToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.intermediate
}

func (s *Store) ClearIntermediateSessionToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intermediate = ""
}

// Subscribe registers for session transitions. The returned cancel func must
// be called when done; events arrive on the channel, one per transition.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan Event, subscriberBuffer)
	s.subscribers[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if existing, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(existing)
		}
	}
	return ch, cancel
}

func (s *Store) publish(event Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			// Make room by dropping the oldest event; the subscriber is
			// stalled and the newest state is the one that matters.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- event:
			default:
			}
		}
	}
}
