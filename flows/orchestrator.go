// Package flows composes the PKCE manager, the session store and the
// network collaborator into the per-method login flows, and classifies
// service responses into the next flow state.
package flows

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/pkce"
	"github.com/stytchauth/stytch-client-go/sessions"
)

// Config carries the values flows embed in outbound requests and start URLs.
type Config struct {
	// PublicToken identifies the client app to the identity service. It is
	// not a secret; these flows are designed for public clients.
	PublicToken string
	// PublicBaseURL is the base for redirect-initiating start URLs.
	PublicBaseURL string
	// LoginRedirectURL and SignupRedirectURL are where the identity
	// provider sends the browser after a redirect-based flow. They must be
	// URLs the deep-link dispatcher recognizes.
	LoginRedirectURL  string
	SignupRedirectURL string
	// SessionDurationMinutes is requested on every authenticate call.
	SessionDurationMinutes int
}

// Deps bundles the orchestrator's collaborators, validated at construction
// so a half-wired orchestrator can't exist.
type Deps struct {
	Service      api.Service
	Sessions     *sessions.Store
	ConsumerPKCE *pkce.Manager
	B2BPKCE      *pkce.Manager
}

// Orchestrator drives the multi-step login flows. It owns no transport and
// no UI: it decides which state to attach to each call, how to interpret
// the result, and what to persist.
type Orchestrator struct {
	service      api.Service
	sessions     *sessions.Store
	consumerPKCE *pkce.Manager
	b2bPKCE      *pkce.Manager
	config       Config
	logger       zerolog.Logger
}

type OrchestratorOption func(*Orchestrator)

// WithLogger enables best-effort diagnostics; logging never alters flow
// control.
func WithLogger(logger zerolog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func NewOrchestrator(deps Deps, config Config, options ...OrchestratorOption) (*Orchestrator, error) {
	if deps.Service == nil {
		return nil, errors.New("[NewOrchestrator] api service is required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("[NewOrchestrator] session store is required")
	}
	if deps.ConsumerPKCE == nil {
		return nil, errors.New("[NewOrchestrator] consumer pkce manager is required")
	}
	if deps.B2BPKCE == nil {
		return nil, errors.New("[NewOrchestrator] b2b pkce manager is required")
	}
	if config.PublicToken == "" {
		return nil, errors.New("[NewOrchestrator] public token is required")
	}
	if config.SessionDurationMinutes <= 0 {
		config.SessionDurationMinutes = 30
	}

	o := &Orchestrator{
		service:      deps.Service,
		sessions:     deps.Sessions,
		consumerPKCE: deps.ConsumerPKCE,
		b2bPKCE:      deps.B2BPKCE,
		config:       config,
		logger:       zerolog.Nop(),
	}
	for _, opt := range options {
		opt(o)
	}
	return o, nil
}

// Sessions exposes the session store for subscription and inspection.
func (o *Orchestrator) Sessions() *sessions.Store {
	return o.sessions
}

// consumePKCE retrieves the pending pair for manager, runs fn with it, and
// clears the pair on every exit path — success, error or panic. A failed
// exchange can never be retried with the same pair (the service invalidates
// challenges on first use), so leaving it pending would only block the next
// attempt.
func (o *Orchestrator) consumePKCE(ctx context.Context, manager *pkce.Manager, fn func(pair pkce.CodePair) error) error {
	pair, err := manager.Retrieve(ctx)
	if err != nil {
		if errors.Is(err, pkce.ErrNotFound) {
			return ErrMissingPKCE
		}
		return err
	}

	defer func() {
		if clearErr := manager.Clear(ctx); clearErr != nil {
			o.logger.Warn().Err(clearErr).Msg("failed to clear consumed pkce pair")
		}
	}()
	return fn(pair)
}

// applyConsumer persists a consumer success and records the factor used.
func (o *Orchestrator) applyConsumer(ctx context.Context, resp *api.AuthenticateResponse, method api.AuthMethod) (*Outcome, error) {
	outcome, err := classifyConsumer(resp)
	if err != nil {
		return nil, err
	}
	if err := o.sessions.Update(ctx, *outcome.Identity); err != nil {
		return nil, err
	}
	o.recordAuthMethod(ctx, method)
	return outcome, nil
}

// applyB2B classifies a B2B response and performs the state transition it
// calls for: store update on full auth, intermediate-token retention on
// MFA/primary demands.
func (o *Orchestrator) applyB2B(ctx context.Context, resp *api.B2BAuthenticateResponse, method api.AuthMethod) (*Outcome, error) {
	outcome, err := classifyB2B(resp)
	if err != nil {
		return nil, err
	}

	switch outcome.Kind {
	case OutcomeFullyAuthenticated:
		if err := o.sessions.Update(ctx, *outcome.Identity); err != nil {
			return nil, err
		}
		// A full session makes any still-pending B2B pair stale.
		if clearErr := o.b2bPKCE.Clear(ctx); clearErr != nil {
			o.logger.Warn().Err(clearErr).Msg("failed to clear pkce pair after full authentication")
		}
		o.recordAuthMethod(ctx, method)
	case OutcomeMFARequired:
		o.sessions.SetIntermediateSessionToken(outcome.MFA.IntermediateSessionToken)
	case OutcomePrimaryFactorRequired:
		o.sessions.SetIntermediateSessionToken(outcome.Primary.IntermediateSessionToken)
	}
	return outcome, nil
}

// applyDiscovery retains the intermediate token so followup calls compose
// without the caller re-threading state.
func (o *Orchestrator) applyDiscovery(resp *api.DiscoveryAuthenticateResponse) (*Outcome, error) {
	outcome, err := classifyDiscovery(resp)
	if err != nil {
		return nil, err
	}
	o.sessions.SetIntermediateSessionToken(outcome.Discovery.IntermediateSessionToken)
	return outcome, nil
}

// recordAuthMethod is best-effort: a failed hint write must not fail a
// successful login.
func (o *Orchestrator) recordAuthMethod(ctx context.Context, method api.AuthMethod) {
	if err := o.sessions.SetLastAuthMethod(ctx, method); err != nil {
		o.logger.Warn().Err(err).Str("method", string(method)).Msg("failed to record last auth method")
	}
}

// pendingIntermediate returns the intermediate session token to thread into
// the next call, empty when no partial flow is underway.
func (o *Orchestrator) pendingIntermediate() string {
	return o.sessions.IntermediateSessionToken()
}
