package deeplink

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/stytchauth/stytch-client-go/flows"
)

// Disposition says what the dispatcher did with a URL.
type Disposition int

const (
	// NotHandled means the URL is not ours (wrong scheme, no token,
	// unknown discriminator); the host app should process it.
	NotHandled Disposition = iota
	// Handled means a completion flow ran; Outcome carries the result.
	Handled
	// ManualHandlingRequired means the flow cannot complete headlessly
	// (e.g. the user must enter a new password); the UI layer finishes it
	// with the raw token.
	ManualHandlingRequired
)

// Result is the outcome of dispatching one inbound URL.
type Result struct {
	Disposition Disposition
	Callback    CallbackToken  // set unless NotHandled
	Outcome     *flows.Outcome // set when Handled succeeded
}

// Authenticator is the slice of the orchestrator the dispatcher completes
// flows through. Tests substitute a fake.
type Authenticator interface {
	AuthenticateMagicLink(ctx context.Context, token string) (*flows.Outcome, error)
	AuthenticateOAuth(ctx context.Context, token string) (*flows.Outcome, error)
	B2BAuthenticateMagicLink(ctx context.Context, token string) (*flows.Outcome, error)
	AuthenticateDiscoveryMagicLink(ctx context.Context, token string) (*flows.Outcome, error)
	B2BAuthenticateOAuth(ctx context.Context, token string) (*flows.Outcome, error)
	B2BAuthenticateDiscoveryOAuth(ctx context.Context, token string) (*flows.Outcome, error)
	AuthenticateSSO(ctx context.Context, token string) (*flows.Outcome, error)
}

var _ Authenticator = (*flows.Orchestrator)(nil)

// Dispatcher routes callback URLs to completion handlers. It never retries
// network failures; errors surface to the caller, who owns retry policy.
type Dispatcher struct {
	auth   Authenticator
	scheme string
	host   string
	logger zerolog.Logger
}

type DispatcherOption func(*Dispatcher)

func WithLogger(logger zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher configures routing for the given callback scheme. host is
// optional; when set, URLs on other hosts are NotHandled.
func NewDispatcher(auth Authenticator, scheme, host string, options ...DispatcherOption) (*Dispatcher, error) {
	if auth == nil {
		return nil, errors.New("[deeplink.NewDispatcher] authenticator is required")
	}
	if scheme == "" {
		return nil, errors.New("[deeplink.NewDispatcher] callback scheme is required")
	}

	d := &Dispatcher{
		auth:   auth,
		scheme: scheme,
		host:   host,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(d)
	}
	return d, nil
}

// Handle inspects u and either completes the flow, asks the UI to take
// over, or declines. A declined URL has no side effects on any SDK state.
func (d *Dispatcher) Handle(ctx context.Context, u *url.URL) (Result, error) {
	callback, ok := ParseCallbackToken(u, d.scheme, d.host)
	if !ok {
		return Result{Disposition: NotHandled}, nil
	}

	d.logger.Debug().Str("token_type", string(callback.Type)).Msg("dispatching callback token")

	var (
		outcome *flows.Outcome
		err     error
	)
	switch callback.Type {
	case TokenTypeMagicLinks:
		outcome, err = d.auth.AuthenticateMagicLink(ctx, callback.Token)
	case TokenTypeOAuth:
		outcome, err = d.auth.AuthenticateOAuth(ctx, callback.Token)
	case TokenTypeOrganizationMagicLinks:
		outcome, err = d.auth.B2BAuthenticateMagicLink(ctx, callback.Token)
	case TokenTypeOrganizationOAuth:
		outcome, err = d.auth.B2BAuthenticateOAuth(ctx, callback.Token)
	case TokenTypeSSO:
		outcome, err = d.auth.AuthenticateSSO(ctx, callback.Token)
	case TokenTypeDiscovery:
		outcome, err = d.auth.AuthenticateDiscoveryMagicLink(ctx, callback.Token)
	case TokenTypeDiscoveryOAuth:
		outcome, err = d.auth.B2BAuthenticateDiscoveryOAuth(ctx, callback.Token)
	case TokenTypeResetPassword, TokenTypeDiscoveryResetPassword, TokenTypeInvite:
		// Completing these requires user input (a new password, an accept
		// screen); hand the raw token to the UI.
		return Result{Disposition: ManualHandlingRequired, Callback: callback}, nil
	default:
		return Result{Disposition: NotHandled}, nil
	}

	if err != nil {
		return Result{Disposition: Handled, Callback: callback}, err
	}
	return Result{Disposition: Handled, Callback: callback, Outcome: outcome}, nil
}
