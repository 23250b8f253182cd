package flows

import (
	"context"

	"github.com/pkg/errors"

	"github.com/stytchauth/stytch-client-go/api"
)

// ErrNoSession means a session operation was attempted with nothing stored.
var ErrNoSession = errors.New("no session held")

// RefreshSession re-authenticates the stored session, persisting the
// rotated token/JWT pair atomically. A 401 from the service means the
// session is gone server-side; the local copy is cleared to match.
func (o *Orchestrator) RefreshSession(ctx context.Context) (*Outcome, error) {
	current := o.sessions.Current()
	if current == nil {
		return nil, ErrNoSession
	}

	resp, err := o.service.SessionsAuthenticate(ctx, &api.SessionsAuthenticateParams{
		SessionToken:           current.SessionToken,
		SessionDurationMinutes: o.config.SessionDurationMinutes,
	})
	if err != nil {
		var serverErr *api.ServerError
		if errors.As(err, &serverErr) && serverErr.IsUnauthenticated() {
			if clearErr := o.sessions.Clear(ctx); clearErr != nil {
				o.logger.Warn().Err(clearErr).Msg("failed to clear rejected session")
			}
		}
		return nil, err
	}

	if resp == nil || resp.SessionToken == "" || resp.SessionJWT == "" {
		return nil, ErrInconsistentState
	}

	// The principal doesn't change on refresh; only the token pair rotates.
	identity := *current
	identity.SessionToken = resp.SessionToken
	identity.SessionJWT = resp.SessionJWT
	if err := o.sessions.Update(ctx, identity); err != nil {
		return nil, err
	}
	return fullyAuthenticated(identity), nil
}

// RevokeSession logs out. With force set, local state is cleared even when
// the network revoke fails, so a device can always sign out offline.
func (o *Orchestrator) RevokeSession(ctx context.Context, force bool) error {
	current := o.sessions.Current()
	if current == nil {
		return nil
	}

	revokeErr := o.service.SessionsRevoke(ctx, &api.SessionsRevokeParams{
		SessionToken: current.SessionToken,
	})
	if revokeErr != nil && !force {
		var serverErr *api.ServerError
		if !errors.As(revokeErr, &serverErr) || !serverErr.IsUnauthenticated() {
			return revokeErr
		}
		// Already unauthenticated server-side; fall through and clear.
	}

	if err := o.sessions.Clear(ctx); err != nil {
		return err
	}
	return revokeErr
}
