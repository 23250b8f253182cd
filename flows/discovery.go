package flows

import (
	"context"

	"github.com/pkg/errors"

	"github.com/stytchauth/stytch-client-go/api"
)

// ErrNoIntermediateSession means a discovery followup was attempted without
// a partial flow underway.
var ErrNoIntermediateSession = errors.New("no intermediate session token pending")

// DiscoverOrganizations lists the organizations available to the partially
// authenticated principal.
func (o *Orchestrator) DiscoverOrganizations(ctx context.Context) (*api.DiscoveryOrganizationsResponse, error) {
	intermediate := o.pendingIntermediate()
	if intermediate == "" {
		return nil, ErrNoIntermediateSession
	}

	return o.service.B2BDiscoveryOrganizations(ctx, &api.B2BDiscoveryOrganizationsParams{
		IntermediateSessionToken: intermediate,
	})
}

// ExchangeIntermediateSession commits the principal to one organization.
// The response may still demand MFA or a primary factor; the classifier
// decides, and the intermediate token survives until a full session lands.
func (o *Orchestrator) ExchangeIntermediateSession(ctx context.Context, organizationID string) (*Outcome, error) {
	intermediate := o.pendingIntermediate()
	if intermediate == "" {
		return nil, ErrNoIntermediateSession
	}

	resp, err := o.service.B2BExchangeIntermediateSession(ctx, &api.B2BExchangeIntermediateSessionParams{
		IntermediateSessionToken: intermediate,
		OrganizationID:           organizationID,
		SessionDurationMinutes:   o.config.SessionDurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	return o.applyB2B(ctx, resp, o.sessions.LastAuthMethod())
}
