package flows

import (
	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/sessions"
)

// OutcomeKind discriminates the closed set of classifier results.
type OutcomeKind int

const (
	// OutcomeFullyAuthenticated means a full session was issued and stored.
	OutcomeFullyAuthenticated OutcomeKind = iota
	// OutcomeMFARequired means a secondary factor is still owed.
	OutcomeMFARequired
	// OutcomeDiscoveryIntermediate means the principal is verified but not
	// yet bound to an organization.
	OutcomeDiscoveryIntermediate
	// OutcomePrimaryFactorRequired means the chosen organization demands a
	// primary factor before MFA is even evaluated.
	OutcomePrimaryFactorRequired
)

// Outcome is the classified state of an auth flow after a service response.
// Exactly one of the variant fields is set, matching Kind.
type Outcome struct {
	Kind OutcomeKind

	Identity  *sessions.Identity
	MFA       *MFAChallenge
	Discovery *DiscoveryState
	Primary   *PrimaryChallenge
}

// MFAChallenge carries what the UI needs to present a factor chooser.
type MFAChallenge struct {
	IntermediateSessionToken string
	AllowedMethods           []api.MFAMethod
	MemberID                 string
	OrganizationID           string
}

// DiscoveryState carries the organizations the principal may join or enter.
type DiscoveryState struct {
	IntermediateSessionToken string
	EmailAddress             string
	Organizations            []api.DiscoveredOrganization
}

// PrimaryChallenge carries the primary methods the organization accepts.
type PrimaryChallenge struct {
	IntermediateSessionToken string
	AllowedAuthMethods       []api.AuthMethod
}

func fullyAuthenticated(identity sessions.Identity) *Outcome {
	return &Outcome{Kind: OutcomeFullyAuthenticated, Identity: &identity}
}

func mfaRequired(challenge MFAChallenge) *Outcome {
	return &Outcome{Kind: OutcomeMFARequired, MFA: &challenge}
}

func discoveryIntermediate(state DiscoveryState) *Outcome {
	return &Outcome{Kind: OutcomeDiscoveryIntermediate, Discovery: &state}
}

func primaryFactorRequired(challenge PrimaryChallenge) *Outcome {
	return &Outcome{Kind: OutcomePrimaryFactorRequired, Primary: &challenge}
}

// classifyB2B maps a B2B authenticate response onto exactly one outcome.
//
// primary_required wins over mfa_required when both are present: a primary
// factor must be satisfied before MFA is evaluated, and flipping the order
// would let a caller skip required primary authentication.
func classifyB2B(resp *api.B2BAuthenticateResponse) (*Outcome, error) {
	if resp == nil {
		return nil, ErrInconsistentState
	}

	if !resp.MemberAuthenticated {
		if resp.PrimaryRequired != nil {
			return primaryFactorRequired(PrimaryChallenge{
				IntermediateSessionToken: resp.IntermediateSessionToken,
				AllowedAuthMethods:       resp.PrimaryRequired.AllowedAuthMethods,
			}), nil
		}
		if resp.MFARequired != nil {
			challenge := MFAChallenge{
				IntermediateSessionToken: resp.IntermediateSessionToken,
				AllowedMethods:           resp.MFARequired.AllowedMethods,
			}
			if resp.Member != nil {
				challenge.MemberID = resp.Member.MemberID
			}
			if resp.Organization != nil {
				challenge.OrganizationID = resp.Organization.OrganizationID
			}
			return mfaRequired(challenge), nil
		}
		return nil, ErrInconsistentState
	}

	if resp.SessionToken == "" || resp.SessionJWT == "" || resp.Member == nil || resp.Organization == nil {
		return nil, ErrInconsistentState
	}
	return fullyAuthenticated(sessions.Identity{
		MemberID:       resp.Member.MemberID,
		OrganizationID: resp.Organization.OrganizationID,
		SessionToken:   resp.SessionToken,
		SessionJWT:     resp.SessionJWT,
	}), nil
}

// classifyDiscovery maps a discovery authenticate response: always an
// intermediate state, since no organization has been chosen yet.
func classifyDiscovery(resp *api.DiscoveryAuthenticateResponse) (*Outcome, error) {
	if resp == nil || resp.IntermediateSessionToken == "" {
		return nil, ErrInconsistentState
	}
	return discoveryIntermediate(DiscoveryState{
		IntermediateSessionToken: resp.IntermediateSessionToken,
		EmailAddress:             resp.EmailAddress,
		Organizations:            resp.DiscoveredOrganizations,
	}), nil
}

// classifyConsumer maps a consumer authenticate response; consumer flows
// have no MFA or discovery leg, so anything short of a full session is a
// contract violation.
func classifyConsumer(resp *api.AuthenticateResponse) (*Outcome, error) {
	if resp == nil || resp.SessionToken == "" || resp.SessionJWT == "" || resp.UserID == "" {
		return nil, ErrInconsistentState
	}
	return fullyAuthenticated(sessions.Identity{
		UserID:       resp.UserID,
		SessionToken: resp.SessionToken,
		SessionJWT:   resp.SessionJWT,
	}), nil
}
