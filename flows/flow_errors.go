package flows

import "errors"

var (
	// ErrMissingPKCE means an authenticate call that must prove a prior
	// challenge found no pending pair. Proceeding would bypass the CSRF
	// protection PKCE provides; the only recovery is restarting the flow
	// from its redirect-initiating step.
	ErrMissingPKCE = errors.New("no pkce code pair pending for this flow")

	// ErrInconsistentState means the service returned a shape that violates
	// its own contract (e.g. authenticated but missing a token). The store
	// is left untouched when this happens.
	ErrInconsistentState = errors.New("identity service response is internally inconsistent")
)
