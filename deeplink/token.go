// Package deeplink classifies inbound redirect URLs and routes them to the
// right completion flow, or signals that the UI must take over.
package deeplink

import "net/url"

// TokenType is the token_type discriminator carried by callback URLs. New
// values the service introduces fall through to NotHandled, so additions
// are non-breaking; removing or renaming one of these is breaking.
type TokenType string

const (
	TokenTypeMagicLinks             TokenType = "magic_links"
	TokenTypeOAuth                  TokenType = "oauth"
	TokenTypeResetPassword          TokenType = "reset_password"
	TokenTypeOrganizationMagicLinks TokenType = "multi_tenant_magic_links"
	TokenTypeOrganizationOAuth      TokenType = "multi_tenant_oauth"
	TokenTypeSSO                    TokenType = "sso"
	TokenTypeDiscovery              TokenType = "discovery"
	TokenTypeDiscoveryOAuth         TokenType = "discovery_oauth"
	TokenTypeDiscoveryResetPassword TokenType = "discovery_reset_password"
	TokenTypeInvite                 TokenType = "invite"
)

// CallbackToken is the parsed content of an inbound callback URL. Immutable;
// consumed once by the dispatcher.
type CallbackToken struct {
	Type  TokenType
	Token string
	// EmailHint, when the service includes it, lets the UI prefill the
	// address on manual completions.
	EmailHint string
	// RedirectScheme records the scheme the link arrived on.
	RedirectScheme string
}

// ParseCallbackToken extracts the token and its discriminator from u.
// Returns false when the URL does not match the configured callback
// scheme/host or carries no usable token. Deep links arrive from arbitrary
// sources (stale bookmarks, other apps), so malformed input is a
// non-match, never an error.
func ParseCallbackToken(u *url.URL, scheme, host string) (CallbackToken, bool) {
	if u == nil || u.Scheme != scheme {
		return CallbackToken{}, false
	}
	if host != "" && u.Host != host {
		return CallbackToken{}, false
	}

	query := u.Query()
	token := query.Get("token")
	tokenType := query.Get("stytch_token_type")
	if tokenType == "" {
		tokenType = query.Get("token_type")
	}
	if token == "" || tokenType == "" {
		return CallbackToken{}, false
	}

	return CallbackToken{
		Type:           TokenType(tokenType),
		Token:          token,
		EmailHint:      query.Get("email"),
		RedirectScheme: u.Scheme,
	}, true
}
