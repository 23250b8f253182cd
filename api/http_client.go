package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const defaultRequestTimeout = 30 * time.Second

var _ Service = (*HTTPClient)(nil)

// HTTPClient is the default Service implementation, speaking JSON over HTTP
// to the identity service. The public token identifies the client app; there
// is no secret — these endpoints are designed for public clients.
type HTTPClient struct {
	baseURL     string
	publicToken string
	httpClient  *http.Client
	logger      zerolog.Logger
}

type HTTPClientOption func(*HTTPClient)

// WithHTTPClient overrides the underlying *http.Client (primarily for tests
// and for embedders with proxy/TLS requirements).
func WithHTTPClient(hc *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithLogger enables request/response diagnostics. Logging is best-effort
// and never alters control flow.
func WithLogger(logger zerolog.Logger) HTTPClientOption {
	return func(c *HTTPClient) {
		c.logger = logger
	}
}

func NewHTTPClient(baseURL, publicToken string, options ...HTTPClientOption) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, errors.New("[api.NewHTTPClient] baseURL is required")
	}
	if publicToken == "" {
		return nil, errors.New("[api.NewHTTPClient] publicToken is required")
	}

	c := &HTTPClient{
		baseURL:     baseURL,
		publicToken: publicToken,
		httpClient:  &http.Client{Timeout: defaultRequestTimeout},
		logger:      zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// post sends params as JSON to path and decodes the body into out (out may
// be nil when the caller only cares about success). Non-2xx responses come
// back as *ServerError.
func (c *HTTPClient) post(ctx context.Context, path string, params any, out any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return errors.Wrapf(err, "[HTTPClient.post] encode %s request", path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "[HTTPClient.post] build %s request", path)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.SetBasicAuth(c.publicToken, c.publicToken)

	c.logger.Debug().Str("path", path).Str("request_id", requestID).Msg("identity service request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[HTTPClient.post] %s request failed", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "[HTTPClient.post] read %s response", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverErr := &ServerError{StatusCode: resp.StatusCode, RequestID: requestID}
		if err := json.Unmarshal(raw, serverErr); err != nil {
			serverErr.ErrorType = "internal_server_error"
			serverErr.ErrorMessage = http.StatusText(resp.StatusCode)
		}
		serverErr.StatusCode = resp.StatusCode
		c.logger.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("identity service rejected request")
		return serverErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "[HTTPClient.post] decode %s response", path)
	}
	return nil
}

func (c *HTTPClient) PasswordsAuthenticate(ctx context.Context, params *PasswordsAuthenticateParams) (*AuthenticateResponse, error) {
	var resp AuthenticateResponse
	if err := c.post(ctx, "/passwords/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) PasswordsResetByEmailStart(ctx context.Context, params *ResetByEmailStartParams) error {
	return c.post(ctx, "/passwords/email/reset/start", params, nil)
}

func (c *HTTPClient) PasswordsResetByEmail(ctx context.Context, params *ResetByEmailParams) (*AuthenticateResponse, error) {
	var resp AuthenticateResponse
	if err := c.post(ctx, "/passwords/email/reset", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) MagicLinksSend(ctx context.Context, params *MagicLinksSendParams) error {
	return c.post(ctx, "/magic_links/email/login_or_create", params, nil)
}

func (c *HTTPClient) MagicLinksAuthenticate(ctx context.Context, params *MagicLinksAuthenticateParams) (*AuthenticateResponse, error) {
	var resp AuthenticateResponse
	if err := c.post(ctx, "/magic_links/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) OTPsSend(ctx context.Context, params *OTPsSendParams) (string, error) {
	var resp struct {
		MethodID string `json:"method_id"`
	}
	path := "/otps/email/send"
	if params.PhoneNumber != "" {
		path = "/otps/sms/send"
	}
	if err := c.post(ctx, path, params, &resp); err != nil {
		return "", err
	}
	return resp.MethodID, nil
}

func (c *HTTPClient) OTPsAuthenticate(ctx context.Context, params *OTPsAuthenticateParams) (*AuthenticateResponse, error) {
	var resp AuthenticateResponse
	if err := c.post(ctx, "/otps/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) OAuthAuthenticate(ctx context.Context, params *OAuthAuthenticateParams) (*AuthenticateResponse, error) {
	var resp AuthenticateResponse
	if err := c.post(ctx, "/oauth/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SessionsAuthenticate(ctx context.Context, params *SessionsAuthenticateParams) (*AuthenticateResponse, error) {
	var resp AuthenticateResponse
	if err := c.post(ctx, "/sessions/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SessionsRevoke(ctx context.Context, params *SessionsRevokeParams) error {
	return c.post(ctx, "/sessions/revoke", params, nil)
}

func (c *HTTPClient) B2BPasswordsAuthenticate(ctx context.Context, params *B2BPasswordsAuthenticateParams) (*B2BAuthenticateResponse, error) {
	var resp B2BAuthenticateResponse
	if err := c.post(ctx, "/b2b/passwords/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BMagicLinksAuthenticate(ctx context.Context, params *B2BMagicLinksAuthenticateParams) (*B2BAuthenticateResponse, error) {
	var resp B2BAuthenticateResponse
	if err := c.post(ctx, "/b2b/magic_links/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BMagicLinksDiscoverySend(ctx context.Context, params *B2BMagicLinksDiscoverySendParams) error {
	return c.post(ctx, "/b2b/magic_links/email/discovery/send", params, nil)
}

func (c *HTTPClient) B2BMagicLinksDiscoveryAuthenticate(ctx context.Context, params *B2BMagicLinksDiscoveryAuthenticateParams) (*DiscoveryAuthenticateResponse, error) {
	var resp DiscoveryAuthenticateResponse
	if err := c.post(ctx, "/b2b/magic_links/discovery/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BOAuthAuthenticate(ctx context.Context, params *B2BOAuthAuthenticateParams) (*B2BAuthenticateResponse, error) {
	var resp B2BAuthenticateResponse
	if err := c.post(ctx, "/b2b/oauth/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BOAuthDiscoveryAuthenticate(ctx context.Context, params *B2BOAuthDiscoveryAuthenticateParams) (*DiscoveryAuthenticateResponse, error) {
	var resp DiscoveryAuthenticateResponse
	if err := c.post(ctx, "/b2b/oauth/discovery/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BSSOAuthenticate(ctx context.Context, params *B2BSSOAuthenticateParams) (*B2BAuthenticateResponse, error) {
	var resp B2BAuthenticateResponse
	if err := c.post(ctx, "/b2b/sso/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BDiscoveryOrganizations(ctx context.Context, params *B2BDiscoveryOrganizationsParams) (*DiscoveryOrganizationsResponse, error) {
	var resp DiscoveryOrganizationsResponse
	if err := c.post(ctx, "/b2b/discovery/organizations", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BExchangeIntermediateSession(ctx context.Context, params *B2BExchangeIntermediateSessionParams) (*B2BAuthenticateResponse, error) {
	var resp B2BAuthenticateResponse
	if err := c.post(ctx, "/b2b/discovery/intermediate_sessions/exchange", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BTOTPAuthenticate(ctx context.Context, params *B2BTOTPAuthenticateParams) (*B2BAuthenticateResponse, error) {
	var resp B2BAuthenticateResponse
	if err := c.post(ctx, "/b2b/totp/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) B2BOTPSMSAuthenticate(ctx context.Context, params *B2BOTPSMSAuthenticateParams) (*B2BAuthenticateResponse, error) {
	var resp B2BAuthenticateResponse
	if err := c.post(ctx, "/b2b/otps/sms/authenticate", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
