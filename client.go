package stytch

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/deeplink"
	"github.com/stytchauth/stytch-client-go/flows"
	"github.com/stytchauth/stytch-client-go/pkce"
	"github.com/stytchauth/stytch-client-go/sessions"
	"github.com/stytchauth/stytch-client-go/storage"
)

const defaultAPIBaseURL = "https://api.stytch.com/v1"

// Config carries the project-level settings a client needs. Only
// PublicToken is mandatory; everything else has a usable default.
type Config struct {
	// PublicToken identifies the client app. It is not a secret.
	PublicToken string
	// ProjectID is needed only for local JWT verification.
	ProjectID string
	// APIBaseURL defaults to the hosted identity service.
	APIBaseURL string
	// PublicBaseURL is the base for redirect-initiating start URLs
	// (OAuth/SSO). Defaults to APIBaseURL.
	PublicBaseURL string
	// LoginRedirectURL and SignupRedirectURL are where redirect-based
	// flows land; they should resolve to URLs HandleDeepLink recognizes.
	LoginRedirectURL  string
	SignupRedirectURL string
	// CallbackScheme is the custom URL scheme the app claims for inbound
	// deep links, e.g. "myapp". Leave empty to disable dispatching.
	CallbackScheme string
	// CallbackHost optionally restricts dispatching to one host.
	CallbackHost string
	// JWKSURL overrides the verification key endpoint derived from
	// APIBaseURL and ProjectID.
	JWKSURL string
	// SessionDurationMinutes is requested on every authenticate call.
	// Defaults to 30.
	SessionDurationMinutes int
}

// Client bundles the assembled SDK: one session store, one PKCE slot per
// session kind, the flow orchestrator, and an optional deep-link
// dispatcher. Construct one per project and share it.
type Client struct {
	config    Config
	service   api.Service
	store     *sessions.Store
	flows     *flows.Orchestrator
	deepLinks *deeplink.Dispatcher
	logger    zerolog.Logger
}

func NewClient(ctx context.Context, config Config, options ...ClientOption) (*Client, error) {
	if config.PublicToken == "" {
		return nil, errors.New("[stytch.NewClient] public token is required")
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = defaultAPIBaseURL
	}
	if config.PublicBaseURL == "" {
		config.PublicBaseURL = config.APIBaseURL
	}

	opts := clientOptions{logger: zerolog.Nop()}
	for _, opt := range options {
		opt(&opts)
	}

	repo := opts.storage
	if repo == nil {
		repo = storage.NewInMemoryRepo()
	}

	service := opts.service
	if service == nil {
		apiOptions := []api.HTTPClientOption{api.WithLogger(opts.logger)}
		if opts.httpClient != nil {
			apiOptions = append(apiOptions, api.WithHTTPClient(opts.httpClient))
		}
		httpService, err := api.NewHTTPClient(config.APIBaseURL, config.PublicToken, apiOptions...)
		if err != nil {
			return nil, err
		}
		service = httpService
	}

	store, err := sessions.NewStore(ctx, repo, sessions.WithLogger(opts.logger))
	if err != nil {
		return nil, err
	}

	consumerPKCE, err := pkce.NewManager(repo, pkce.KindConsumer)
	if err != nil {
		return nil, err
	}
	b2bPKCE, err := pkce.NewManager(repo, pkce.KindB2B)
	if err != nil {
		return nil, err
	}

	orchestrator, err := flows.NewOrchestrator(
		flows.Deps{
			Service:      service,
			Sessions:     store,
			ConsumerPKCE: consumerPKCE,
			B2BPKCE:      b2bPKCE,
		},
		flows.Config{
			PublicToken:            config.PublicToken,
			PublicBaseURL:          config.PublicBaseURL,
			LoginRedirectURL:       config.LoginRedirectURL,
			SignupRedirectURL:      config.SignupRedirectURL,
			SessionDurationMinutes: config.SessionDurationMinutes,
		},
		flows.WithLogger(opts.logger),
	)
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:  config,
		service: service,
		store:   store,
		flows:   orchestrator,
		logger:  opts.logger,
	}

	if config.CallbackScheme != "" {
		dispatcher, err := deeplink.NewDispatcher(orchestrator, config.CallbackScheme, config.CallbackHost,
			deeplink.WithLogger(opts.logger))
		if err != nil {
			return nil, err
		}
		client.deepLinks = dispatcher
	}
	return client, nil
}

// Flows exposes the per-method login operations.
func (c *Client) Flows() *flows.Orchestrator {
	return c.flows
}

// Sessions exposes the session store for inspection and subscription.
func (c *Client) Sessions() *sessions.Store {
	return c.store
}

// API exposes the raw service collaborator for calls the flow layer does
// not wrap.
func (c *Client) API() api.Service {
	return c.service
}

// HandleDeepLink routes an inbound URL through the dispatcher. Without a
// configured CallbackScheme every URL is NotHandled.
func (c *Client) HandleDeepLink(ctx context.Context, u *url.URL) (deeplink.Result, error) {
	if c.deepLinks == nil {
		return deeplink.Result{Disposition: deeplink.NotHandled}, nil
	}
	return c.deepLinks.Handle(ctx, u)
}

// NewSessionVerifier builds a local JWT verifier against the project's
// published keys. Requires ProjectID.
func (c *Client) NewSessionVerifier(ctx context.Context) (*sessions.Verifier, error) {
	if c.config.ProjectID == "" {
		return nil, errors.New("[Client.NewSessionVerifier] project id is required")
	}
	jwksURL := c.config.JWKSURL
	if jwksURL == "" {
		jwksURL = c.config.APIBaseURL + "/sessions/jwks/" + c.config.ProjectID
	}
	return sessions.NewVerifier(ctx, jwksURL, c.config.ProjectID)
}
