package stytch

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/storage"
)

type clientOptions struct {
	storage    storage.Repo
	service    api.Service
	httpClient *http.Client
	logger     zerolog.Logger
}

type ClientOption func(*clientOptions)

// WithStorage swaps the persistence backend. The default keeps everything
// in process memory; pass a durable Repo (e.g. redisrepo) to survive
// restarts.
func WithStorage(repo storage.Repo) ClientOption {
	return func(o *clientOptions) {
		o.storage = repo
	}
}

// WithService replaces the network collaborator entirely. Primarily for
// tests wiring a fake service.
func WithService(service api.Service) ClientOption {
	return func(o *clientOptions) {
		o.service = service
	}
}

// WithHTTPClient overrides the *http.Client used by the default service.
// Ignored when WithService is also given.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithLogger threads a logger through every component. Logging is
// best-effort and never alters control flow.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
