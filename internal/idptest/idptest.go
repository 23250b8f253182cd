// Package idptest runs a fake identity service over HTTP for tests that
// exercise the real transport instead of the servicefake.
package idptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
)

// Server is a scriptable identity service. Register a JSON response per
// endpoint path, then point an api.HTTPClient at URL().
type Server struct {
	httpServer *httptest.Server
	router     *mux.Router

	lock     sync.Mutex
	requests []RecordedRequest
}

// RecordedRequest captures one inbound call for assertions.
type RecordedRequest struct {
	Path string
	Body map[string]any
}

func NewServer() *Server {
	s := &Server{router: mux.NewRouter()}
	s.httpServer = httptest.NewServer(s.router)
	return s
}

func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Close() {
	s.httpServer.Close()
}

// Requests returns the calls received so far, in order.
func (s *Server) Requests() []RecordedRequest {
	s.lock.Lock()
	defer s.lock.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// RespondJSON scripts a POST endpoint to return status with the given
// payload, recording each request body it receives.
func (s *Server) RespondJSON(path string, status int, payload any) {
	s.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		s.lock.Lock()
		s.requests = append(s.requests, RecordedRequest{Path: path, Body: body})
		s.lock.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}).Methods(http.MethodPost)
}
