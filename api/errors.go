package api

import "fmt"

// ServerError is the structured error the identity service returns on any
// 4xx/5xx. The SDK core treats all of them uniformly as "authentication
// failed" and never retries on its own.
type ServerError struct {
	StatusCode   int    `json:"status_code"`
	RequestID    string `json:"request_id"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("identity service error %d (%s): %s", e.StatusCode, e.ErrorType, e.ErrorMessage)
}

// IsUnauthenticated reports whether the service rejected the session itself,
// the one case where the session store should be cleared.
func (e *ServerError) IsUnauthenticated() bool {
	return e.StatusCode == 401
}
