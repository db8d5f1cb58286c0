package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Validation errors. No request is sent when a batch reports one of these.
var (
	ErrNoTargets = errors.New("no targets provided")
	ErrNoFiles   = errors.New("no file selected")
)

var errMissingResults = errors.New("response has no results")

// ServerError is a non-2xx answer from the backend
type ServerError struct {
	StatusCode int
	Detail     string // server-provided reason, empty if absent or unparseable
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("analysis: status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("analysis: status %d", e.StatusCode)
}

// TransportError is a failure to encode, send or decode a request
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("analysis %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// parseDetail extracts the `detail` field of an error body. FastAPI sends a
// string for HTTPException and a list of {msg} objects for validation errors.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
