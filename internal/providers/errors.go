package providers

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no upstream is wired.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrNoResponse means the envelope carried no usable response field.
	ErrNoResponse = errors.New("upstream response missing")
)

// StatusError reports a non-2xx upstream reply.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// UpstreamError carries failures the API reports inside a 200 body.
type UpstreamError struct {
	Provider string
	Messages []string
}

func (e *UpstreamError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s: upstream reported an error", e.Provider)
	}
	return fmt.Sprintf("%s: %s", e.Provider, strings.Join(e.Messages, "; "))
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
