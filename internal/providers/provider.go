package providers

import (
	"context"
	"encoding/json"
)

// Fetcher performs one upstream GET and returns the envelope's response field.
// endpoint is a path relative to the API base ("fixtures", "teams", ...).
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error)

func (f FetcherFunc) Fetch(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	return f(ctx, endpoint, params)
}
