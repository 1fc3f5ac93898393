package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/namousaymane/KooraGoal/internal/logging"
	"github.com/namousaymane/KooraGoal/internal/metrics"
	"github.com/namousaymane/KooraGoal/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	APIHost    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
}

// Client performs GET requests against API-Football and unwraps the response envelope.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient httpDoer
	logger     *slog.Logger
	recorder   *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiHost:    normalizeHost(cfg.APIHost),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
		now:        time.Now,
	}
}

// Fetch issues GET {baseURL}/{endpoint}?{params} and returns the envelope's response field.
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	start := c.now()
	raw, err := c.fetch(ctx, endpoint, params)
	elapsed := c.now().Sub(start)
	c.recorder.RecordUpstreamAttempt(endpoint, elapsed, err)

	logger := logging.FromContext(ctx, c.logger)
	if err != nil {
		logging.Warn(logger, "upstream request failed",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldEndpoint, endpoint),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}
	logging.Debug(logger, "upstream request ok",
		slog.String(logging.FieldProvider, providerName),
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return raw, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	req, err := c.buildRequest(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request %s: %w", providerName, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get(headerRemaining),
			Message:    strings.TrimSpace(string(body)),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", providerName, err)
	}
	return decodeEnvelope(body, resp.Header.Get(headerRemaining))
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, params map[string]string) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerAPIHost, c.apiHost)
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	return req, nil
}
