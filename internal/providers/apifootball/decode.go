package apifootball

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/namousaymane/KooraGoal/internal/providers"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type envelope struct {
	Errors   json.RawMessage `json:"errors"`
	Response json.RawMessage `json:"response"`
}

// decodeEnvelope unwraps {errors, response}. A missing or null response is ErrNoResponse.
func decodeEnvelope(body []byte, remaining string) (json.RawMessage, error) {
	var env envelope
	if err := jsonAPI.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%s: decode envelope: %w", providerName, err)
	}

	if messages, rateLimited := upstreamErrors(env.Errors); len(messages) > 0 {
		if rateLimited {
			return nil, &providers.RateLimitError{
				Provider:  providerName,
				Remaining: remaining,
				Message:   strings.Join(messages, "; "),
			}
		}
		return nil, &providers.UpstreamError{Provider: providerName, Messages: messages}
	}

	trimmed := bytes.TrimSpace(env.Response)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, providers.ErrNoResponse
	}
	return json.RawMessage(trimmed), nil
}

// upstreamErrors flattens the errors field, which is [] when clean and an
// object keyed by error kind otherwise.
func upstreamErrors(raw json.RawMessage) ([]string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}

	var keyed map[string]any
	if err := jsonAPI.Unmarshal(raw, &keyed); err == nil {
		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var (
			messages    []string
			rateLimited bool
		)
		for _, k := range keys {
			msg := fmt.Sprint(keyed[k])
			messages = append(messages, msg)
			if isRateLimitMessage(k, msg) {
				rateLimited = true
			}
		}
		return messages, rateLimited
	}

	var list []any
	if err := jsonAPI.Unmarshal(raw, &list); err == nil {
		var (
			messages    []string
			rateLimited bool
		)
		for _, item := range list {
			msg := fmt.Sprint(item)
			messages = append(messages, msg)
			if isRateLimitMessage("", msg) {
				rateLimited = true
			}
		}
		return messages, rateLimited
	}

	return []string{string(raw)}, false
}

func isRateLimitMessage(key, msg string) bool {
	switch strings.ToLower(key) {
	case "ratelimit", "requests":
		return true
	}
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "request limit") ||
		strings.Contains(lower, "too many requests")
}
