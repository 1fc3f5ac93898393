package cache

import "net/url"

// Key builds the cache key endpoint?query with params sorted by name and URL-encoded,
// so equal parameter sets always produce the same key.
func Key(endpoint string, params map[string]string) string {
	q := make(url.Values, len(params))
	for k, v := range params {
		q.Set(k, v)
	}
	return endpoint + "?" + q.Encode()
}
