package requestutil

import (
	"encoding/hex"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID carries the correlation id in both directions.
const HeaderRequestID = "X-Request-ID"

var (
	requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
	useFallback      atomic.Bool
)

// SanitizeRequestID keeps a well-formed incoming id and mints a new one otherwise.
func SanitizeRequestID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID returns a random UUID, or a hex-encoded timestamp if the RNG fails.
func NewRequestID() string {
	if !useFallback.Load() {
		if id, err := uuid.NewRandom(); err == nil {
			return id.String()
		}
	}
	return hex.EncodeToString([]byte(time.Now().UTC().Format("20060102150405.000000000")))
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer host.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
