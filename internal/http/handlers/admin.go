package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/namousaymane/KooraGoal/internal/http/requestutil"
	"github.com/namousaymane/KooraGoal/internal/logging"
	"github.com/namousaymane/KooraGoal/internal/metrics"
)

// AdminHandler exposes operator endpoints guarded by a bearer token.
type AdminHandler struct {
	recorder *metrics.Recorder
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(recorder *metrics.Recorder, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		recorder: recorder,
		token:    token,
		logger:   logger,
	}
}

type endpointStats struct {
	Endpoint          string `json:"endpoint"`
	UpstreamCalls     int    `json:"upstreamCalls"`
	UpstreamErrors    int    `json:"upstreamErrors"`
	RateLimitHits     int    `json:"rateLimitHits"`
	LastRetryAfterMS  int64  `json:"lastRetryAfterMs"`
	LastCallLatencyMS int64  `json:"lastCallLatencyMs"`
	CacheHits         int    `json:"cacheHits"`
	CacheMisses       int    `json:"cacheMisses"`
	CacheStale        int    `json:"cacheStale"`
	CacheCorrupt      int    `json:"cacheCorrupt"`
	CacheWrites       int    `json:"cacheWrites"`
	CacheWriteErrors  int    `json:"cacheWriteErrors"`
}

// CacheStats reports per-endpoint cache and upstream counters so quota usage can be checked.
// Returns 401 without a valid token.
func (h *AdminHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	endpoints := h.recorder.Endpoints()
	out := make([]endpointStats, 0, len(endpoints))
	for _, endpoint := range endpoints {
		snap := h.recorder.Snapshot(endpoint)
		out = append(out, endpointStats{
			Endpoint:          endpoint,
			UpstreamCalls:     snap.UpstreamCalls,
			UpstreamErrors:    snap.UpstreamErrors,
			RateLimitHits:     snap.RateLimitHits,
			LastRetryAfterMS:  snap.LastRetryAfter.Milliseconds(),
			LastCallLatencyMS: snap.LastCallLatency.Milliseconds(),
			CacheHits:         snap.CacheHits,
			CacheMisses:       snap.CacheMisses,
			CacheStale:        snap.CacheStale,
			CacheCorrupt:      snap.CacheCorrupt,
			CacheWrites:       snap.CacheWrites,
			CacheWriteErrors:  snap.CacheWriteErrors,
		})
	}
	writeJSON(w, http.StatusOK, out, loggerFromContext(r, h.logger))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+h.token)) == 1
}
