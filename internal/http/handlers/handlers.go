package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/namousaymane/KooraGoal/internal/domain/matches"
	"github.com/namousaymane/KooraGoal/internal/domain/stats"
	"github.com/namousaymane/KooraGoal/internal/domain/teams"
	"github.com/namousaymane/KooraGoal/internal/logging"
	"github.com/namousaymane/KooraGoal/internal/timeutil"
)

// Querier is the football query surface served over HTTP.
type Querier interface {
	LiveMatches(ctx context.Context) []matches.Summary
	UpcomingMatches(ctx context.Context) []matches.Summary
	MatchesByDate(ctx context.Context, date string) []matches.Fixture
	MatchesByLeague(ctx context.Context, date string) []matches.LeagueGroup
	MatchDetails(ctx context.Context, id string) *matches.Detail
	MatchStatistics(ctx context.Context, id string) []stats.Statistic
	HeadToHead(ctx context.Context, team1, team2 string) []matches.HeadToHead
	TeamDetails(ctx context.Context, id string) *teams.Team
	DateStrip() []matches.Day
}

// ReadyFunc reports whether dependencies can serve traffic.
type ReadyFunc func(ctx context.Context) error

// Handler wires HTTP routes to the query service.
type Handler struct {
	svc    Querier
	logger *slog.Logger
	ready  ReadyFunc
}

// NewHandler constructs a Handler. A nil ready func always reports ready.
func NewHandler(svc Querier, logger *slog.Logger, ready ReadyFunc) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
		ready:  ready,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ready == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if err := h.ready(r.Context()); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "readiness check failed", slog.Any("error", err))
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// LiveMatches returns fixtures in play.
func (h *Handler) LiveMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.svc.LiveMatches(r.Context()), h.logger)
}

// UpcomingMatches returns the next scheduled fixtures.
func (h *Handler) UpcomingMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.svc.UpcomingMatches(r.Context()), h.logger)
}

// Matches returns the fixtures of ?date= (default today), grouped by league when ?group=league.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	date := strings.TrimSpace(q.Get("date"))
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	}

	switch strings.ToLower(strings.TrimSpace(q.Get("group"))) {
	case "":
		writeJSON(w, nethttp.StatusOK, h.svc.MatchesByDate(r.Context(), date), h.logger)
	case "league":
		writeJSON(w, nethttp.StatusOK, h.svc.MatchesByLeague(r.Context(), date), h.logger)
	default:
		writeError(w, r, nethttp.StatusBadRequest, "invalid group (expected league)", h.logger)
	}
}

// MatchByID returns a single fixture snapshot.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}
	detail := h.svc.MatchDetails(r.Context(), id)
	if detail == nil {
		writeError(w, r, nethttp.StatusNotFound, "match not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

// MatchStatistics returns the merged statistics of a fixture.
func (h *Handler) MatchStatistics(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.MatchStatistics(r.Context(), id), h.logger)
}

// TeamByID returns team metadata and squad.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	team := h.svc.TeamDetails(r.Context(), id)
	if team == nil {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// HeadToHead returns the last meetings of two teams.
func (h *Handler) HeadToHead(w nethttp.ResponseWriter, r *nethttp.Request) {
	team1, ok1 := pathID(r, "team1")
	team2, ok2 := pathID(r, "team2")
	if !ok1 || !ok2 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.HeadToHead(r.Context(), team1, team2), h.logger)
}

// Dates returns the date picker strip.
func (h *Handler) Dates(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.svc.DateStrip(), h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// pathID reads a numeric route variable.
func pathID(r *nethttp.Request, name string) (string, bool) {
	id := mux.Vars(r)[name]
	if id == "" || len(id) > 12 {
		return "", false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	return id, true
}
