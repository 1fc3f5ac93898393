package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/namousaymane/KooraGoal/internal/http/handlers"
)

// NewRouter registers the gateway routes. admin may be nil, in which case /admin routes 404.
// Static match paths are registered before /matches/{id} so they win the match.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, allowedOrigins []string) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	get := func(path string, fn nethttp.HandlerFunc) {
		r.HandleFunc(path, fn).Methods(nethttp.MethodGet)
	}
	get("/health", handler.Health)
	get("/ready", handler.Ready)
	get("/dates", handler.Dates)
	get("/matches", handler.Matches)
	get("/matches/live", handler.LiveMatches)
	get("/matches/upcoming", handler.UpcomingMatches)
	get("/matches/{id}", handler.MatchByID)
	get("/matches/{id}/statistics", handler.MatchStatistics)
	get("/teams/{id}", handler.TeamByID)
	get("/h2h/{team1}/{team2}", handler.HeadToHead)
	if admin != nil {
		get("/admin/cache", admin.CacheStats)
	}

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         600,
	})
	return c.Handler(r)
}
