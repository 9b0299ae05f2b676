package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/auth"
	"github.com/mindplayhq/mindplay-server/internal/config"
	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game"
	"github.com/mindplayhq/mindplay-server/internal/leaderboard"
	"github.com/mindplayhq/mindplay-server/internal/progress"
	"github.com/mindplayhq/mindplay-server/internal/tutor"
)

// Deps bundles the handlers the HTTP server routes to.
type Deps struct {
	AuthService     *auth.Service
	AuthHandlers    *auth.HTTPHandlers
	GameManager     *game.Manager
	GameHandlers    *game.HTTPHandlers
	TutorHandlers   *tutor.HTTPHandlers
	ProgressHandler *progress.HTTPHandler
	LeaderboardHTTP *leaderboard.HTTPHandler
	WSHandler       *WSHandler
	Catalog         *content.Catalog
}

// NewHTTPServer wires all routes for the API service.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, redisClient *redis.Client, deps Deps) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				logger.Error().Err(err).Msg("dependency ping failed")
				http.Error(w, "upstream error", http.StatusBadGateway)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if deps.GameManager != nil {
		activeSessionsFn = func() float64 { return float64(deps.GameManager.ActiveSessions()) }
	}

	// Auth endpoints
	if deps.AuthHandlers != nil {
		mux.Handle("/v1/auth/login", countRequests("auth", http.HandlerFunc(deps.AuthHandlers.HandleLogin)))
		mux.Handle("/v1/auth/logout", countRequests("auth", http.HandlerFunc(deps.AuthHandlers.HandleLogout)))
		mux.Handle("/v1/auth/session", countRequests("auth", http.HandlerFunc(deps.AuthHandlers.HandleSession)))
	}

	// Content catalog
	if deps.Catalog != nil {
		mux.Handle("/v1/subjects", countRequests("content", subjectsHandler(deps.Catalog, logger)))
	}

	// Authenticated gameplay and tutoring endpoints
	if deps.AuthService != nil {
		protect := deps.AuthService.Middleware
		if deps.GameHandlers != nil {
			handler := countRequests("games", protect(http.HandlerFunc(deps.GameHandlers.HandleGames)))
			mux.Handle("/v1/games", handler)
			mux.Handle("/v1/games/", handler)
		}
		if deps.TutorHandlers != nil {
			handler := countRequests("tutor", protect(http.HandlerFunc(deps.TutorHandlers.HandleTutor)))
			mux.Handle("/v1/tutor", handler)
			mux.Handle("/v1/tutor/", handler)
		}
		if deps.ProgressHandler != nil {
			mux.Handle("/v1/progress", countRequests("progress", protect(http.HandlerFunc(deps.ProgressHandler.HandleGet))))
		}
	}

	if deps.LeaderboardHTTP != nil {
		handler := countRequests("leaderboards", http.HandlerFunc(deps.LeaderboardHTTP.HandleGet))
		mux.Handle("/v1/leaderboards", handler)
		mux.Handle("/v1/leaderboards/", handler)
	}

	// WebSocket endpoint
	if deps.WSHandler != nil {
		mux.HandleFunc("/ws", deps.WSHandler.HandleWebSocket)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsMiddleware(cfg.CORS, mux),
	}
}

func subjectsHandler(catalog *content.Catalog, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"subjects": catalog.Subjects()}); err != nil {
			logger.Warn().Err(err).Msg("failed to encode response")
		}
	})
}

func corsMiddleware(cfg config.CORS, next http.Handler) http.Handler {
	origins := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = true
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (origins[origin] || origins["*"]) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			if cfg.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
