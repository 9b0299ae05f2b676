// Package app wires configuration, Redis, the game and tutor managers,
// and the HTTP server into one runnable unit.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/auth"
	"github.com/mindplayhq/mindplay-server/internal/auth/jwt"
	"github.com/mindplayhq/mindplay-server/internal/config"
	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game"
	"github.com/mindplayhq/mindplay-server/internal/game/scoring"
	"github.com/mindplayhq/mindplay-server/internal/leaderboard"
	"github.com/mindplayhq/mindplay-server/internal/logging"
	"github.com/mindplayhq/mindplay-server/internal/progress"
	"github.com/mindplayhq/mindplay-server/internal/server"
	"github.com/mindplayhq/mindplay-server/internal/tutor"
	ws "github.com/mindplayhq/mindplay-server/pkg/http/ws"
)

// Application aggregates shared infrastructure (cache, managers, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	redis *redis.Client
	http  *http.Server

	gameManager   *game.Manager
	tutorManager  *tutor.Manager
	lbBroadcaster *leaderboard.Broadcaster
	bgCancels     []context.CancelFunc
}

// New bootstraps config, logger, Redis, and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	catalog := content.NewCatalog()
	policy := scoring.NewPolicy(scoring.DefaultConfig())

	// Auth
	tokens := jwt.NewManager(jwt.TokenConfig{
		Secret: []byte(cfg.Security.JWTSecret),
		Issuer: cfg.Name,
	})
	authSvc := auth.NewService(redisClient, tokens, cfg.Security.StudentPasswordHash, cfg.Security.TeacherPasswordHash, logger)
	authHandlers := auth.NewHTTPHandlers(authSvc, logger)

	// Progress and leaderboard
	progressSvc := progress.NewService(redisClient, logger, progress.ServiceOptions{})
	leaderboardSvc := leaderboard.NewService(redisClient, logger, leaderboard.ServiceOptions{
		TopN:          cfg.Leaderboard.TopN,
		PubSubChannel: cfg.Leaderboard.PubSubChannel,
		Boards:        catalog.Subjects(),
	})

	wsHub := ws.NewHub(logger)
	frameSink := server.NewHubFrameSink(wsHub, logger)

	// Game sessions
	gameManager := game.NewManager(catalog, policy, game.RealClock(), frameSink, game.ManagerOptions{
		RevealDelay:       cfg.Game.RevealDelay,
		MemoryRevealDelay: cfg.Game.MemoryRevealDelay,
		ShooterFrameRate:  cfg.Game.ShooterFrameRate,
		ShooterLevelSecs:  cfg.Game.ShooterLevelSecs,
		SessionTTL:        cfg.Game.SessionTTL,
	}, logger)
	gameManager.SetCompletionHandler(func(ctx context.Context, evt game.CompletionEvent) {
		if err := progressSvc.AddPoints(ctx, evt.StudentID, evt.Subject, evt.Points); err != nil {
			logger.Warn().Err(err).Str("session_id", evt.SessionID.String()).Msg("failed to record progress")
		}
		if err := leaderboardSvc.RecordResult(ctx, leaderboard.RecordRequest{
			UserID:      evt.StudentID,
			DisplayName: evt.DisplayName,
			Subject:     evt.Subject,
			Points:      evt.Points,
		}); err != nil {
			logger.Warn().Err(err).Str("session_id", evt.SessionID.String()).Msg("failed to record leaderboard result")
		}
		frameSink.PublishCompletion(evt)
	})
	gameHandlers := game.NewHTTPHandlers(gameManager, logger)

	// Tutor
	var tutorManager *tutor.Manager
	var tutorHandlers *tutor.HTTPHandlers
	if cfg.Tutor.APIKey != "" {
		tutorClient, err := tutor.NewClient(tutor.ClientConfig{
			BaseURL: cfg.Tutor.BaseURL,
			APIKey:  cfg.Tutor.APIKey,
			Model:   cfg.Tutor.Model,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("init tutor client: %w", err)
		}
		tutorManager = tutor.NewManager(tutorClient, logger)
		tutorHandlers = tutor.NewHTTPHandlers(tutorManager, logger)
	} else {
		logger.Warn().Msg("tutor API key not configured; tutoring endpoints disabled")
	}

	lbBroadcaster := leaderboard.NewBroadcaster(redisClient, wsHub, cfg.Leaderboard.PubSubChannel, logger)

	apiServer := server.NewHTTPServer(cfg, logger, redisClient, server.Deps{
		AuthService:     authSvc,
		AuthHandlers:    authHandlers,
		GameManager:     gameManager,
		GameHandlers:    gameHandlers,
		TutorHandlers:   tutorHandlers,
		ProgressHandler: progress.NewHTTPHandler(progressSvc, logger),
		LeaderboardHTTP: leaderboard.NewHTTPHandler(leaderboardSvc, logger),
		WSHandler:       server.NewWSHandler(wsHub, logger),
		Catalog:         catalog,
	})

	return &Application{
		cfg:           cfg,
		logger:        logger,
		redis:         redisClient,
		http:          apiServer,
		gameManager:   gameManager,
		tutorManager:  tutorManager,
		lbBroadcaster: lbBroadcaster,
		bgCancels:     make([]context.CancelFunc, 0, 2),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.gameManager.CloseAll()
	if a.tutorManager != nil {
		a.tutorManager.CloseAll()
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.lbBroadcaster != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.lbBroadcaster.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("leaderboard broadcaster stopped")
			}
		}()
	}

	if a.gameManager != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.gameManager.RunJanitor(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("session janitor stopped")
			}
		}()
	}
}
