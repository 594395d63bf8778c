package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mokutan/stagepass/internal/common/clock"
	"github.com/mokutan/stagepass/internal/common/uuid"
	"github.com/mokutan/stagepass/internal/config"
	"github.com/mokutan/stagepass/internal/handler"
	matchRepo "github.com/mokutan/stagepass/internal/repositories/match"
	playerRepo "github.com/mokutan/stagepass/internal/repositories/player"
	selectionRepo "github.com/mokutan/stagepass/internal/repositories/selection"
	songRepo "github.com/mokutan/stagepass/internal/repositories/song"
	stateRepo "github.com/mokutan/stagepass/internal/repositories/state"
	"github.com/mokutan/stagepass/internal/rng"
	"github.com/mokutan/stagepass/internal/services/catalog"
	"github.com/mokutan/stagepass/internal/services/draw"
	"github.com/mokutan/stagepass/internal/services/selection"
	"github.com/mokutan/stagepass/internal/services/tournament"
	"github.com/mokutan/stagepass/internal/websocket"
)

func main() {
	// Local overrides for the venue machine; missing file is fine
	_ = godotenv.Load()

	// Parse command line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("failed to load config file, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	tournamentCfg, err := cfg.TournamentServiceConfig()
	if err != nil {
		logger.Error("invalid tournament config", "error", err)
		os.Exit(1)
	}
	selectionCfg, err := cfg.SelectionServiceConfig()
	if err != nil {
		logger.Error("invalid selection config", "error", err)
		os.Exit(1)
	}

	// Initialize Redis
	logger.Info("connecting to Redis", "addr", cfg.Redis.Addr)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to Redis")

	// Initialize repositories
	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create player repository", "error", err)
		os.Exit(1)
	}
	matches, err := matchRepo.NewRedis(&matchRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create match repository", "error", err)
		os.Exit(1)
	}
	selections, err := selectionRepo.NewRedis(&selectionRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create selection repository", "error", err)
		os.Exit(1)
	}
	songs, err := songRepo.NewRedis(&songRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create song repository", "error", err)
		os.Exit(1)
	}
	states, err := stateRepo.NewRedis(&stateRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create state repository", "error", err)
		os.Exit(1)
	}

	clk := &clock.DefaultClock{}
	uuider := uuid.New()
	sampler := rng.New(&rng.Config{Seed: cfg.Draw.Seed})

	// Initialize WebSocket hub
	wsHub := websocket.NewHub(logger)
	go wsHub.Run()

	// Initialize services
	tournamentSvc, err := tournament.NewService(tournamentCfg, players, matches, states, clk, uuider, sampler)
	if err != nil {
		logger.Error("failed to create tournament service", "error", err)
		os.Exit(1)
	}
	selectionSvc, err := selection.NewService(selectionCfg, players, matches, selections, clk, uuider)
	if err != nil {
		logger.Error("failed to create selection service", "error", err)
		os.Exit(1)
	}
	drawSvc, err := draw.NewService(cfg.DrawServiceConfig(), songs, states, clk, sampler, wsHub)
	if err != nil {
		logger.Error("failed to create draw service", "error", err)
		os.Exit(1)
	}
	catalogSvc, err := catalog.NewService(songs, clk, uuider)
	if err != nil {
		logger.Error("failed to create catalog service", "error", err)
		os.Exit(1)
	}

	// Initialize HTTP handler
	httpHandler := handler.NewHandler(
		&handler.Config{AdminToken: cfg.Admin.Token},
		tournamentSvc,
		selectionSvc,
		drawSvc,
		catalogSvc,
		wsHub,
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpHandler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	wsHub.Stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	}

	logger.Info("server stopped")
}
