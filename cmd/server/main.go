package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/showdown/internal/common/clock"
	"github.com/KirkDiggler/showdown/internal/common/uuid"
	wsHandler "github.com/KirkDiggler/showdown/internal/handlers/ws"
	roomRepo "github.com/KirkDiggler/showdown/internal/repositories/room"
	"github.com/KirkDiggler/showdown/internal/roomcode"
	"github.com/KirkDiggler/showdown/internal/services/messaging"
	"github.com/KirkDiggler/showdown/internal/services/reconciler"
	"github.com/KirkDiggler/showdown/internal/services/session"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if getEnv("LOG_PRETTY", "") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	logger := log.With().Str("component", "server").Logger()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	repo, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create room repository")
	}

	// Initialize the reconciler between live rooms and the store
	recon, err := reconciler.NewService(&reconciler.Config{
		Repository: repo,
		Logger:     log.With().Str("component", "reconciler").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create reconciler")
	}

	// Initialize messaging service
	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messaging service")
	}

	// Initialize session service
	sessions, err := session.NewService(&session.Config{
		Reconciler:    recon,
		RoomRepo:      repo,
		CodeGenerator: roomcode.New(&roomcode.Config{}),
		Messaging:     msgSvc,
		Clock:         &clock.DefaultClock{},
		Logger:        log.With().Str("component", "session").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create session service")
	}

	// Initialize websocket handler
	handler, err := wsHandler.NewHandler(&wsHandler.Config{
		Sessions:      sessions,
		UUIDGenerator: uuid.New(),
		Logger:        log.With().Str("component", "ws").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create websocket handler")
	}

	gin.SetMode(getEnv("GIN_MODE", gin.ReleaseMode))
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:              getEnv("LISTEN_ADDR", ":8080"),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown failed")
	}

	// Flush debounced room writes before exiting
	recon.Close()

	logger.Info().Msg("server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
