package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ctchen222/Tic-Tac-Toe-Solo/internal/auth"
	"ctchen222/Tic-Tac-Toe-Solo/internal/config"
	"ctchen222/Tic-Tac-Toe-Solo/internal/db"
	"ctchen222/Tic-Tac-Toe-Solo/internal/events"
	"ctchen222/Tic-Tac-Toe-Solo/internal/logger"
	"ctchen222/Tic-Tac-Toe-Solo/internal/server"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"ctchen222/Tic-Tac-Toe-Solo/internal/telemetry"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, telemetry.Config{
		Enabled:       cfg.OtelEnabled,
		CollectorAddr: cfg.OtelCollectorAddr,
		Stdout:        cfg.OtelStdout,
	})
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(cfg.LogLevel)
	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.UsesDevSecret() {
		slog.Warn("SESSION_TOKEN_SECRET not set, using the development secret")
	}

	// Game events go to Redis when it is available
	managerOpts := []session.ManagerOption{session.WithIdleTimeout(cfg.SessionIdleTimeout)}
	var controllerOpts []session.Option
	if !cfg.RedisDisabled {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisConnString)
		if err != nil {
			slog.Error("failed to initialize redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()

		publisher := events.NewRedisPublisher(rdb)
		managerOpts = append(managerOpts, session.WithPublisher(publisher))
		controllerOpts = append(controllerOpts, session.WithReporter(publisher))
	}
	managerOpts = append(managerOpts, session.WithControllerFactory(func(id string) *session.Controller {
		return session.NewController(id, controllerOpts...)
	}))

	manager := session.NewManager(managerOpts...)
	go manager.Run(ctx)

	tokens := auth.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)
	srv := server.NewServer(manager, tokens)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Handler(),
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			slog.Error("ListenAndServe failed", "error", err)
		}
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}
