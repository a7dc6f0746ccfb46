package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abakirov/mflix-api/config"
	"github.com/abakirov/mflix-api/internal/health"
	"github.com/abakirov/mflix-api/internal/infrastructure/postgres"
	ctxlog "github.com/abakirov/mflix-api/internal/log"
	"github.com/abakirov/mflix-api/internal/metrics"
	"github.com/abakirov/mflix-api/internal/session"
	httptransport "github.com/abakirov/mflix-api/internal/transport/http"
	"github.com/abakirov/mflix-api/internal/transport/http/handler"
	"github.com/abakirov/mflix-api/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("JWT_SECRET is not set, using the built-in fallback key; do not run like this outside local dev")
	}

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	// Auth
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	authUsecase := usecase.NewAuthUsecase(userRepo, sessionRepo, []byte(cfg.JWTSecret), cfg.TokenTTL())
	authHandler := handler.NewAuthHandler(authUsecase, cfg.SecureCookie(), logger)

	// Catalog
	movieRepo := postgres.NewMovieRepository(pool)
	movieUsecase := usecase.NewMovieUsecase(movieRepo)
	movieHandler := handler.NewMovieHandler(movieUsecase, logger)

	commentRepo := postgres.NewCommentRepository(pool)
	commentUsecase := usecase.NewCommentUsecase(commentRepo)
	commentHandler := handler.NewCommentHandler(commentUsecase, logger)

	theaterRepo := postgres.NewTheaterRepository(pool)
	theaterUsecase := usecase.NewTheaterUsecase(theaterRepo)
	theaterHandler := handler.NewTheaterHandler(theaterUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	sweeper, err := session.NewSweeper(sessionRepo, logger, cfg.SweepSchedule)
	if err != nil {
		stop()
		log.Fatalf("sweeper: %v", err)
	}
	go sweeper.Start(ctx)

	srv := http.Server{
		Addr: ":" + cfg.Port,
		Handler: httptransport.NewRouter(
			logger,
			authHandler,
			movieHandler,
			commentHandler,
			theaterHandler,
			[]byte(cfg.JWTSecret),
		),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
