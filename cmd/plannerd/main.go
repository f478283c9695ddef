package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"year-planner/internal/api"
	"year-planner/internal/config"
	"year-planner/internal/logger"
	"year-planner/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.Debug)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	server := api.NewServer(db, cfg.APIToken, zlog)
	httpServer := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: api.NewRouter(server, cfg.CORSOrigins),
	}

	go func() {
		zlog.Info().Str("address", cfg.ServerAddress).Msg("planner server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped with error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("shutdown")
	}
	zlog.Info().Msg("shutdown complete")
}
