package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/photoalbums/studio-api/internal/api"
	"github.com/photoalbums/studio-api/internal/api/metrics"
	"github.com/photoalbums/studio-api/internal/core/domain"
	"github.com/photoalbums/studio-api/internal/core/store"
	"github.com/photoalbums/studio-api/internal/infrastructure/config"
	"github.com/photoalbums/studio-api/internal/infrastructure/fixtures"
	"github.com/photoalbums/studio-api/pkg/logger"
)

// @title           PhotoAlbums Studio Dashboard API
// @version         1.0
// @description     Internal dashboard for a photo-album production company: sessions, employee and salary administration, and album project tracking. All state is in-memory demo data.

// @host      localhost:8080
// @BasePath  /
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	seedUsers := fixtures.Bootstrap()
	var seedProjects []domain.Project
	if cfg.SeedDemoData {
		seedUsers = append(seedUsers, fixtures.Users()...)
		seedProjects = fixtures.Projects()
	}

	directory := store.New(seedUsers)
	projects := store.NewProjectStore(seedProjects)
	metrics.RegisterDirectorySize(directory.Len)

	e := api.NewRouter(directory, projects, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
