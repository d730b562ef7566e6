package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "animal-shelter-api/internal/adapters/storage/postgres"
	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/platform/config"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/router"
)

// @title Animal Shelter API
// @version 1.0
// @description Onboarding de animales, fichas de salud y perfiles de adopción.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	for _, w := range cfg.Warnings {
		log.Warn("config", map[string]any{"warning": w})
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("db open failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer opened.Close()
		db = opened

		if cfg.DBAutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := pg.Migrate(ctx, db)
			cancel()
			if err != nil {
				log.Error("db migrate failed", map[string]any{"error": err.Error()})
				os.Exit(1)
			}
		}
		log.Info("storage: postgres", nil)
	} else {
		log.Warn("storage: in-memory (DB_DSN vacío), los datos se pierden al reiniciar", nil)
	}
	if cfg.DevAuth {
		log.Warn("DEV_AUTH activo: X-Debug-User-ID acepta cualquier usuario", nil)
	}

	r := router.NewRouter(router.Options{
		Logger:  log,
		DB:      db,
		DevAuth: cfg.DevAuth,
		List: animals.ListOptions{
			DefaultPageSize: cfg.ListDefaultPageSize,
			MaxPageSize:     cfg.ListMaxPageSize,
		},
		AuthRateRPS:   cfg.AuthRateRPS,
		AuthRateBurst: cfg.AuthRateBurst,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	log.Info("server stopped", nil)
}
