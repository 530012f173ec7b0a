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

	"github.com/andrewpaige1/flashcards-api/config"
	"github.com/andrewpaige1/flashcards-api/handlers"
	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/middleware"
	"github.com/andrewpaige1/flashcards-api/seed"
	"github.com/andrewpaige1/flashcards-api/study"
)

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	logg, err := logger.New(env.LogMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logg.Sync()

	// Initialize database connection
	db, err := config.Connect(env.DBDriver, env.DBURL, env.LogMode == "prod")
	if err != nil {
		logg.Fatal("Database connection failed", "driver", env.DBDriver, "error", err)
	}

	svc, err := study.NewService(db, logg, study.DefaultConfig(), study.NewRepos(db, logg))
	if err != nil {
		logg.Fatal("Study service init failed", "error", err)
	}

	if env.SeedFile != "" {
		f, err := seed.Load(env.SeedFile)
		if err != nil {
			logg.Fatal("Seed file invalid", "path", env.SeedFile, "error", err)
		}
		if err := seed.Apply(context.Background(), svc, logg, f); err != nil {
			logg.Fatal("Seeding failed", "path", env.SeedFile, "error", err)
		}
	}

	h := handlers.NewHandler(svc, logg)
	var handler http.Handler = h.Routes()
	handler = middleware.RequestLogger(logg)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(env.AllowedOrigins)(handler)

	srv := &http.Server{
		Addr:              env.ServerAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info("Server listening", "addr", srv.Addr, "db_driver", env.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("Server error", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logg.Info("Shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("Graceful shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
