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

	"golang.org/x/sync/errgroup"

	"earlybirds/internal/config"
	"earlybirds/internal/handler"
	"earlybirds/internal/service"
	"earlybirds/internal/storage"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Select storage backend. A Firestore failure is not fatal: the
	// process falls back to in-memory tables for its lifetime.
	var store storage.Store
	if cfg.UseFirestore {
		fs, err := storage.NewFirestoreStore(ctx, cfg.Firestore.ProjectID, cfg.Firestore.DatabaseID)
		if err != nil {
			slog.Warn("firestore unavailable, falling back to in-memory store",
				"database", cfg.Firestore.DatabaseID, "error", err)
			store = storage.NewMemoryStore()
		} else {
			slog.Info("firestore initialized", "database", cfg.Firestore.DatabaseID)
			defer fs.Close()
			store = fs
		}
	} else {
		slog.Info("running in in-memory mode")
		store = storage.NewMemoryStore()
	}

	// 3. Setup Logic
	svc := service.NewCoffeeService(store)
	coffeeHandler := handler.NewCoffeeHandler(svc)
	h := handler.NewHandler(coffeeHandler)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	slog.Info("server exiting")
}
