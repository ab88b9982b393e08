package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdamBeresnev/futsal-cup/internal/config"
	"github.com/AdamBeresnev/futsal-cup/internal/db"
	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
	"github.com/AdamBeresnev/futsal-cup/internal/logging"
	"github.com/AdamBeresnev/futsal-cup/internal/metrics"
	"github.com/AdamBeresnev/futsal-cup/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	slog.SetDefault(logging.NewLogger(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, cfg.CatalogDB)
	if err != nil {
		log.Fatal("Failed to load match catalog: ", err)
	}
	slog.Info("match catalog loaded", logging.FieldCount, catalog.Len(), logging.FieldTarget, cfg.CountdownTarget)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: newRouter(newApp(cfg, catalog, metrics.NewRecorder())),
		// Countdown streams end with the process
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	log.Printf("Server starting on %s", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// loadCatalog reads fixtures from the SQLite file at path, or falls back to
// the built-in catalog when path is empty.
func loadCatalog(ctx context.Context, path string) (*fixture.Catalog, error) {
	if path == "" {
		slog.Info("using built-in match catalog", logging.FieldSource, "builtin")
		return fixture.Default(), nil
	}

	database, err := db.Open("file:" + path + "?mode=ro")
	if err != nil {
		return nil, err
	}
	defer database.Close()

	slog.Info("using fixture database", logging.FieldSource, path)
	return store.NewMatchStore(database).LoadCatalog(ctx)
}
